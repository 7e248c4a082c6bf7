package configs

import (
	_ "embed"
	"fmt"
	"os"

	"beach-cleanup/pkg/msg"
	"beach-cleanup/pkg/resource"
)

//go:embed application.yml
var defaultProperties []byte

//go:embed messages.yml
var defaultMessages []byte

//go:embed events.yml
var defaultEvents []byte

// Load reads properties and messages, preferring the files named by the environment
// and falling back to the copies embedded in the binary.
func Load() error {
	if err := loadInto(Env.PropertiesPath, defaultProperties, resource.Init, resource.InitFromBytes); err != nil {
		return err
	}
	return loadInto(Env.MessagesPath, defaultMessages, msg.Init, msg.InitFromBytes)
}

// Events returns the raw YAML of the cleanup event catalog.
func Events() ([]byte, error) {
	if Env.EventsPath == "" {
		return defaultEvents, nil
	}
	content, err := os.ReadFile(Env.EventsPath)
	if err != nil {
		return nil, fmt.Errorf("fail to read events %s: %w", Env.EventsPath, err)
	}
	return content, nil
}

func loadInto(path string, fallback []byte, fromFile func(string) error, fromBytes func([]byte) error) error {
	if path != "" {
		return fromFile(path)
	}
	return fromBytes(fallback)
}
