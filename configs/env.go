package configs

import (
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	PropertiesPath  string
	MessagesPath    string
	EventsPath      string
}

var Env *EnvConfig

func init() {
	env := viper.New()
	env.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault(env, "APPLICATION_NAME", "beach-cleanup"),
		PropertiesPath:  env.GetString("PROPERTIES_FILE_PATH"),
		MessagesPath:    env.GetString("MESSAGES_FILE_PATH"),
		EventsPath:      env.GetString("EVENTS_FILE_PATH"),
	}
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
