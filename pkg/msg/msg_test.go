package msg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMessages = `
forecast:
  loaded: "Forecast loaded with {0} periods from {1}"
  failed: "Forecast failed: {0}"
  timing: "Took {0}"
  payload: "Payload {0}"
`

func TestGetMessageReplacesPlaceholders(t *testing.T) {
	require.NoError(t, InitFromBytes([]byte(testMessages)))

	assert.Equal(t, "Forecast loaded with 4 periods from upstream", GetMessage("forecast.loaded", 4, "upstream"))
	assert.Equal(t, "Forecast failed: boom", GetMessage("forecast.failed", errors.New("boom")))
	assert.Equal(t, "Took 1.5s", GetMessage("forecast.timing", 1500*time.Millisecond))
	assert.Equal(t, `Payload {"id":"x"}`, GetMessage("forecast.payload", map[string]string{"id": "x"}))
}

func TestGetMessageMissingKey(t *testing.T) {
	assert.Equal(t, "Message not found: nope.nothing", GetMessage("nope.nothing"))
}

func TestInitFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte("event:\n  toggled: \"Event {0} is {1}\"\n"), 0o600))

	require.NoError(t, Init(path))
	assert.Equal(t, "Event changi is true", GetMessage("event.toggled", "changi", true))
}

func TestInitMissingFile(t *testing.T) {
	assert.Error(t, Init(filepath.Join(t.TempDir(), "missing.yml")))
}
