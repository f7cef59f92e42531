package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	defer Configure("info", "text", &bytes.Buffer{})

	var buf bytes.Buffer
	Configure("debug", "JSON", &buf)

	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	Log.WithFields(logrus.Fields{"component": "test"}).Debug("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "test", entry["component"])
}

func TestConfigure_UnknownLevelFallsBackToInfo(t *testing.T) {
	defer Configure("info", "text", &bytes.Buffer{})

	Configure("loud", "text", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}
