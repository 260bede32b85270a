package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Nop()
	require.NoError(t, Configure(logger, Options{Level: "info", Format: "json", Output: &buf}))

	logger.WithField("command", "add").Info("executed")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "add", record["command"])
	assert.Equal(t, "info", record["level"])
	assert.Equal(t, "executed", record["msg"])
}

func TestConfigure_DefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := Nop()
	require.NoError(t, Configure(logger, Options{Output: &buf}))

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	logger.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestConfigure_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"bad level", Options{Level: "loud"}},
		{"bad format", Options{Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Configure(Nop(), tt.opts))
		})
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Error("discarded")
	require.NoError(t, SetLevel(logger, "debug"))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}
