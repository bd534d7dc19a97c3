package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, 0, "text")

	l.Debug("hidden")
	l.Info("visible", "user_id", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "user_id=1")
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, -4, "JSON").With("component", "cache")

	l.Debug("miss", "key", "app-cache:user:1")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "miss", record["msg"])
	assert.Equal(t, "cache", record["component"])
	assert.Equal(t, "app-cache:user:1", record["key"])
}
