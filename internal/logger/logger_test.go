package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"goodwill/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_ProdIsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("prod", &buf)

	log.Info("server started", "addr", ":5000")
	log.Debug("hidden")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "server started", line["msg"])
	assert.Equal(t, ":5000", line["addr"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewWithWriter_DevIsTextWithDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("dev", &buf)

	log.Debug("seller lookup failed", "category_id", "c1")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "category_id=c1")
}
