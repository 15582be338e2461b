package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestZerologAdapter_WritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("Store", "records loaded", map[string]interface{}{"count": 2})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Store", entry["component"])
	assert.Equal(t, "records loaded", entry["message"])
	assert.EqualValues(t, 2, entry["count"])
}

func TestZerologAdapter_ErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Error("Exporter", errors.New("disk full"), nil)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "disk full", entry["error"])
	assert.Equal(t, "Exporter", entry["component"])
}

func TestZerologAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("Shell", "hidden", nil)
	log.Info("Shell", "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Warning("Shell", "shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_WithFileWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job-mapper.log")
	var console bytes.Buffer

	log, closer := New(Options{Level: "debug", File: path, Console: &console})
	log.Info("Application", "starting", map[string]interface{}{"version": "test"})
	require.NoError(t, closer.Close())

	assert.FileExists(t, path)
	assert.Contains(t, console.String(), "starting")
}
