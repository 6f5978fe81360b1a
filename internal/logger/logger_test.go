package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerTo_WritesConsoleLine(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf)

	log.Info().Str("module", "catalog").Msg("loaded")

	out := buf.String()
	assert.Contains(t, out, "loaded")
	assert.Contains(t, out, "module=")
}

func TestNewLoggerWithLevel_FiltersBelowLevel(t *testing.T) {
	log := NewLoggerWithLevel(zerolog.WarnLevel)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}
