package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_ProduccionEmiteJSON(t *testing.T) {
	var buf bytes.Buffer
	log := fromWriter(&buf, "production", "info")

	log.Info().Str("supplier_id", "sup-1").Msg("lote ingestado")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"supplier_id":"sup-1"`)
	assert.Contains(t, out, `"lote ingestado"`)
}

func TestLogger_NivelMinimoFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := fromWriter(&buf, "production", "error")

	log.Info().Msg("no debería salir")
	log.Warn().Msg("tampoco")
	assert.Zero(t, buf.Len())

	log.Error().Msg("esto sí")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, parseLevel(c.in), "nivel %q", c.in)
	}
}
