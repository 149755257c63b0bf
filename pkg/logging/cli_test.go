package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupWriter_InfoLevel(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, false)

	log.Debug().Msg("hidden debug line")
	log.Info().Msg("visible info line")

	out := buf.String()
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.NotContains(t, out, "hidden debug line")
	assert.Contains(t, out, "visible info line")
}

func TestSetupWriter_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, true)

	log.Debug().Msg("visible debug line")

	out := buf.String()
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Contains(t, out, "visible debug line")
}

func TestSetupWriter_IncludesFields(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, false)

	log.Info().Str("school", "sch-001").Int("count", 3).Msg("ranked")

	out := buf.String()
	assert.Contains(t, out, "ranked")
	assert.Contains(t, out, "sch-001")
	assert.Contains(t, out, "count=")
}

func TestSetup_SetsGlobalLevel(t *testing.T) {
	Setup(false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	Setup(true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}
