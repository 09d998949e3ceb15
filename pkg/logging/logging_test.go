package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerLevels(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	tests := []struct {
		verbosity int
		level     zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.verbosity)
		assert.Equal(t, tt.level, zerolog.GlobalLevel())
	}
}

func TestSetupLoggerCreatesLogFile(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)

	SetupLogger(0)

	_, err := os.Stat(filepath.Join(stateHome, "relfiles", "relfiles.log"))
	require.NoError(t, err)
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("pattern.compile")
	// Loggers are value types; just verify we can log without panicking.
	logger.Debug().Str("pattern", "%1.c").Msg("compiled")
}
