package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/linky00/pos-writer/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	// Keep log output away from the developer's real state dir
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{
			name:      "default_is_warn",
			verbosity: 0,
			wantLevel: zerolog.WarnLevel,
		},
		{
			name:      "v_is_info",
			verbosity: 1,
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "vv_is_debug",
			verbosity: 2,
			wantLevel: zerolog.DebugLevel,
		},
		{
			name:      "vvv_is_trace",
			verbosity: 3,
			wantLevel: zerolog.TraceLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logging.SetupLogger(tt.verbosity)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestSetupLoggerCreatesLogFile(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)

	logging.SetupLogger(1)

	logPath := filepath.Join(stateHome, "pos-writer", "pos-writer.log")
	_, err := os.Stat(logPath)
	assert.NoError(t, err, "log file should be created under XDG_STATE_HOME")
}

func TestGetLogger(t *testing.T) {
	logger := logging.GetLogger("layout")
	// The component logger must be usable without further setup
	logger.Debug().Msg("component logger works")
}
