package config

import (
	"log/slog"
	"testing"

	"github.com/benbeisheim/chess-console/internal/errors"
	"github.com/benbeisheim/chess-console/internal/testutil"
)

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.ASCII {
		t.Error("ASCII should be false by default")
	}
	testutil.AssertEqual(t, cfg.LogFile, DefaultLogFile)
	testutil.AssertEqual(t, cfg.LogLevel, slog.LevelInfo)
	testutil.AssertNoError(t, cfg.Validate())
}

func TestConfig_SetLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			err := cfg.SetLogLevel(tt.name)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			} else {
				testutil.AssertNoError(t, err)
			}
			testutil.AssertEqual(t, cfg.LogLevel, tt.want)
		})
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "zero value is valid",
			cfg:     Config{},
			wantErr: false,
		},
		{
			name:    "logging disabled",
			cfg:     Config{ASCII: true, LogFile: "", LogLevel: slog.LevelError},
			wantErr: false,
		},
		{
			name:    "level below debug",
			cfg:     Config{LogFile: "chess.log", LogLevel: slog.LevelDebug - 4},
			wantErr: true,
		},
		{
			name:    "level above error",
			cfg:     Config{LogFile: "chess.log", LogLevel: slog.LevelError + 1},
			wantErr: true,
		},
		{
			name:    "file name with spaces around it",
			cfg:     Config{LogFile: " chess.log"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}
