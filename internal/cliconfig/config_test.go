package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/primeify/internal/app"
	"github.com/bft-labs/primeify/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Workers != 1 {
		t.Errorf("Workers = %v, want 1", cfg.Workers)
	}
	if cfg.Rounds != 15 {
		t.Errorf("Rounds = %v, want 15", cfg.Rounds)
	}
	if cfg.Debounce != 200*time.Millisecond {
		t.Errorf("Debounce = %v, want 200ms", cfg.Debounce)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}

	pair, err := cfg.Strategies()
	if err != nil {
		t.Fatalf("Strategies() error = %v", err)
	}
	if pair != app.DefaultStrategies() {
		t.Errorf("Strategies() = %v, want %v", pair, app.DefaultStrategies())
	}

	lvl, err := cfg.Level()
	if err != nil || lvl != zerolog.InfoLevel {
		t.Errorf("Level() = %v, %v, want info", lvl, err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:   "defaults",
			mutate: func(c *Config) {},
		},
		{
			name:   "next prime with many workers",
			mutate: func(c *Config) { c.Action = "next-prime"; c.Workers = 64 },
		},
		{
			name:   "zero rounds",
			mutate: func(c *Config) { c.Rounds = 0 },
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Workers = 0 },
			wantErr: domain.ErrInvalidWorkerCount,
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Workers = -3 },
			wantErr: domain.ErrInvalidWorkerCount,
		},
		{
			name:    "negative rounds",
			mutate:  func(c *Config) { c.Rounds = -1 },
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "unknown action",
			mutate:  func(c *Config) { c.Action = "invert" },
			wantErr: domain.ErrUnknownStrategy,
		},
		{
			name:    "unknown extraction",
			mutate:  func(c *Config) { c.Extraction = "luma" },
			wantErr: domain.ErrUnknownStrategy,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "watch without debounce",
			mutate:  func(c *Config) { c.Watch = true; c.Debounce = 0 },
			wantErr: domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
