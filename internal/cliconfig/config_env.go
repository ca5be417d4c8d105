package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (PRIMEIFY_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("action", os.Getenv("PRIMEIFY_ACTION"), &cfg.Action)
	s.setString("extraction", os.Getenv("PRIMEIFY_EXTRACTION"), &cfg.Extraction)
	s.setString("log-level", os.Getenv("PRIMEIFY_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("workers", os.Getenv("PRIMEIFY_WORKERS"), &cfg.Workers); err != nil {
		return err
	}
	if err := s.setIntFromString("rounds", os.Getenv("PRIMEIFY_ROUNDS"), &cfg.Rounds); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("PRIMEIFY_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("PRIMEIFY_WATCH"), &cfg.Watch)

	return nil
}
