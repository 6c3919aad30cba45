package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (YOTEI_*).
// It respects flags that have been explicitly set (changed map).
// Returns an error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("file", os.Getenv("YOTEI_FILE"), &cfg.CalendarPath)

	if err := s.setDuration("debounce", os.Getenv("YOTEI_DEBOUNCE"), &cfg.DebounceDelay); err != nil {
		return err
	}

	s.setBoolFromString("verbose", os.Getenv("YOTEI_VERBOSE"), &cfg.Verbose)

	return nil
}
