package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("YOTEI_FILE", "/env/schedules.json")
	t.Setenv("YOTEI_DEBOUNCE", "750ms")
	t.Setenv("YOTEI_VERBOSE", "true")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}

	if cfg.CalendarPath != "/env/schedules.json" {
		t.Errorf("CalendarPath = %v, want /env/schedules.json", cfg.CalendarPath)
	}
	if cfg.DebounceDelay != 750*time.Millisecond {
		t.Errorf("DebounceDelay = %v, want 750ms", cfg.DebounceDelay)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestApplyEnvConfig_RespectsChangedFlags(t *testing.T) {
	t.Setenv("YOTEI_FILE", "/env/schedules.json")

	cfg := Config{CalendarPath: "/flag/schedules.json"}
	changed := map[string]bool{"file": true}

	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}

	if cfg.CalendarPath != "/flag/schedules.json" {
		t.Errorf("CalendarPath = %v, want flag value preserved", cfg.CalendarPath)
	}
}

func TestApplyEnvConfig_InvalidDuration(t *testing.T) {
	t.Setenv("YOTEI_DEBOUNCE", "whenever")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err == nil {
		t.Error("ApplyEnvConfig() expected error for invalid duration")
	}
}
