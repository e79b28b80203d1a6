package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewStore_MissingFileUsesDefaults(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope", "config.toml"))
	c := s.Get()

	if c.CriticalThreshold != 10.0 || c.LowThreshold != 20.0 || c.HealthyThreshold != 80.0 {
		t.Errorf("unexpected default thresholds: %+v", c)
	}
	if c.BatteryPath != "/sys/class/power_supply/BAT0" {
		t.Errorf("unexpected default battery path: %s", c.BatteryPath)
	}
	if c.PollIntervalSecs != 5 {
		t.Errorf("unexpected default poll interval: %d", c.PollIntervalSecs)
	}
}

func TestNewStore_ParseErrorFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("critical_threshold = [not toml"), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(path)
	if got := s.Get().CriticalThreshold; got != 10.0 {
		t.Errorf("CriticalThreshold = %v, want default 10.0", got)
	}
}

func TestStore_LoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
critical_threshold = 15.0
disable = ["Critical", "full"]

[timeouts]
low = 5000

[commands]
on_low = "brightnessctl set 10%"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c := NewStore(path).Get()

	if c.CriticalThreshold != 15.0 {
		t.Errorf("CriticalThreshold = %v, want 15.0", c.CriticalThreshold)
	}
	// Keys absent from the file keep their defaults.
	if c.LowThreshold != 20.0 {
		t.Errorf("LowThreshold = %v, want default 20.0", c.LowThreshold)
	}
	if c.Timeouts.Critical != 12000 {
		t.Errorf("Timeouts.Critical = %d, want default 12000", c.Timeouts.Critical)
	}
	if got := c.TimeoutFor("low"); got != 5*time.Second {
		t.Errorf("TimeoutFor(low) = %v, want 5s", got)
	}
	if got := c.CommandFor("low"); got != "brightnessctl set 10%" {
		t.Errorf("CommandFor(low) = %q", got)
	}
}

func TestConfig_Disabled(t *testing.T) {
	c := Default()
	c.Disable = []string{"CRITICAL", "Low"}

	tests := []struct {
		level string
		want  bool
	}{
		{"critical", true},
		{"Critical", true},
		{"low", true},
		{"healthy", false},
		{"normal", false},
	}
	for _, tt := range tests {
		if got := c.Disabled(tt.level); got != tt.want {
			t.Errorf("Disabled(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestConfig_CommandFor(t *testing.T) {
	c := Default()
	c.Commands = CommandConfig{
		OnCharging:    "a",
		OnDischarging: "b",
		OnCritical:    "c",
		OnLow:         "d",
		OnFull:        "e",
		OnHealthy:     "f",
	}

	tests := []struct {
		level string
		want  string
	}{
		{"charging", "a"},
		{"normal", "b"},
		{"critical", "c"},
		{"low", "d"},
		{"full", "e"},
		{"healthy", "f"},
		{"unknown-level", ""},
	}
	for _, tt := range tests {
		if got := c.CommandFor(tt.level); got != tt.want {
			t.Errorf("CommandFor(%q) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
