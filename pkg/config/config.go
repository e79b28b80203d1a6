// Package config loads and holds the battosd configuration.
package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
)

// Sensor backends.
const (
	SensorSysfs  = "sysfs"
	SensorSystem = "system"
)

// Config is the daemon configuration. Thresholds are on the same 0-100
// scale as battery capacity. No ordering between thresholds is enforced.
type Config struct {
	Position          PositionConfig `koanf:"position" json:"position"`
	CriticalThreshold float64        `koanf:"critical_threshold" json:"critical_threshold"`
	LowThreshold      float64        `koanf:"low_threshold" json:"low_threshold"`
	HealthyThreshold  float64        `koanf:"healthy_threshold" json:"healthy_threshold"`
	BatteryPath       string         `koanf:"battery_path" json:"battery_path"`
	Sensor            string         `koanf:"sensor" json:"sensor"`
	PollIntervalSecs  int            `koanf:"poll_interval_secs" json:"poll_interval_secs"`
	Commands          CommandConfig  `koanf:"commands" json:"commands"`
	Timeouts          TimeoutConfig  `koanf:"timeouts" json:"timeouts"`
	Disable           []string       `koanf:"disable" json:"disable"`
}

// PositionConfig places the OSD on screen. It is consumed by the
// rendering side only.
type PositionConfig struct {
	Horizontal    string `koanf:"horizontal" json:"horizontal"`
	Vertical      string `koanf:"vertical" json:"vertical"`
	PaddingTop    int    `koanf:"padding_top" json:"padding_top"`
	PaddingBottom int    `koanf:"padding_bottom" json:"padding_bottom"`
	PaddingLeft   int    `koanf:"padding_left" json:"padding_left"`
	PaddingRight  int    `koanf:"padding_right" json:"padding_right"`
}

// CommandConfig holds the optional shell command fired per level.
type CommandConfig struct {
	OnCharging    string `koanf:"on_charging" json:"on_charging"`
	OnDischarging string `koanf:"on_discharging" json:"on_discharging"`
	OnCritical    string `koanf:"on_critical" json:"on_critical"`
	OnLow         string `koanf:"on_low" json:"on_low"`
	OnFull        string `koanf:"on_full" json:"on_full"`
	OnHealthy     string `koanf:"on_healthy" json:"on_healthy"`
}

// TimeoutConfig holds per-level notification timeouts in milliseconds.
type TimeoutConfig struct {
	Charging    int `koanf:"charging" json:"charging"`
	Discharging int `koanf:"discharging" json:"discharging"`
	Critical    int `koanf:"critical" json:"critical"`
	Low         int `koanf:"low" json:"low"`
	Full        int `koanf:"full" json:"full"`
	Healthy     int `koanf:"healthy" json:"healthy"`
}

// Default returns the configuration used when no file is present. Loading
// merges file keys over these values, so absent keys keep their defaults.
func Default() Config {
	return Config{
		Position: PositionConfig{
			Horizontal: "center",
			Vertical:   "top",
			PaddingTop: 20,
		},
		CriticalThreshold: 10.0,
		LowThreshold:      20.0,
		HealthyThreshold:  80.0,
		BatteryPath:       "/sys/class/power_supply/BAT0",
		Sensor:            SensorSysfs,
		PollIntervalSecs:  5,
		Timeouts: TimeoutConfig{
			Charging:    3000,
			Discharging: 3000,
			Critical:    12000,
			Low:         12000,
			Full:        3000,
			Healthy:     3000,
		},
	}
}

// DefaultPath is the config file location under XDG_CONFIG_HOME.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "battosd", "config.toml")
}

// PollInterval returns the poll cadence as a duration.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSecs) * time.Second
}

// TimeoutFor returns the notification timeout for a level name.
func (c Config) TimeoutFor(level string) time.Duration {
	ms := c.Timeouts.Discharging
	switch level {
	case "charging":
		ms = c.Timeouts.Charging
	case "critical":
		ms = c.Timeouts.Critical
	case "low":
		ms = c.Timeouts.Low
	case "full":
		ms = c.Timeouts.Full
	case "healthy":
		ms = c.Timeouts.Healthy
	}
	return time.Duration(ms) * time.Millisecond
}

// CommandFor returns the configured shell command for a level name, or ""
// if none is set.
func (c Config) CommandFor(level string) string {
	switch level {
	case "charging":
		return c.Commands.OnCharging
	case "normal":
		return c.Commands.OnDischarging
	case "critical":
		return c.Commands.OnCritical
	case "low":
		return c.Commands.OnLow
	case "full":
		return c.Commands.OnFull
	case "healthy":
		return c.Commands.OnHealthy
	}
	return ""
}

// Disabled reports whether notifications for a level are suppressed.
// Matching is case-insensitive.
func (c Config) Disabled(level string) bool {
	for _, d := range c.Disable {
		if strings.EqualFold(d, level) {
			return true
		}
	}
	return false
}

// LogrusFields summarizes the config for startup logging.
func (c Config) LogrusFields() logrus.Fields {
	return logrus.Fields{
		"criticalThreshold": c.CriticalThreshold,
		"lowThreshold":      c.LowThreshold,
		"healthyThreshold":  c.HealthyThreshold,
		"batteryPath":       c.BatteryPath,
		"sensor":            c.Sensor,
		"pollIntervalSecs":  c.PollIntervalSecs,
		"disable":           c.Disable,
	}
}
