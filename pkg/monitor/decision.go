package monitor

import (
	"fmt"
	"time"

	"github.com/battosd/battosd/pkg/config"
	"github.com/battosd/battosd/pkg/sensor"
)

// Level is the notification category. It selects styling, timeout,
// command, and disable-list matching.
type Level string

const (
	LevelCritical Level = "critical"
	LevelLow      Level = "low"
	LevelNormal   Level = "normal"
	LevelCharging Level = "charging"
	LevelHealthy  Level = "healthy"
	LevelFull     Level = "full"
)

// Decision is what the poll loop forwards to the notification sink. It is
// produced per poll and consumed immediately.
type Decision struct {
	Icon    string        `json:"icon"`
	Message string        `json:"message"`
	Level   Level         `json:"level"`
	Command string        `json:"command,omitempty"`
	Timeout time.Duration `json:"timeout"`
}

var levelIcons = map[Level]string{
	LevelCritical: "battery-level-10-symbolic",
	LevelLow:      "battery-level-20-symbolic",
	LevelNormal:   "battery-good-symbolic",
	LevelCharging: "battery-level-50-charging-symbolic",
	LevelHealthy:  "battery-good-charging-symbolic",
	LevelFull:     "battery-full-symbolic",
}

const iconMissing = "battery-missing-symbolic"

// decide maps a snapshot onto its notification level, icon, message,
// timeout, and command. Capacity is truncated, not rounded, for display.
func decide(snap sensor.Snapshot, cfg config.Config) Decision {
	var (
		level Level
		label string
	)

	switch snap.Status {
	case sensor.Charging:
		if snap.Capacity >= cfg.HealthyThreshold {
			level, label = LevelHealthy, "Healthy"
		} else {
			level, label = LevelCharging, "Charging"
		}
	case sensor.Discharging:
		switch {
		case snap.Capacity <= cfg.CriticalThreshold:
			level, label = LevelCritical, "Critical"
		case snap.Capacity <= cfg.LowThreshold:
			level, label = LevelLow, "Low"
		default:
			level, label = LevelNormal, "Discharging"
		}
	case sensor.Full:
		level, label = LevelFull, "Full"
	default:
		level, label = LevelNormal, "Battery"
	}

	d := Decision{
		Icon:    levelIcons[level],
		Message: fmt.Sprintf("%s %d%%", label, int(snap.Capacity)),
		Level:   level,
		Command: cfg.CommandFor(string(level)),
		Timeout: cfg.TimeoutFor(string(level)),
	}

	// An unknown status renders as level normal but must not fire the
	// on_discharging command.
	if snap.Status == sensor.Unknown {
		d.Icon = iconMissing
		d.Command = ""
	}

	return d
}
