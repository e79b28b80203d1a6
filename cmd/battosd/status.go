package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/battosd/battosd/pkg/config"
	"github.com/battosd/battosd/pkg/sensor"
)

var bold = color.New(color.Bold).Sprintf

type statusData struct {
	snapshot sensor.Snapshot
	config   *config.Config
}

// fetchStatusData gathers all data required for the status command from the daemon.
func fetchStatusData() (*statusData, error) {
	c := apiClient()

	snap, err := c.GetBattery()
	if err != nil {
		return nil, fmt.Errorf("failed to get battery snapshot: %w", err)
	}

	conf, err := c.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}

	return &statusData{snapshot: snap, config: conf}, nil
}

func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		GroupID: gBasic,
		Short:   "Get the current battery state and daemon configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := fetchStatusData()
			if err != nil {
				return err
			}

			conf := data.config

			cmd.Println(bold("Battery status:"))
			cmd.Printf("  Charge: %s\n", bold("%d%%", int(data.snapshot.Capacity)))

			state := string(data.snapshot.Status)
			switch data.snapshot.Status {
			case sensor.Charging:
				state = color.GreenString(state)
			case sensor.Discharging:
				if data.snapshot.Capacity <= conf.CriticalThreshold {
					state = color.RedString(state)
				} else if data.snapshot.Capacity <= conf.LowThreshold {
					state = color.YellowString(state)
				}
			}
			cmd.Printf("  State: %s\n", state)

			cmd.Println()

			cmd.Println(bold("Daemon configuration:"))
			cmd.Printf("  Critical threshold: %s\n", bold("%.0f%%", conf.CriticalThreshold))
			cmd.Printf("  Low threshold: %s\n", bold("%.0f%%", conf.LowThreshold))
			cmd.Printf("  Healthy threshold: %s\n", bold("%.0f%%", conf.HealthyThreshold))
			if conf.Sensor == config.SensorSystem {
				cmd.Printf("  Sensor: %s\n", bold("system power API"))
			} else {
				cmd.Printf("  Sensor: %s\n", bold("%s", conf.BatteryPath))
			}
			cmd.Printf("  Poll interval: %s\n", bold("%s", conf.PollInterval()))

			if len(conf.Disable) > 0 {
				cmd.Printf("  Disabled levels: %s\n", strings.Join(conf.Disable, ", "))
			}

			commands := map[string]string{
				"charging":    conf.Commands.OnCharging,
				"discharging": conf.Commands.OnDischarging,
				"critical":    conf.Commands.OnCritical,
				"low":         conf.Commands.OnLow,
				"full":        conf.Commands.OnFull,
				"healthy":     conf.Commands.OnHealthy,
			}
			for _, name := range []string{"charging", "discharging", "critical", "low", "full", "healthy"} {
				if commands[name] != "" {
					cmd.Printf("  Command on %s: %s\n", name, commands[name])
				}
			}

			return nil
		},
	}
}
