package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/battosd/battosd/pkg/events"
	"github.com/battosd/battosd/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("%s %s\n", version.Version, version.GitCommit)
		},
	}
}

func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   "Ask the daemon to poll the battery immediately",
		GroupID: gBasic,
		Long: `Ask the daemon to poll the battery immediately instead of waiting for the next timer tick.

If the poll yields a notification, it is shown on screen like any other.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := apiClient().Check()
			if err != nil {
				return fmt.Errorf("failed to force a check: %v", err)
			}

			if d == nil {
				cmd.Println("Nothing to show: battery state did not change.")
				return nil
			}

			cmd.Printf("Shown: [%s] %s\n", levelString(string(d.Level)), d.Message)
			return nil
		},
	}
}

func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Short:   "Stream notifications shown by the daemon",
		GroupID: gBasic,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := apiClient().Watch(func(name, data string) error {
				if name != events.NotificationShown {
					return nil
				}

				var ev events.NotificationShownEvent
				if err := json.Unmarshal([]byte(data), &ev); err != nil {
					return nil // skip malformed events
				}

				ts := time.Unix(ev.Ts, 0).Format("15:04:05")
				cmd.Printf("%s [%s] %s\n", ts, levelString(ev.Level), ev.Message)
				return nil
			})
			if err != nil {
				return fmt.Errorf("event stream closed: %v", err)
			}
			return nil
		},
	}
}

func levelString(level string) string {
	switch level {
	case "critical":
		return color.RedString(level)
	case "low":
		return color.YellowString(level)
	case "healthy", "charging", "full":
		return color.GreenString(level)
	default:
		return level
	}
}
