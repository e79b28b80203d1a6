package daemon

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/battosd/battosd/pkg/events"
	"github.com/battosd/battosd/pkg/monitor"
)

// checkOnce runs one poll cycle: read, classify, show. A failed read is
// logged and the classifier state is left untouched until the next tick.
// It is called by the poll loop and by the HTTP API.
func checkOnce() (*monitor.Decision, error) {
	d, err := mon.Check()
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}

	logrus.WithFields(logrus.Fields{
		"level":   d.Level,
		"message": d.Message,
		"timeout": d.Timeout.String(),
	}).Debug("showing notification")

	if err := sink.Show(d.Icon, d.Message, string(d.Level), d.Timeout); err != nil {
		logrus.Errorf("failed to show notification: %v", err)
	}

	ev := events.NotificationShownEvent{
		Level:   string(d.Level),
		Message: d.Message,
		Icon:    d.Icon,
		Ts:      time.Now().Unix(),
	}
	if snap := mon.Last(); snap != nil {
		ev.Capacity = snap.Capacity
		ev.Status = string(snap.Status)
	}
	sseHub.Publish(events.NotificationShown, ev)

	return d, nil
}

// pollLoop runs forever. The interval is re-read from the live config
// each cycle so reloads take effect without a restart.
func pollLoop() {
	for {
		if _, err := checkOnce(); err != nil {
			logrus.Errorf("battery check failed: %v", err)
		}
		time.Sleep(store.Get().PollInterval())
	}
}
