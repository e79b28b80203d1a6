// Package osd renders battery notifications on screen.
package osd

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Sink displays one transient notification at a time. Showing again
// before a pending auto-hide fires simply overrides the visible
// notification; the sink is a visibility flag, not a queue.
type Sink interface {
	Show(icon, message, level string, timeout time.Duration) error
	Hide() error
}

// New returns the D-Bus desktop-notification sink, or a log-only sink
// when no session bus is available (headless sessions, tests).
func New() Sink {
	s, err := NewDBusSink()
	if err != nil {
		logrus.Warnf("session bus unavailable, notifications will only be logged: %v", err)
		return &LogSink{}
	}
	return s
}

// LogSink writes notifications to the log instead of the screen.
type LogSink struct{}

func (s *LogSink) Show(icon, message, level string, timeout time.Duration) error {
	logrus.WithFields(logrus.Fields{
		"icon":    icon,
		"level":   level,
		"timeout": timeout,
	}).Info(message)
	return nil
}

func (s *LogSink) Hide() error { return nil }
