// Package monitor decides when a battery notification is due and which
// level it belongs to.
package monitor

import (
	"sync"

	"github.com/battosd/battosd/pkg/config"
	"github.com/battosd/battosd/pkg/dispatch"
	"github.com/battosd/battosd/pkg/sensor"
)

// Monitor classifies battery snapshots against the previous observation.
// It is the single owner of the rolling state; the mutex keeps classify
// calls from overlapping if the host polls from more than one goroutine.
type Monitor struct {
	cfg        *config.Store
	source     sensor.Source
	dispatcher *dispatch.Dispatcher

	mu              sync.Mutex
	last            *sensor.Snapshot
	healthyNotified bool
}

func New(cfg *config.Store, source sensor.Source, dispatcher *dispatch.Dispatcher) *Monitor {
	return &Monitor{
		cfg:        cfg,
		source:     source,
		dispatcher: dispatcher,
	}
}

// Check reads a fresh snapshot and classifies it. A reader error
// propagates to the caller and leaves the classifier state exactly as
// after the previous successful poll.
func (m *Monitor) Check() (*Decision, error) {
	snap, err := m.source.Read()
	if err != nil {
		return nil, err
	}
	return m.Classify(snap), nil
}

// Classify consumes one snapshot and returns the notification to show,
// or nil when nothing is due. The rolling state is updated on every call,
// including when the resulting level is disabled.
func (m *Monitor) Classify(snap sensor.Snapshot) *Decision {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg := m.cfg.Get()

	// The first observation always notifies: there is nothing to compare
	// against.
	shouldShow := true
	if m.last != nil {
		prev := *m.last

		stateChanged := prev.Status != snap.Status

		// Edge trigger: fires only on the poll where capacity drops across
		// a boundary, not on every poll while below it.
		crossingThreshold := snap.Status == sensor.Discharging &&
			((snap.Capacity <= cfg.CriticalThreshold && prev.Capacity > cfg.CriticalThreshold) ||
				(snap.Capacity <= cfg.LowThreshold && prev.Capacity > cfg.LowThreshold))

		crossingHealthy := snap.Status == sensor.Charging &&
			snap.Capacity >= cfg.HealthyThreshold &&
			prev.Capacity < cfg.HealthyThreshold &&
			!m.healthyNotified

		// Sticky flag updates happen whether or not anything is shown:
		// discharging re-arms the healthy notification for the next charge
		// cycle, and a healthy crossing latches it.
		if snap.Status == sensor.Discharging {
			m.healthyNotified = false
		}
		if crossingHealthy {
			m.healthyNotified = true
		}

		shouldShow = stateChanged || crossingThreshold || crossingHealthy
	}

	m.last = &snap

	if !shouldShow {
		return nil
	}

	d := decide(snap, cfg)

	if cfg.Disabled(string(d.Level)) {
		return nil
	}

	m.dispatcher.Dispatch(d.Command)

	return &d
}

// Last returns the most recently classified snapshot, or nil before the
// first successful poll.
func (m *Monitor) Last() *sensor.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.last == nil {
		return nil
	}
	snap := *m.last
	return &snap
}
