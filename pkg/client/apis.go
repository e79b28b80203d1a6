package client

import (
	"encoding/json"

	pkgerrors "github.com/pkg/errors"

	"github.com/battosd/battosd/pkg/config"
	"github.com/battosd/battosd/pkg/monitor"
	"github.com/battosd/battosd/pkg/sensor"
)

// GetConfig returns the daemon's active configuration.
func (c *Client) GetConfig() (*config.Config, error) {
	ret, err := c.Get("/config")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get config")
	}

	cfg := &config.Config{}
	if err := json.Unmarshal([]byte(ret), cfg); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal config")
	}
	return cfg, nil
}

// GetBattery returns a fresh battery snapshot read by the daemon.
func (c *Client) GetBattery() (sensor.Snapshot, error) {
	var snap sensor.Snapshot

	ret, err := c.Get("/battery")
	if err != nil {
		return snap, pkgerrors.Wrapf(err, "failed to get battery snapshot")
	}

	if err := json.Unmarshal([]byte(ret), &snap); err != nil {
		return snap, pkgerrors.Wrapf(err, "failed to unmarshal battery snapshot")
	}
	return snap, nil
}

// GetVersion returns the daemon version.
func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get version")
	}

	var v string
	if err := json.Unmarshal([]byte(ret), &v); err != nil {
		return "", pkgerrors.Wrapf(err, "failed to unmarshal version")
	}
	return v, nil
}

// Check asks the daemon to poll immediately. The returned decision is nil
// when the poll produced nothing to show.
func (c *Client) Check() (*monitor.Decision, error) {
	ret, err := c.Post("/check", "")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to force a check")
	}

	var d *monitor.Decision
	if err := json.Unmarshal([]byte(ret), &d); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal decision")
	}
	return d, nil
}

// Watch streams notification events from the daemon, invoking fn per
// event, until the daemon goes away or fn returns an error.
func (c *Client) Watch(fn func(name, data string) error) error {
	return c.Stream("/events", fn)
}
