package sensor

import (
	"errors"

	"github.com/distatus/battery"
)

// SystemSource reads snapshots through the OS battery API instead of a
// fixed sysfs node. Useful on machines where the node name is unstable.
type SystemSource struct{}

func NewSystemSource() *SystemSource {
	return &SystemSource{}
}

func (s *SystemSource) Read() (Snapshot, error) {
	batteries, err := battery.GetAll()
	if err != nil {
		return Snapshot{}, &ReadError{Path: "system power source", Err: err}
	}
	if len(batteries) == 0 {
		return Snapshot{}, &ReadError{Path: "system power source", Err: errors.New("no batteries found")}
	}

	bat := batteries[0]

	var status Status
	switch bat.State {
	case battery.Charging:
		status = Charging
	case battery.Discharging:
		status = Discharging
	case battery.Full:
		status = Full
	default:
		status = Unknown
	}

	var capacity float64
	if bat.Full > 0 {
		capacity = bat.Current / bat.Full * 100
	}

	return Snapshot{Capacity: capacity, Status: status}, nil
}
