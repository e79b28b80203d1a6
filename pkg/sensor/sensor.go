// Package sensor reads point-in-time battery snapshots from a power source.
package sensor

// Status is the charge status reported by the power supply.
type Status string

const (
	Charging    Status = "Charging"
	Discharging Status = "Discharging"
	Full        Status = "Full"
	Unknown     Status = "Unknown"
)

// ParseStatus maps a raw status string onto a Status. Anything the kernel
// reports that we do not recognize (e.g. "Not charging") becomes Unknown.
func ParseStatus(s string) Status {
	switch s {
	case "Charging":
		return Charging
	case "Discharging":
		return Discharging
	case "Full":
		return Full
	default:
		return Unknown
	}
}

// Snapshot is one point-in-time battery reading. It is produced fresh on
// every poll and never mutated afterwards.
type Snapshot struct {
	// Capacity is the charge percentage, 0-100.
	Capacity float64 `json:"capacity"`
	Status   Status  `json:"status"`
}

// Source produces battery snapshots.
type Source interface {
	Read() (Snapshot, error)
}
