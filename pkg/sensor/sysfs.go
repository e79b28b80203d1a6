package sensor

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SysfsSource reads snapshots from a /sys/class/power_supply battery node.
type SysfsSource struct {
	path string
}

// NewSysfsSource returns a source backed by the given battery node,
// e.g. /sys/class/power_supply/BAT0.
func NewSysfsSource(path string) *SysfsSource {
	return &SysfsSource{path: path}
}

// Read reads <path>/capacity and <path>/status. A failed read of either
// file is a *ReadError. A capacity that is not a number is a *ParseError.
// Unrecognized status content is tolerated and maps to Unknown.
func (s *SysfsSource) Read() (Snapshot, error) {
	capacityPath := filepath.Join(s.path, "capacity")
	b, err := os.ReadFile(capacityPath)
	if err != nil {
		return Snapshot{}, &ReadError{Path: capacityPath, Err: err}
	}

	raw := strings.TrimSpace(string(b))
	capacity, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Snapshot{}, &ParseError{Content: raw, Err: err}
	}

	statusPath := filepath.Join(s.path, "status")
	b, err = os.ReadFile(statusPath)
	if err != nil {
		return Snapshot{}, &ReadError{Path: statusPath, Err: err}
	}

	return Snapshot{
		Capacity: capacity,
		Status:   ParseStatus(strings.TrimSpace(string(b))),
	}, nil
}
