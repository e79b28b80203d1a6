package sensor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeBatteryNode(t *testing.T, capacity, status string) string {
	t.Helper()
	dir := t.TempDir()
	if capacity != "" {
		if err := os.WriteFile(filepath.Join(dir, "capacity"), []byte(capacity), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if status != "" {
		if err := os.WriteFile(filepath.Join(dir, "status"), []byte(status), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestSysfsSource_Read(t *testing.T) {
	tests := []struct {
		name     string
		capacity string
		status   string
		want     Snapshot
	}{
		{
			name:     "plain integer capacity",
			capacity: "42\n",
			status:   "Discharging\n",
			want:     Snapshot{Capacity: 42, Status: Discharging},
		},
		{
			name:     "decimal capacity",
			capacity: "75.9\n",
			status:   "Charging\n",
			want:     Snapshot{Capacity: 75.9, Status: Charging},
		},
		{
			name:     "surrounding whitespace is trimmed",
			capacity: "  100  \n",
			status:   "Full\n",
			want:     Snapshot{Capacity: 100, Status: Full},
		},
		{
			name:     "unrecognized status maps to Unknown",
			capacity: "50\n",
			status:   "Not charging\n",
			want:     Snapshot{Capacity: 50, Status: Unknown},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewSysfsSource(writeBatteryNode(t, tt.capacity, tt.status))
			got, err := src.Read()
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Read() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSysfsSource_ReadErrors(t *testing.T) {
	t.Run("missing capacity file", func(t *testing.T) {
		src := NewSysfsSource(writeBatteryNode(t, "", "Charging\n"))
		_, err := src.Read()
		var readErr *ReadError
		if !errors.As(err, &readErr) {
			t.Fatalf("Read() error = %v, want *ReadError", err)
		}
	})

	t.Run("missing status file", func(t *testing.T) {
		src := NewSysfsSource(writeBatteryNode(t, "42\n", ""))
		_, err := src.Read()
		var readErr *ReadError
		if !errors.As(err, &readErr) {
			t.Fatalf("Read() error = %v, want *ReadError", err)
		}
	})

	t.Run("garbage capacity", func(t *testing.T) {
		src := NewSysfsSource(writeBatteryNode(t, "not-a-number\n", "Charging\n"))
		_, err := src.Read()
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("Read() error = %v, want *ParseError", err)
		}
		if parseErr.Content != "not-a-number" {
			t.Errorf("ParseError.Content = %q, want %q", parseErr.Content, "not-a-number")
		}
	})
}
