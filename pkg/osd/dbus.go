package osd

import (
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// DBusSink shows notifications through the freedesktop notification
// service. The expire timeout makes the server perform the one-shot
// auto-hide, and reusing the notification id makes a later Show override
// a still-visible notification instead of stacking a second one.
type DBusSink struct {
	obj dbus.BusObject

	mu     sync.Mutex
	lastID uint32
}

func NewDBusSink() (*DBusSink, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	return &DBusSink{obj: conn.Object(dbusNotifyDest, dbusNotifyPath)}, nil
}

func urgencyFor(level string) byte {
	switch level {
	case "critical":
		return 2
	case "low":
		return 1
	default:
		return 0
	}
}

func (s *DBusSink) Show(icon, message, level string, timeout time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(urgencyFor(level)),
		"desktop-entry": dbus.MakeVariant("battosd"),
		"category":      dbus.MakeVariant("device"),
	}

	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := s.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		"battosd",
		s.lastID,
		icon,
		message,
		"",
		[]string{},
		hints,
		int32(timeout/time.Millisecond),
	)
	if call.Err != nil {
		return call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return err
	}
	s.lastID = id

	return nil
}

func (s *DBusSink) Hide() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastID == 0 {
		return nil
	}
	call := s.obj.Call(dbusNotifyInterface+".CloseNotification", 0, s.lastID)
	s.lastID = 0
	return call.Err
}
