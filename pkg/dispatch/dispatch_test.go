package dispatch

import (
	"errors"
	"testing"
	"time"
)

func TestDispatcher_EmptyCommandIsNoop(t *testing.T) {
	ran := make(chan string, 1)
	d := NewWithRunner(func(command string) error {
		ran <- command
		return nil
	})

	d.Dispatch("")

	select {
	case cmd := <-ran:
		t.Errorf("runner invoked with %q, want no invocation", cmd)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDispatcher_FailureDoesNotBlockNextCommand(t *testing.T) {
	ran := make(chan string, 2)
	d := NewWithRunner(func(command string) error {
		ran <- command
		if command == "first" {
			return errors.New("spawn failed")
		}
		return nil
	})

	d.Dispatch("first")
	d.Dispatch("second")

	got := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case cmd := <-ran:
			got[cmd] = true
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for command %d, got %v", i+1, got)
		}
	}

	if !got["first"] || !got["second"] {
		t.Errorf("expected both commands to run, got %v", got)
	}
}

func TestDispatcher_DoesNotWaitForSlowCommands(t *testing.T) {
	release := make(chan struct{})
	d := NewWithRunner(func(string) error {
		<-release
		return nil
	})

	done := make(chan struct{})
	go func() {
		d.Dispatch("sleepy")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on a slow command")
	}
	close(release)
}
