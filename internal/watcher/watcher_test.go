package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

type countingTrigger struct {
	calls atomic.Int32
	fired chan struct{}
}

func newCountingTrigger() *countingTrigger {
	return &countingTrigger{fired: make(chan struct{}, 16)}
}

func (c *countingTrigger) CheckForUpdates() bool {
	c.calls.Add(1)
	c.fired <- struct{}{}
	return true
}

func TestIndexWatcher_Relevant(t *testing.T) {
	w, err := New("/data/external.db", 0, newCountingTrigger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if w.debounce != DefaultDebounce {
		t.Errorf("debounce = %v, want default", w.debounce)
	}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{name: "index write", event: fsnotify.Event{Name: "/data/external.db", Op: fsnotify.Write}, want: true},
		{name: "wal write", event: fsnotify.Event{Name: "/data/external.db-wal", Op: fsnotify.Write}, want: true},
		{name: "index replaced", event: fsnotify.Event{Name: "/data/external.db", Op: fsnotify.Create}, want: true},
		{name: "other file", event: fsnotify.Event{Name: "/data/notes.txt", Op: fsnotify.Write}, want: false},
		{name: "chmod only", event: fsnotify.Event{Name: "/data/external.db", Op: fsnotify.Chmod}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.relevant(tt.event); got != tt.want {
				t.Errorf("relevant(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestIndexWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	index := filepath.Join(dir, "external.db")
	if err := os.WriteFile(index, []byte("v1"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	trigger := newCountingTrigger()
	w, err := New(index, 100*time.Millisecond, trigger)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()
	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(index, []byte{byte(i)}, 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	select {
	case <-trigger.fired:
	case <-time.After(5 * time.Second):
		t.Fatal("index writes did not trigger a sync")
	}
	// No second trigger for the same burst.
	select {
	case <-trigger.fired:
		t.Error("burst of writes triggered more than once")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run() error = %v", err)
	}
}

func TestIndexWatcher_MissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "gone", "external.db"), time.Millisecond, newCountingTrigger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := w.Run(context.Background()); err == nil {
		t.Error("Run() on missing directory should fail")
	}
}
