package syncer

import (
	"context"
	"testing"

	"photosync/internal/jobs"
)

type recordingEnqueuer struct {
	keys   []string
	accept bool
	closed bool
}

func (r *recordingEnqueuer) Enqueue(key string, _ jobs.Job) bool {
	r.keys = append(r.keys, key)
	return r.accept
}

func (r *recordingEnqueuer) Closed() bool {
	return r.closed
}

func TestTrigger_CheckForUpdates(t *testing.T) {
	job := jobs.JobFunc(func(context.Context) (jobs.Report, error) { return nil, nil })

	tests := []struct {
		name   string
		accept bool
	}{
		{name: "accepted", accept: true},
		{name: "already running", accept: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &recordingEnqueuer{accept: tt.accept}
			trigger := NewTrigger(q, job)

			if got := trigger.CheckForUpdates(); got != tt.accept {
				t.Errorf("CheckForUpdates() = %v, want %v", got, tt.accept)
			}
			if len(q.keys) != 1 || q.keys[0] != UniqueWorkName {
				t.Errorf("enqueued keys = %v, want [%s]", q.keys, UniqueWorkName)
			}
		})
	}
}

func TestTrigger_WithScheduler(t *testing.T) {
	scheduler := jobs.NewScheduler(nil)
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	job := jobs.JobFunc(func(ctx context.Context) (jobs.Report, error) {
		started <- struct{}{}
		<-release
		return nil, nil
	})
	trigger := NewTrigger(scheduler, job)

	if !trigger.CheckForUpdates() {
		t.Fatal("first CheckForUpdates() = false")
	}
	<-started
	if trigger.CheckForUpdates() {
		t.Error("CheckForUpdates() while running = true, want KEEP")
	}
	close(release)
	scheduler.Wait()
}

func TestTrigger_StoppedAfterShutdown(t *testing.T) {
	scheduler := jobs.NewScheduler(nil)
	job := jobs.JobFunc(func(context.Context) (jobs.Report, error) { return nil, nil })
	trigger := NewTrigger(scheduler, job)

	if trigger.Stopped() {
		t.Fatal("Stopped() = true before shutdown")
	}
	if err := scheduler.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if trigger.CheckForUpdates() {
		t.Error("CheckForUpdates() after shutdown = true")
	}
	if !trigger.Stopped() {
		t.Error("Stopped() = false after shutdown")
	}
}
