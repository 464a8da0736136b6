package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"photosync/internal/storage"
)

type memRuns struct {
	mu       sync.Mutex
	created  []storage.JobRun
	finished []storage.JobRun
}

func (m *memRuns) CreateRun(_ context.Context, run *storage.JobRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, *run)
	return nil
}

func (m *memRuns) FinishRun(_ context.Context, run *storage.JobRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finished = append(m.finished, *run)
	return nil
}

func (m *memRuns) snapshot() ([]storage.JobRun, []storage.JobRun) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]storage.JobRun(nil), m.created...), append([]storage.JobRun(nil), m.finished...)
}

// blockingJob runs until release is closed or its context is cancelled.
type blockingJob struct {
	started chan struct{}
	release chan struct{}
	calls   int
	mu      sync.Mutex
}

func newBlockingJob() *blockingJob {
	return &blockingJob{started: make(chan struct{}, 8), release: make(chan struct{})}
}

func (j *blockingJob) DoWork(ctx context.Context) (Report, error) {
	j.mu.Lock()
	j.calls++
	j.mu.Unlock()
	j.started <- struct{}{}
	select {
	case <-j.release:
		return Report{"done": 1}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (j *blockingJob) callCount() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.calls
}

func waitStarted(t *testing.T, j *blockingJob) {
	t.Helper()
	select {
	case <-j.started:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not start")
	}
}

func TestScheduler_EnqueueKeepsRunningJob(t *testing.T) {
	runs := &memRuns{}
	s := NewScheduler(runs)
	job := newBlockingJob()

	if !s.Enqueue("sync", job) {
		t.Fatal("first Enqueue() = false, want true")
	}
	waitStarted(t, job)

	if s.Enqueue("sync", job) {
		t.Error("Enqueue() while running = true, want false")
	}
	if !s.Running("sync") {
		t.Error("Running() = false while job in flight")
	}

	close(job.release)
	s.Wait()

	if got := job.callCount(); got != 1 {
		t.Errorf("job ran %d times, want 1", got)
	}
	if s.Running("sync") {
		t.Error("Running() = true after job finished")
	}

	created, finished := runs.snapshot()
	if len(created) != 1 || len(finished) != 1 {
		t.Fatalf("runs created=%d finished=%d, want 1/1", len(created), len(finished))
	}
	if created[0].Status != storage.RunStatusRunning {
		t.Errorf("created status = %q", created[0].Status)
	}
	run := finished[0]
	if run.ID != created[0].ID || run.JobKey != "sync" {
		t.Errorf("finished run = %+v", run)
	}
	if run.Status != storage.RunStatusSucceeded || run.Report["done"] != 1 || run.FinishedAt == nil {
		t.Errorf("finished run = %+v", run)
	}
}

func TestScheduler_EnqueueAfterCompletionRunsAgain(t *testing.T) {
	s := NewScheduler(nil)
	var mu sync.Mutex
	calls := 0
	job := JobFunc(func(context.Context) (Report, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil, nil
	})

	for i := 0; i < 3; i++ {
		if !s.Enqueue("sync", job) {
			t.Fatalf("Enqueue() #%d = false", i)
		}
		s.Wait()
	}

	mu.Lock()
	defer mu.Unlock()
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestScheduler_DistinctKeysRunConcurrently(t *testing.T) {
	s := NewScheduler(nil)
	a, b := newBlockingJob(), newBlockingJob()

	if !s.Enqueue("a", a) || !s.Enqueue("b", b) {
		t.Fatal("Enqueue() of distinct keys should both start")
	}
	waitStarted(t, a)
	waitStarted(t, b)
	close(a.release)
	close(b.release)
	s.Wait()
}

func TestScheduler_RecordsFailure(t *testing.T) {
	runs := &memRuns{}
	s := NewScheduler(runs)
	boom := errors.New("index gone")

	run, err := s.RunNow(context.Background(), "sync", JobFunc(func(context.Context) (Report, error) {
		return Report{"photos_inserted": 2}, boom
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("RunNow() error = %v, want %v", err, boom)
	}
	if run.Status != storage.RunStatusFailed || run.Error != "index gone" {
		t.Errorf("RunNow() run = %+v", run)
	}

	_, finished := runs.snapshot()
	if len(finished) != 1 || finished[0].Report["photos_inserted"] != 2 {
		t.Errorf("finished = %+v", finished)
	}
}

func TestScheduler_RecoversPanic(t *testing.T) {
	s := NewScheduler(nil)
	_, err := s.RunNow(context.Background(), "sync", JobFunc(func(context.Context) (Report, error) {
		panic("bad row")
	}))
	if err == nil {
		t.Fatal("RunNow() error = nil, want panic error")
	}
	if s.Running("sync") {
		t.Error("key should be released after a panic")
	}
}

func TestScheduler_RunNowWhileBusy(t *testing.T) {
	s := NewScheduler(nil)
	job := newBlockingJob()
	s.Enqueue("sync", job)
	waitStarted(t, job)

	_, err := s.RunNow(context.Background(), "sync", job)
	if !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("RunNow() error = %v, want ErrAlreadyRunning", err)
	}
	close(job.release)
	s.Wait()
}

func TestScheduler_ShutdownCancelsRuns(t *testing.T) {
	runs := &memRuns{}
	s := NewScheduler(runs)
	job := newBlockingJob()
	s.Enqueue("sync", job)
	waitStarted(t, job)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	_, finished := runs.snapshot()
	if len(finished) != 1 || finished[0].Status != storage.RunStatusFailed {
		t.Errorf("cancelled run = %+v", finished)
	}

	if s.Enqueue("sync", job) {
		t.Error("Enqueue() after Shutdown() = true")
	}
	if _, err := s.RunNow(context.Background(), "sync", job); !errors.Is(err, ErrShutdown) {
		t.Errorf("RunNow() after Shutdown() error = %v, want ErrShutdown", err)
	}
}
