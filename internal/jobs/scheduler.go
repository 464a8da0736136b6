// Package jobs runs background work under unique keys. A key can have at
// most one run in flight; enqueueing it again while it runs is a no-op.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"photosync/internal/contextutil"
	"photosync/internal/storage"
)

var (
	// ErrAlreadyRunning is returned by RunNow when the key is busy.
	ErrAlreadyRunning = errors.New("job already running")
	// ErrShutdown is returned once the scheduler stopped accepting work.
	ErrShutdown = errors.New("scheduler shut down")
)

// Report carries named counters produced by a job run.
type Report map[string]int64

// Job is a unit of background work.
type Job interface {
	DoWork(ctx context.Context) (Report, error)
}

// JobFunc adapts a function to the Job interface.
type JobFunc func(ctx context.Context) (Report, error)

// DoWork calls f.
func (f JobFunc) DoWork(ctx context.Context) (Report, error) {
	return f(ctx)
}

// RunStore records job runs.
type RunStore interface {
	CreateRun(ctx context.Context, run *storage.JobRun) error
	FinishRun(ctx context.Context, run *storage.JobRun) error
}

// Scheduler executes jobs in background goroutines.
type Scheduler struct {
	runs   RunStore
	logger *slog.Logger
	now    func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	running map[string]string // key -> run id
	closed  bool
}

// NewScheduler creates a Scheduler. runs may be nil to skip run history.
func NewScheduler(runs RunStore) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		runs:    runs,
		logger:  slog.Default(),
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
		running: make(map[string]string),
	}
}

// WithLogger sets the logger used for run logs.
func (s *Scheduler) WithLogger(logger *slog.Logger) *Scheduler {
	s.logger = logger
	return s
}

// Enqueue starts job under key in the background. If a run for key is
// already in flight the new request is dropped and Enqueue returns false.
func (s *Scheduler) Enqueue(key string, job Job) bool {
	run, ok := s.claim(key)
	if !ok {
		if s.Closed() {
			s.logger.Debug("scheduler shut down, job dropped", "job", key)
		} else {
			s.logger.Debug("job already running, keeping existing run", "job", key)
		}
		return false
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		_ = s.execute(s.ctx, key, run, job)
	}()
	return true
}

// RunNow runs job under key on the calling goroutine and returns the
// recorded run. It honours the same uniqueness as Enqueue.
func (s *Scheduler) RunNow(ctx context.Context, key string, job Job) (*storage.JobRun, error) {
	run, ok := s.claim(key)
	if !ok {
		if s.Closed() {
			return nil, ErrShutdown
		}
		return nil, fmt.Errorf("%s: %w", key, ErrAlreadyRunning)
	}

	s.wg.Add(1)
	defer s.wg.Done()

	// Stop when either the caller or the scheduler gives up.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	err := s.execute(runCtx, key, run, job)
	return run, err
}

// Running reports whether a run for key is in flight.
func (s *Scheduler) Running(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.running[key]
	return ok
}

// Closed reports whether Shutdown has been called.
func (s *Scheduler) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Wait blocks until every in-flight run has finished.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// Shutdown stops accepting work, cancels in-flight runs and waits for them
// until ctx expires.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for jobs: %w", ctx.Err())
	}
}

func (s *Scheduler) claim(key string) (*storage.JobRun, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, false
	}
	if _, busy := s.running[key]; busy {
		return nil, false
	}
	run := &storage.JobRun{
		ID:        uuid.New().String(),
		JobKey:    key,
		Status:    storage.RunStatusRunning,
		StartedAt: s.now().UTC(),
	}
	s.running[key] = run.ID
	return run, true
}

func (s *Scheduler) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.running, key)
}

func (s *Scheduler) execute(ctx context.Context, key string, run *storage.JobRun, job Job) error {
	defer s.release(key)

	logger := s.logger.With("job", key, "run_id", run.ID)
	ctx = contextutil.WithLogger(ctx, logger)

	if s.runs != nil {
		if err := s.runs.CreateRun(ctx, run); err != nil {
			logger.WarnContext(ctx, "failed to record job start", "error", err)
		}
	}

	logger.InfoContext(ctx, "job started")
	report, err := s.safeDoWork(ctx, job)

	finished := s.now().UTC()
	run.FinishedAt = &finished
	run.Report = report
	if err != nil {
		run.Status = storage.RunStatusFailed
		run.Error = err.Error()
		logger.ErrorContext(ctx, "job failed", "elapsed", run.Elapsed(finished), "error", err)
	} else {
		run.Status = storage.RunStatusSucceeded
		logger.InfoContext(ctx, "job succeeded", "elapsed", run.Elapsed(finished))
	}

	if s.runs != nil {
		// The run context may already be cancelled; history is still written.
		if ferr := s.runs.FinishRun(context.WithoutCancel(ctx), run); ferr != nil {
			logger.WarnContext(ctx, "failed to record job result", "error", ferr)
		}
	}
	return err
}

func (s *Scheduler) safeDoWork(ctx context.Context, job Job) (report Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job panicked: %v", r)
		}
	}()
	return job.DoWork(ctx)
}
