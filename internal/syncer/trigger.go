package syncer

import "photosync/internal/jobs"

// Enqueuer schedules unique background work.
type Enqueuer interface {
	Enqueue(key string, job jobs.Job) bool
	Closed() bool
}

// Trigger requests sync runs.
type Trigger struct {
	scheduler Enqueuer
	job       jobs.Job
}

// NewTrigger creates a Trigger that enqueues job on scheduler.
func NewTrigger(scheduler Enqueuer, job jobs.Job) *Trigger {
	return &Trigger{scheduler: scheduler, job: job}
}

// CheckForUpdates enqueues a sync under UniqueWorkName. If one is already
// running the request is dropped and false is returned.
func (t *Trigger) CheckForUpdates() bool {
	return t.scheduler.Enqueue(UniqueWorkName, t.job)
}

// Stopped reports whether the scheduler no longer accepts work.
func (t *Trigger) Stopped() bool {
	return t.scheduler.Closed()
}
