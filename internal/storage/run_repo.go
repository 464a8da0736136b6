package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// RunRepo persists background job runs.
type RunRepo struct {
	db *sql.DB
}

// NewRunRepo creates a new RunRepo.
func NewRunRepo(db *sql.DB) *RunRepo {
	return &RunRepo{db: db}
}

// CreateRun inserts a run in its initial state.
func (r *RunRepo) CreateRun(ctx context.Context, run *JobRun) error {
	report, err := encodeReport(run.Report)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO job_runs (id, job_key, status, started_at, report, error) VALUES (?, ?, ?, ?, ?, ?)",
		run.ID, run.JobKey, run.Status, run.StartedAt.UTC(), report, run.Error,
	)
	if err != nil {
		return fmt.Errorf("failed to insert job run: %w", err)
	}
	return nil
}

// FinishRun stores the final status, report and error of a run.
func (r *RunRepo) FinishRun(ctx context.Context, run *JobRun) error {
	report, err := encodeReport(run.Report)
	if err != nil {
		return err
	}
	var finished any
	if run.FinishedAt != nil {
		finished = run.FinishedAt.UTC()
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE job_runs SET status = ?, finished_at = ?, report = ?, error = ? WHERE id = ?",
		run.Status, finished, report, run.Error, run.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (r *RunRepo) Recent(ctx context.Context, limit int) ([]JobRun, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, job_key, status, started_at, finished_at, report, error
		 FROM job_runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query job runs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var runs []JobRun
	for rows.Next() {
		var run JobRun
		var finished sql.NullTime
		var report string
		if err := rows.Scan(&run.ID, &run.JobKey, &run.Status, &run.StartedAt, &finished, &report, &run.Error); err != nil {
			return nil, fmt.Errorf("failed to scan job run: %w", err)
		}
		if finished.Valid {
			t := finished.Time
			run.FinishedAt = &t
		}
		if err := json.Unmarshal([]byte(report), &run.Report); err != nil {
			return nil, fmt.Errorf("failed to decode job report: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return runs, nil
}

func encodeReport(report map[string]int64) (string, error) {
	if report == nil {
		return "{}", nil
	}
	b, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode job report: %w", err)
	}
	return string(b), nil
}

// Elapsed returns how long the run took, or has been running so far.
func (r JobRun) Elapsed(now time.Time) time.Duration {
	if r.FinishedAt != nil {
		return r.FinishedAt.Sub(r.StartedAt)
	}
	return now.Sub(r.StartedAt)
}
