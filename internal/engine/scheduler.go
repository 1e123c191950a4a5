package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/card-price-tracker/internal/metrics"
	"github.com/donaldgifford/card-price-tracker/internal/store"
	domain "github.com/donaldgifford/card-price-tracker/pkg/types"
)

// Job names recorded in job_runs and used as metric labels.
const (
	JobIngestion       = "ingestion"
	JobReferenceImport = "reference_import"
	JobRevaluation     = "revaluation"
)

const (
	staleJobThreshold = 2 * time.Hour

	ingestionTimeout   = 30 * time.Minute
	importTimeout      = time.Hour
	revaluationTimeout = time.Hour
)

var (
	// ErrUnknownJob is returned by Trigger for a job name it does not know.
	ErrUnknownJob = errors.New("unknown job")
	// ErrJobRunning is returned by Trigger while the same job is in progress.
	ErrJobRunning = errors.New("job already running")
)

type job struct {
	name    string
	timeout time.Duration
	run     func(context.Context) (int, error)
	entryID cron.EntryID
	mu      sync.Mutex
}

// Scheduler runs engine jobs periodically and on demand, recording each
// run in the store.
type Scheduler struct {
	cron  *cron.Cron
	store store.Store
	log   *slog.Logger
	jobs  map[string]*job
}

// NewScheduler registers ingestion, reference import and revaluation jobs.
// A zero interval leaves that job available to Trigger but unscheduled.
func NewScheduler(
	eng *Engine,
	s store.Store,
	ingestionInterval time.Duration,
	importInterval time.Duration,
	revaluationInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	sched := &Scheduler{
		cron:  cron.New(),
		store: s,
		log:   log,
		jobs: map[string]*job{
			JobIngestion:       {name: JobIngestion, timeout: ingestionTimeout, run: eng.RunIngestion},
			JobReferenceImport: {name: JobReferenceImport, timeout: importTimeout, run: eng.RunReferenceImport},
			JobRevaluation:     {name: JobRevaluation, timeout: revaluationTimeout, run: eng.RunRevaluation},
		},
	}

	intervals := map[string]time.Duration{
		JobIngestion:       ingestionInterval,
		JobReferenceImport: importInterval,
		JobRevaluation:     revaluationInterval,
	}
	for name, interval := range intervals {
		if interval <= 0 {
			continue
		}
		j := sched.jobs[name]
		id, err := sched.cron.AddFunc("@every "+interval.String(), func() {
			if err := sched.Trigger(context.Background(), j.name); err != nil &&
				!errors.Is(err, ErrJobRunning) {
				sched.log.Error("scheduled job failed", "job", j.name, "error", err)
			}
		})
		if err != nil {
			return nil, fmt.Errorf("scheduling %s: %w", name, err)
		}
		j.entryID = id
	}

	return sched, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps publishes each scheduled job's next run time.
func (s *Scheduler) SyncNextRunTimestamps() {
	for _, j := range s.jobs {
		if j.entryID == 0 {
			continue
		}
		next := s.cron.Entry(j.entryID).Next
		if next.IsZero() {
			continue
		}
		metrics.SchedulerNextRunTimestamp.WithLabelValues(j.name).Set(float64(next.Unix()))
	}
}

// Trigger runs the named job now and waits for it to finish. It returns
// ErrJobRunning if the job is already in progress.
func (s *Scheduler) Trigger(ctx context.Context, name string) error {
	j, ok := s.jobs[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownJob, name)
	}
	if !j.mu.TryLock() {
		return ErrJobRunning
	}
	defer j.mu.Unlock()
	defer s.SyncNextRunTimestamps()

	return s.runJob(ctx, j.name, j.timeout, j.run)
}

// RecoverStaleJobRuns marks runs left 'running' by a previous process as
// failed. Call it once at startup.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, staleJobThreshold)
	if err != nil {
		s.log.Error("recovering stale job runs", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("marked stale job runs as failed", "count", n)
	}
}

// runJob records a job run around fn. Bookkeeping failures are logged and
// never stop the job.
func (s *Scheduler) runJob(
	ctx context.Context,
	name string,
	timeout time.Duration,
	fn func(context.Context) (int, error),
) error {
	runID, err := s.store.InsertJobRun(ctx, name)
	if err != nil {
		s.log.Error("recording job start", "job", name, "error", err)
	}

	jobCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	s.log.Info("job starting", "job", name)
	start := time.Now()
	rows, jobErr := fn(jobCtx)

	status, errText := domain.JobStatusSucceeded, ""
	if jobErr != nil {
		status, errText = domain.JobStatusFailed, jobErr.Error()
		s.log.Error("job failed", "job", name, "duration", time.Since(start), "error", jobErr)
	} else {
		s.log.Info("job complete", "job", name, "duration", time.Since(start), "rows", rows)
	}
	metrics.JobRunsTotal.WithLabelValues(name, status).Inc()

	if runID != "" {
		if err := s.store.CompleteJobRun(
			context.WithoutCancel(ctx), runID, status, errText, rows,
		); err != nil {
			s.log.Error("recording job completion", "job", name, "error", err)
		}
	}
	return jobErr
}
