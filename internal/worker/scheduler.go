package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"

	"github.com/osse101/QuestBoard_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Scheduler runs jobs on fixed intervals. A job never overlaps with itself;
// a tick that arrives while the previous run is still going is skipped.
type Scheduler struct {
	sched   gocron.Scheduler
	timeout time.Duration

	mu   sync.Mutex
	jobs map[string]gocron.Job

	ctx    context.Context
	cancel context.CancelFunc
}

// NewScheduler creates a stopped scheduler driven by clock
func NewScheduler(clock clockwork.Clock, jobTimeout time.Duration) (*Scheduler, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if jobTimeout <= 0 {
		jobTimeout = DefaultJobTimeout
	}

	sched, err := gocron.NewScheduler(
		gocron.WithClock(clock),
		gocron.WithStopTimeout(DefaultStopTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateScheduler, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		sched:   sched,
		timeout: jobTimeout,
		jobs:    make(map[string]gocron.Job),
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Every registers job to run once per interval under name
func (s *Scheduler) Every(name string, interval time.Duration, job Job) error {
	if interval <= 0 {
		return fmt.Errorf(ErrMsgInvalidInterval, name, interval)
	}

	j, err := s.sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { s.run(name, job) }),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf(ErrMsgRegisterJob, name, err)
	}

	s.mu.Lock()
	s.jobs[name] = j
	s.mu.Unlock()

	logger.FromContext(s.ctx).Info(LogMsgJobRegistered, "job", name, "interval", interval)
	return nil
}

// run executes one job with a bounded context. Errors are logged, not returned,
// so a failing run never stops the schedule.
func (s *Scheduler) run(name string, job Job) {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	log := logger.FromContext(ctx).With("job", name)
	log.Debug(LogMsgJobStarting)

	start := time.Now()
	if err := job.Process(ctx); err != nil {
		log.Error(LogMsgJobFailed, "error", err, "duration", time.Since(start))
		return
	}
	log.Debug(LogMsgJobCompleted, "duration", time.Since(start))
}

// RunNow triggers a registered job immediately without changing its schedule
func (s *Scheduler) RunNow(name string) error {
	s.mu.Lock()
	j, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf(ErrMsgUnknownJob, name)
	}
	return j.RunNow()
}

// JobNames returns the names of the registered jobs
func (s *Scheduler) JobNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	return names
}

// Start begins running registered jobs
func (s *Scheduler) Start() {
	s.sched.Start()
	logger.FromContext(s.ctx).Info(LogMsgSchedulerStarted, "jobs", len(s.JobNames()))
}

// Shutdown cancels in-flight runs and waits for them to return
func (s *Scheduler) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgSchedulerShutdown)
	s.cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.sched.Shutdown()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
