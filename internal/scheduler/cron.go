package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/exp/slog"

	"futuremail/internal/domain/notifier"
)

// Scheduler owns the unlock-sweep lifecycle: it runs the notifier on a cron
// schedule and is started and stopped by the composition root. A failing
// tick is logged and the next tick runs as scheduled; nothing here can take
// the process down. Overlapping ticks are skipped in-process; at-most-once
// across multiple instances is not guaranteed.
type Scheduler struct {
	cron     *cron.Cron
	notifier *notifier.Service
	schedule string
	log      *slog.Logger
}

func New(n *notifier.Service, schedule string, log *slog.Logger) *Scheduler {
	log = log.With("component", "scheduler")
	cronLog := &cronLogger{log: log}

	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cronLog),
			cron.Recover(cronLog),
		)),
		notifier: n,
		schedule: schedule,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if _, err := s.notifier.Sweep(context.Background(), time.Now()); err != nil {
			s.log.Error("sweep tick failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("unlock sweep scheduled", "schedule", s.schedule)
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("unlock sweep stopped")
}

// cronLogger adapts slog to the cron logging interface.
type cronLogger struct {
	log *slog.Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
