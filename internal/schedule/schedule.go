package schedule

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler владеет единственным слотом cron'а для регулярной викторины.
// Start всегда останавливает предыдущий cron перед заменой, чтобы после
// переподключения не осталось двух работающих таймеров.
type Scheduler struct {
	spec string
	loc  *time.Location
	c    *cron.Cron
}

// NewScheduler создаёт новый Scheduler.
// spec — выражение cron (например, "0 9,13,18 * * 1-5").
func NewScheduler(spec string, loc *time.Location) *Scheduler {
	return &Scheduler{
		spec: spec,
		loc:  loc,
	}
}

// Start запускает cron с задачей job, предварительно остановив предыдущий.
func (s *Scheduler) Start(job func()) error {
	s.Stop()

	c := cron.New(cron.WithLocation(s.loc))
	if _, err := c.AddFunc(s.spec, job); err != nil {
		return err
	}

	c.Start()
	s.c = c

	slog.Info("quiz cron started", "spec", s.spec)

	return nil
}

// Stop останавливает cron и освобождает слот. Безопасен при пустом слоте.
func (s *Scheduler) Stop() {
	if s.c == nil {
		return
	}

	s.c.Stop()
	s.c = nil

	slog.Info("quiz cron stopped")
}

// Running сообщает, занят ли слот.
func (s *Scheduler) Running() bool {
	return s.c != nil
}
