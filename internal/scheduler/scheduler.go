package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/central-university-dev/go-reaction-bot/internal/common/metrics"
)

type ChatConfigCounter interface {
	Count(ctx context.Context) (int64, error)
}

// Scheduler периодически обновляет метрику количества подключенных чатов.
type Scheduler struct {
	scheduler *gocron.Scheduler
	counter   ChatConfigCounter
	logger    *slog.Logger
	interval  time.Duration
	timeout   time.Duration
}

func NewScheduler(counter ChatConfigCounter, interval time.Duration, logger *slog.Logger) *Scheduler {
	scheduler := gocron.NewScheduler(time.UTC)

	timeout := interval
	if timeout > 30*time.Second || timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Scheduler{
		scheduler: scheduler,
		counter:   counter,
		logger:    logger,
		interval:  interval,
		timeout:   timeout,
	}
}

func (s *Scheduler) Start() {
	s.logger.Info("Запуск планировщика",
		"interval", s.interval.String(),
	)

	_, err := s.scheduler.Every(s.interval).SingletonMode().Do(s.collectStats)
	if err != nil {
		s.logger.Error("Ошибка при настройке планировщика",
			"error", err,
		)

		return
	}

	s.scheduler.StartAsync()
}

func (s *Scheduler) collectStats() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	count, err := s.counter.Count(ctx)
	if err != nil {
		s.logger.Error("Ошибка при подсчете подключенных чатов",
			"error", err,
		)

		return
	}

	metrics.SetConnectedChats(float64(count))

	s.logger.Debug("Статистика подключенных чатов обновлена",
		"count", count,
	)
}

func (s *Scheduler) Stop() {
	s.logger.Info("Остановка планировщика")
	s.scheduler.Stop()
}
