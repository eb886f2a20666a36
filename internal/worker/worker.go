package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/denmor86/pedidos-sync/internal/logger"
	"github.com/denmor86/pedidos-sync/internal/services"
	"github.com/denmor86/pedidos-sync/internal/validators"
	"github.com/robfig/cron/v3"
)

// PipelineWorker - запуск загрузки заказов по cron расписанию
type PipelineWorker struct {
	Pipeline  services.PipelineService
	Schedule  cron.Schedule
	WaitGroup sync.WaitGroup
	QuitChan  chan struct{}
	Location  *time.Location
	// источник текущего времени, подменяется в тестах
	Now func() time.Time
}

// NewPipelineWorker - конструктор воркера; spec - стандартное cron выражение из пяти полей
func NewPipelineWorker(pipeline services.PipelineService, spec string, loc *time.Location) (*PipelineWorker, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid run schedule %q: %w", spec, err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &PipelineWorker{
		Pipeline: pipeline,
		Schedule: schedule,
		QuitChan: make(chan struct{}),
		Location: loc,
		Now:      time.Now,
	}, nil
}

// Start - запускает воркер в фоне
func (w *PipelineWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *PipelineWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Next - ближайший запуск по расписанию в часовом поясе воркера
func (w *PipelineWorker) Next(now time.Time) time.Time {
	return w.Schedule.Next(now.In(w.Location))
}

// Run - ожидание ближайшего запуска из расписания
func (w *PipelineWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	for {
		now := w.Now()
		next := w.Next(now)
		if next.IsZero() {
			logger.Warn("PipelineWorker schedule has no next run, stop")
			return
		}
		logger.Infow("next pipeline run scheduled", "at", next)

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-w.QuitChan:
			timer.Stop()
			logger.Info("PipelineWorker signal stop")
			return
		case <-ctx.Done():
			timer.Stop()
			logger.Info("PipelineWorker context done")
			return
		case <-timer.C:
			w.Process(ctx)
		}
	}
}

// Process - один запуск за текущий день в часовом поясе воркера
func (w *PipelineWorker) Process(ctx context.Context) {
	period, _ := validators.ResolvePeriod("", w.Now(), w.Location)
	report := w.Pipeline.Run(ctx, period)
	if report.Failed() {
		logger.Warnw("scheduled pipeline run failed", "run_id", report.RunID, "error", report.Error)
	}
}
