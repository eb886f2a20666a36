package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/pedidos-sync/internal/client"
	"github.com/denmor86/pedidos-sync/internal/extractor"
	"github.com/denmor86/pedidos-sync/internal/logger"
	"github.com/denmor86/pedidos-sync/internal/metrics"
	"github.com/denmor86/pedidos-sync/internal/models"
	"github.com/denmor86/pedidos-sync/internal/storage"
	"github.com/denmor86/pedidos-sync/internal/validators"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=pipeline.go -destination=mocks/mock_pipeline.go -package=mocks

// PipelineService - один запуск загрузки заказов за период
type PipelineService interface {
	Run(ctx context.Context, period time.Time) models.Report
}

// Pipeline - загрузка: API -> разбор записей -> upsert и сверка статусов.
// Ошибки не выходят за пределы Run, результат отражается в отчёте и логах.
type Pipeline struct {
	API     client.OrdersAPI
	Pool    storage.Pool
	Metrics *metrics.Registry
}

// Создание сервиса
func NewPipeline(api client.OrdersAPI, pool storage.Pool, registry *metrics.Registry) *Pipeline {
	return &Pipeline{API: api, Pool: pool, Metrics: registry}
}

func (p *Pipeline) Run(ctx context.Context, period time.Time) (report models.Report) {
	start := time.Now()
	report = models.Report{
		RunID:  uuid.NewString(),
		Period: validators.FormatPeriod(period),
	}
	log := logger.Get().With("run_id", report.RunID, "periodo", report.Period)

	defer func() {
		if r := recover(); r != nil {
			report.Outcome = models.OutcomeFailed
			report.Error = fmt.Sprintf("panic: %v", r)
			log.Errorw("pipeline panic recovered", "panic", r)
		}
		report.Duration = time.Since(start)
		p.Metrics.Observe(report)
		log.Infow("pipeline finished",
			"outcome", report.Outcome,
			"fetched", report.Fetched,
			"valid", report.Valid,
			"rejected", report.Rejected,
			"inserted", report.Inserted,
			"updated", report.Updated,
			"duration", report.Duration,
		)
	}()

	// START -> FETCHED
	body, err := p.API.GetOrders(ctx, period)
	if err != nil {
		// недоступность API равнозначна отсутствию заказов, следующий запуск попробует снова
		log.Errorw("failed to fetch orders, no orders this run", zap.Error(err))
		report.Outcome = models.OutcomeNoData
		report.Error = err.Error()
		return report
	}
	records, err := client.DecodeOrders(body)
	if err != nil {
		log.Warnw("orders api response is not a list", zap.Error(err))
		report.Outcome = models.OutcomeInvalidPayload
		report.Error = err.Error()
		return report
	}
	report.Fetched = len(records)
	log.Infow("orders fetched", "count", report.Fetched)

	// FETCHED -> EXTRACTED
	orders := p.extract(log, records, &report)
	if len(orders) == 0 {
		log.Infow("no valid orders to persist")
		report.Outcome = models.OutcomeNoData
		return report
	}

	// EXTRACTED -> PERSISTED
	err = p.Pool.WithConn(ctx, func(s storage.OrdersStorage) error {
		inserted, upsertErr := s.UpsertBatch(ctx, orders)
		if upsertErr != nil {
			log.Errorw("failed to insert orders", zap.Error(upsertErr))
		}
		updated, reconcileErr := s.ReconcileStatus(ctx, orders)
		if reconcileErr != nil {
			log.Errorw("failed to reconcile order statuses", zap.Error(reconcileErr))
		}
		report.Inserted = inserted
		report.Updated = updated
		return errors.Join(upsertErr, reconcileErr)
	})
	log.Infow("orders inserted", "count", report.Inserted)
	log.Infow("order statuses updated", "count", report.Updated)
	if err != nil {
		report.Outcome = models.OutcomeFailed
		report.Error = err.Error()
		return report
	}

	// PERSISTED -> DONE
	report.Outcome = models.OutcomeDone
	return report
}

// extract - разбор записей по одной; отклонённые и повторные номера пропускаются
func (p *Pipeline) extract(log *zap.SugaredLogger, records []json.RawMessage, report *models.Report) []models.Order {
	orders := make([]models.Order, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, raw := range records {
		order, err := extractor.Extract(raw)
		if err != nil {
			var rejected *extractor.RejectedError
			field := ""
			if errors.As(err, &rejected) {
				field = rejected.Field
			}
			log.Warnw("order rejected", "index", i, "field", field, zap.Error(err))
			report.Rejected++
			continue
		}
		if _, ok := seen[order.Number]; ok {
			log.Warnw("duplicate order number in batch, keeping first", "numero_pedido", order.Number)
			continue
		}
		seen[order.Number] = struct{}{}
		orders = append(orders, order)
	}
	report.Valid = len(orders)
	return orders
}
