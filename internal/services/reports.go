package services

import (
	"context"

	"github.com/denmor86/pedidos-sync/internal/logger"
	"github.com/denmor86/pedidos-sync/internal/models"
	"github.com/denmor86/pedidos-sync/internal/storage"
	"go.uber.org/zap"
)

const (
	DefaultTopFranchisees = 10
	MaxTopFranchisees     = 100
)

//go:generate mockgen -source=reports.go -destination=mocks/mock_reports.go -package=mocks

type ReportsService interface {
	Summary(ctx context.Context, top int) (*models.Summary, error)
}

type Reports struct {
	Storage storage.ReportsStorage
}

// Создание сервиса
func NewReports(storage storage.ReportsStorage) ReportsService {
	return &Reports{Storage: storage}
}

// Summary - общие показатели, помесячные итоги и рейтинг франчайзи по количеству заказов
func (s *Reports) Summary(ctx context.Context, top int) (*models.Summary, error) {
	if top <= 0 {
		top = DefaultTopFranchisees
	}
	top = min(top, MaxTopFranchisees)

	totals, err := s.Storage.Totals(ctx)
	if err != nil {
		logger.Error("Failed to get totals", zap.Error(err))
		return nil, err
	}
	monthly, err := s.Storage.MonthlyTotals(ctx)
	if err != nil {
		logger.Error("Failed to get monthly totals", zap.Error(err))
		return nil, err
	}
	ranks, err := s.Storage.TopFranchisees(ctx, top)
	if err != nil {
		logger.Error("Failed to get top franchisees", zap.Error(err))
		return nil, err
	}
	if monthly == nil {
		monthly = []models.MonthlyTotal{}
	}
	if ranks == nil {
		ranks = []models.FranchiseeRank{}
	}
	return &models.Summary{Totals: totals, Monthly: monthly, TopFranchisees: ranks}, nil
}
