package storage

import (
	"context"
	"fmt"

	"github.com/denmor86/pedidos-sync/internal/models"
	"github.com/shopspring/decimal"
)

const (
	GetTotals = `SELECT COUNT(*), COALESCE(SUM(valor_pedido), 0),
					COUNT(DISTINCT franqueado) FILTER (WHERE franqueado NOT ILIKE '%[Excluído]%')
				 FROM pedidos;`
	GetMonthlyTotals = `SELECT to_char(data_pedido, 'YYYY-MM') AS ano_mes, COUNT(*), COALESCE(SUM(valor_pedido), 0)
						FROM pedidos
						GROUP BY ano_mes
						ORDER BY ano_mes;`
	// франчайзи с пометкой [Excluído] не участвуют в рейтинге
	GetTopFranchisees = `SELECT franqueado, COUNT(*) AS qtd_pedidos
						 FROM pedidos
						 WHERE franqueado NOT ILIKE '%[Excluído]%'
						 GROUP BY franqueado
						 ORDER BY qtd_pedidos DESC, franqueado
						 LIMIT $1;`
)

type ReportDatabase struct {
	DB *Database
}

// Создание хранилища
func NewReportsStorage(db *Database) ReportsStorage {
	return &ReportDatabase{DB: db}
}

func (s *ReportDatabase) Totals(ctx context.Context) (models.Totals, error) {
	var totals models.Totals
	if err := s.DB.Ready(ctx); err != nil {
		return totals, err
	}
	err := s.DB.Pool.QueryRow(ctx, GetTotals).Scan(&totals.Orders, &totals.Value, &totals.ActiveFranchisees)
	if err != nil {
		return totals, fmt.Errorf("failed to get totals: %w", err)
	}
	return totals, nil
}

func (s *ReportDatabase) MonthlyTotals(ctx context.Context) ([]models.MonthlyTotal, error) {
	if err := s.DB.Ready(ctx); err != nil {
		return nil, err
	}
	var totals []models.MonthlyTotal
	rows, err := s.DB.Pool.Query(ctx, GetMonthlyTotals)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly totals: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			month  string
			orders int64
			value  decimal.Decimal
		)
		if err := rows.Scan(&month, &orders, &value); err != nil {
			return totals, fmt.Errorf("failed scan monthly totals: %w", err)
		}
		totals = append(totals, models.MonthlyTotal{Month: month, Orders: orders, Value: value})
	}
	return totals, rows.Err()
}

func (s *ReportDatabase) TopFranchisees(ctx context.Context, limit int) ([]models.FranchiseeRank, error) {
	if err := s.DB.Ready(ctx); err != nil {
		return nil, err
	}
	var ranks []models.FranchiseeRank
	rows, err := s.DB.Pool.Query(ctx, GetTopFranchisees, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top franchisees: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var rank models.FranchiseeRank
		if err := rows.Scan(&rank.Franchisee, &rank.Orders); err != nil {
			return ranks, fmt.Errorf("failed scan franchisee rank: %w", err)
		}
		ranks = append(ranks, rank)
	}
	return ranks, rows.Err()
}
