package storage

import (
	"context"
	"errors"

	"github.com/denmor86/pedidos-sync/internal/models"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=storage.go -destination=mocks/mock_storage.go -package=mocks

// Beginner - источник транзакций (pgxpool.Conn, pgxpool.Pool, pgx.Conn)
type Beginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// OrdersStorage - пакетные операции над таблицей pedidos
type OrdersStorage interface {
	// UpsertBatch вставляет заказы, конфликт по numero_pedido пропускается; возвращает число вставленных
	UpsertBatch(ctx context.Context, orders []models.Order) (int64, error)
	// ReconcileStatus обновляет статус там, где он отличается; возвращает число изменённых строк
	ReconcileStatus(ctx context.Context, orders []models.Order) (int64, error)
}

// Pool - выдача соединения на время fn с гарантированным возвратом в пул
type Pool interface {
	WithConn(ctx context.Context, fn func(orders OrdersStorage) error) error
}

// ReportsStorage - чтение агрегатов для аналитики
type ReportsStorage interface {
	Totals(ctx context.Context) (models.Totals, error)
	MonthlyTotals(ctx context.Context) ([]models.MonthlyTotal, error)
	TopFranchisees(ctx context.Context, limit int) ([]models.FranchiseeRank, error)
}

var (
	ErrConnection = errors.New("database connection unavailable")
	ErrStatement  = errors.New("database statement failed")
)
