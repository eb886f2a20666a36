package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/denmor86/pedidos-sync/internal/logger"
	"github.com/denmor86/pedidos-sync/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	upsertColumns = 7
	// 65535 параметров на запрос в PostgreSQL, с запасом
	MaxRowsPerStatement = 1000

	UpsertOrdersPrefix = `INSERT INTO pedidos (numero_pedido, status, franqueado, fornecedor, data_pedido, mes_pedido, valor_pedido) VALUES `
	UpsertOrdersSuffix = ` ON CONFLICT (numero_pedido) DO NOTHING;`

	ReconcileStatusPrefix = `UPDATE pedidos AS p SET status = v.status, updated_at = NOW() FROM (VALUES `
	ReconcileStatusSuffix = `) AS v(numero_pedido, status) WHERE p.numero_pedido = v.numero_pedido AND p.status IS DISTINCT FROM v.status;`
)

// Statement - SQL выражение с аргументами
type Statement struct {
	SQL  string
	Args []any
}

type OrderDatabase struct {
	Conn Beginner
}

// Создание хранилища поверх выданного соединения
func NewOrdersStorage(conn Beginner) OrdersStorage {
	return &OrderDatabase{Conn: conn}
}

// UpsertBatch - многострочный INSERT ... ON CONFLICT DO NOTHING в одной транзакции
func (s *OrderDatabase) UpsertBatch(ctx context.Context, orders []models.Order) (int64, error) {
	if len(orders) == 0 {
		return 0, nil
	}
	return s.execInTx(ctx, "upsert", BuildUpsert(orders, MaxRowsPerStatement))
}

// ReconcileStatus - UPDATE ... FROM (VALUES ...) только для строк с отличающимся статусом
func (s *OrderDatabase) ReconcileStatus(ctx context.Context, orders []models.Order) (int64, error) {
	if len(orders) == 0 {
		return 0, nil
	}
	return s.execInTx(ctx, "reconcile", BuildReconcile(orders, MaxRowsPerStatement))
}

// execInTx - все выражения в одной транзакции: при любой ошибке откат и ноль затронутых строк
func (s *OrderDatabase) execInTx(ctx context.Context, op string, statements []Statement) (affected int64, err error) {
	tx, err := s.Conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		logger.Errorw("failed to begin transaction", "operation", op, "error", err)
		return 0, fmt.Errorf("%w: begin %s: %v", ErrStatement, op, err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Errorw("rollback failed", "operation", op, "error", rbErr)
			}
			affected = 0
		}
	}()

	for _, st := range statements {
		tag, execErr := tx.Exec(ctx, st.SQL, st.Args...)
		if execErr != nil {
			logger.Errorw("statement failed, transaction rolled back", "operation", op, "error", execErr)
			err = fmt.Errorf("%w: %s: %v", ErrStatement, op, execErr)
			return 0, err
		}
		affected += tag.RowsAffected()
	}

	if err = tx.Commit(ctx); err != nil {
		logger.Errorw("commit failed", "operation", op, "error", err)
		err = fmt.Errorf("%w: commit %s: %v", ErrStatement, op, err)
		return 0, err
	}
	return affected, nil
}

// BuildUpsert - выражения вставки, не более rowsPerStatement строк в каждом
func BuildUpsert(orders []models.Order, rowsPerStatement int) []Statement {
	var statements []Statement
	for _, chunk := range chunks(orders, rowsPerStatement) {
		var sb strings.Builder
		args := make([]any, 0, len(chunk)*upsertColumns)
		sb.WriteString(UpsertOrdersPrefix)
		for i, o := range chunk {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(placeholders(i*upsertColumns, upsertColumns, nil))
			args = append(args, o.Number, o.Status, o.Franchisee, o.Supplier, o.CreatedAt, o.MonthName, o.Value)
		}
		sb.WriteString(UpsertOrdersSuffix)
		statements = append(statements, Statement{SQL: sb.String(), Args: args})
	}
	return statements
}

// BuildReconcile - выражения сверки статусов, не более rowsPerStatement строк в каждом
func BuildReconcile(orders []models.Order, rowsPerStatement int) []Statement {
	casts := []string{"text", "text"}
	var statements []Statement
	for _, chunk := range chunks(orders, rowsPerStatement) {
		var sb strings.Builder
		args := make([]any, 0, len(chunk)*2)
		sb.WriteString(ReconcileStatusPrefix)
		for i, o := range chunk {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(placeholders(i*2, 2, casts))
			args = append(args, o.Number, o.Status)
		}
		sb.WriteString(ReconcileStatusSuffix)
		statements = append(statements, Statement{SQL: sb.String(), Args: args})
	}
	return statements
}

// placeholders - "($n+1, ..., $n+count)" с необязательными приведениями типов
func placeholders(offset, count int, casts []string) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for j := 0; j < count; j++ {
		if j > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "$%d", offset+j+1)
		if casts != nil {
			sb.WriteString("::" + casts[j])
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

func chunks(orders []models.Order, size int) [][]models.Order {
	if size <= 0 {
		size = len(orders)
	}
	var out [][]models.Order
	for start := 0; start < len(orders); start += size {
		end := min(start+size, len(orders))
		out = append(out, orders[start:end])
	}
	return out
}
