package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/denmor86/pedidos-sync/internal/config"
	"github.com/denmor86/pedidos-sync/internal/logger"
	"github.com/shopspring/decimal"
)

// newTestDatabase - пул к реальной БД из TEST_DATABASE_DSN, иначе тест пропускается
func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}
	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := Initialize(ctx, dsn); err != nil {
		t.Fatalf("failed to initialize database: %v", err)
	}
	cfg.Database.DSN = dsn
	db, err := NewDatabase(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if _, err := db.Pool.Exec(ctx, `TRUNCATE pedidos;`); err != nil {
		t.Fatalf("failed to truncate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDatabase_IdempotentUpsertAndReconcile(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	orders := testOrders("100", "200")

	var inserted, again, updated, unchanged int64
	err := db.WithConn(ctx, func(s OrdersStorage) error {
		var err error
		if inserted, err = s.UpsertBatch(ctx, orders); err != nil {
			return err
		}
		if again, err = s.UpsertBatch(ctx, orders); err != nil {
			return err
		}
		if unchanged, err = s.ReconcileStatus(ctx, orders); err != nil {
			return err
		}
		orders[1].Status = "CANCELADO"
		updated, err = s.ReconcileStatus(ctx, orders)
		return err
	})
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if inserted != 2 || again != 0 {
		t.Errorf("Expected 2 then 0 inserted, got %d then %d", inserted, again)
	}
	if unchanged != 0 || updated != 1 {
		t.Errorf("Expected 0 then 1 updated, got %d then %d", unchanged, updated)
	}

	var rows int
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM pedidos;`).Scan(&rows); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if rows != 2 {
		t.Errorf("Expected 2 rows, got %d", rows)
	}

	reports := NewReportsStorage(db)
	totals, err := reports.MonthlyTotals(ctx)
	if err != nil {
		t.Fatalf("monthly totals failed: %v", err)
	}
	if len(totals) != 1 || totals[0].Month != "2025-04" || totals[0].Orders != 2 {
		t.Errorf("unexpected monthly totals: %+v", totals)
	}

	summary, err := reports.Totals(ctx)
	if err != nil {
		t.Fatalf("totals failed: %v", err)
	}
	if summary.Orders != 2 || summary.ActiveFranchisees != 2 || !summary.Value.Equal(decimal.RequireFromString("51")) {
		t.Errorf("unexpected totals: %+v", summary)
	}
}
