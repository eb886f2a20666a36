package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"
	"time"

	"github.com/denmor86/pedidos-sync/internal/config"
	"github.com/denmor86/pedidos-sync/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type Database struct {
	Pool   *pgxpool.Pool
	Config *pgx.ConnConfig
	DSN    string

	// подготовка схемы выполняется при первом удачном обращении и повторяется, пока не пройдёт
	mu       sync.Mutex
	prepared bool
	prepare  func(ctx context.Context, dsn string) error
}

const (
	CheckExist        = `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname =$1)`
	CreateDatabaseSQL = `CREATE DATABASE %s`
)

// PingTimeout - ограничение на проверку связи при старте
const PingTimeout = 5 * time.Second

// NewDatabase - создание пула соединений с ограничениями min/max. Пул не требует доступной БД:
// неудачная проверка связи только логируется, соединения устанавливаются по требованию
func NewDatabase(ctx context.Context, cfg config.DatabaseConfig) (*Database, error) {
	dsn := cfg.ConnString()
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolCfg.MinConns = int32(cfg.PoolMin)
	poolCfg.MaxConns = int32(cfg.PoolMax)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Errorw("unable to create connection pool", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	db := &Database{Pool: pool, Config: poolCfg.ConnConfig, DSN: dsn, prepare: Initialize}

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		logger.Errorw("database connection failed, will retry on next run",
			"host", poolCfg.ConnConfig.Host, "database", poolCfg.ConnConfig.Database, "error", err)
		return db, nil
	}
	logger.Infow("database connection established",
		"host", poolCfg.ConnConfig.Host,
		"database", poolCfg.ConnConfig.Database,
		"pool_min", poolCfg.MinConns,
		"pool_max", poolCfg.MaxConns,
	)
	return db, nil
}

// Ready - создание БД и миграция, если ещё не выполнены
func (s *Database) Ready(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prepared {
		return nil
	}
	if s.prepare != nil {
		if err := s.prepare(ctx, s.DSN); err != nil {
			logger.Errorw("database is not ready", "error", err)
			return fmt.Errorf("%w: %v", ErrConnection, err)
		}
	}
	s.prepared = true
	return nil
}

// Initialize - подготовка хранилища (создание БД, миграция)
func Initialize(ctx context.Context, dsn string) error {
	if err := CreateDatabase(ctx, dsn); err != nil {
		return fmt.Errorf("error create database: %w", err)
	}
	if err := Migration(dsn); err != nil {
		return fmt.Errorf("error migrate database: %w", err)
	}
	return nil
}

//go:embed migrations/*.sql
var embedMigrations embed.FS

func Migration(DatabaseDSN string) error {
	db, err := sql.Open("pgx", DatabaseDSN)
	if err != nil {
		return fmt.Errorf("open db error: %w ", err)
	}
	defer db.Close()
	// используется для внутренней файловой системы (загруженные ресурсы)
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect error: %w ", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose run migrations error:  %w ", err)
	}
	return nil
}

// WithConn - берёт соединение из пула на время fn; возврат в пул выполняется всегда, в том числе при панике
func (s *Database) WithConn(ctx context.Context, fn func(orders OrdersStorage) error) error {
	if err := s.Ready(ctx); err != nil {
		return err
	}
	conn, err := s.Pool.Acquire(ctx)
	if err != nil {
		logger.Errorw("failed to acquire database connection", "error", err)
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer conn.Release()
	return fn(NewOrdersStorage(conn))
}

func (s *Database) Close() error {
	s.Pool.Close()
	return nil
}

func CreateDatabase(ctx context.Context, dsn string) error {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}
	// goose не умеет создавать БД
	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err == nil {
		return conn.Close(ctx)
	}
	// если не получилось соединиться с БД из строки подключения
	// пробуем использовать дефолтную БД
	cfg := connCfg.Copy()
	cfg.Database = `postgres`
	conn, err = pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	defer conn.Close(ctx)

	var exist bool
	err = conn.QueryRow(ctx, CheckExist, connCfg.Database).Scan(&exist)
	if err != nil {
		return fmt.Errorf("failed to check database exists: %w", err)
	}
	if !exist {
		_, err = conn.Exec(ctx, fmt.Sprintf(CreateDatabaseSQL, pgx.Identifier{connCfg.Database}.Sanitize()))
		if err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
		logger.Infow("database created", "database", connCfg.Database)
	}
	return nil
}
