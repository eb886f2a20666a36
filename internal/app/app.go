package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/pedidos-sync/internal/client"
	"github.com/denmor86/pedidos-sync/internal/config"
	"github.com/denmor86/pedidos-sync/internal/logger"
	"github.com/denmor86/pedidos-sync/internal/metrics"
	"github.com/denmor86/pedidos-sync/internal/network/router"
	"github.com/denmor86/pedidos-sync/internal/services"
	"github.com/denmor86/pedidos-sync/internal/storage"
	"github.com/denmor86/pedidos-sync/internal/validators"
	"github.com/denmor86/pedidos-sync/internal/worker"
)

// LoadLocation - часовой пояс расписания и "сегодня", UTC если зона неизвестна
func LoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Warnw("unknown timezone, using UTC", "timezone", name, "error", err)
		return time.UTC
	}
	return loc
}

// NewPipeline - сборка загрузки: клиент API, пул БД, метрики
func NewPipeline(config config.Config, pool storage.Pool, registry *metrics.Registry) *services.Pipeline {
	api := client.NewClient(
		config.API.BaseURL,
		config.API.APIKey,
		&http.Client{},
		client.WithTimeout(config.API.RequestTimeout),
		client.WithLimiter(client.NewRateLimiter(config.API.RateLimit)),
	)
	// breaker общий для плановых и ручных запусков
	guarded := client.NewGuardedAPI(api, config.API.BreakerTimeout, config.API.BreakerFailures)
	return services.NewPipeline(guarded, pool, registry)
}

// openDatabase - пул создаётся и без доступной БД; схема готовится сразу, если БД отвечает,
// иначе при первом запуске, которому понадобится соединение
func openDatabase(ctx context.Context, config config.Config) (*storage.Database, error) {
	db, err := storage.NewDatabase(ctx, config.Database)
	if err != nil {
		return nil, err
	}
	readyCtx, cancel := context.WithTimeout(ctx, storage.PingTimeout)
	defer cancel()
	_ = db.Ready(readyCtx)
	return db, nil
}

// Run - запуск сервиса до сигнала остановки. В режиме RunOnce выполняется одна загрузка
// и возвращается код выхода
func Run(config config.Config) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Serve(ctx, config)
}

// Serve - работа сервиса до отмены ctx
func Serve(ctx context.Context, config config.Config) int {

	loc := LoadLocation(config.Pipeline.Timezone)

	db, err := openDatabase(ctx, config)
	if err != nil {
		logger.Errorw("invalid database configuration", "error", err)
		return 1
	}
	defer db.Close()

	registry := metrics.NewRegistry()
	pipeline := NewPipeline(config, db, registry)

	if config.Pipeline.RunOnce {
		return RunOnce(ctx, config, pipeline, loc)
	}

	// Создание воркера по расписанию
	worker, err := worker.NewPipelineWorker(pipeline, config.Pipeline.RunSchedule, loc)
	if err != nil {
		logger.Errorw("invalid run schedule", "error", err)
		return 1
	}

	reports := services.NewReports(storage.NewReportsStorage(db))
	router := router.NewRouter(config, pipeline, reports, loc, registry.Handler())

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}
	worker.Start(ctx)

	go func() {
		logger.Infow("Starting server", "addr", config.Server.ListenAddr, "schedule", config.Pipeline.RunSchedule,
			"timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown server")
	worker.Stop()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
	return 0
}

// RunOnce - одна загрузка за настроенный период (по умолчанию сегодня)
func RunOnce(ctx context.Context, config config.Config, pipeline services.PipelineService, loc *time.Location) int {
	period, err := validators.ResolvePeriod(config.Pipeline.Period, time.Now(), loc)
	if err != nil {
		logger.Errorw("invalid period", "error", err)
		return 2
	}
	report := pipeline.Run(ctx, period)
	fmt.Printf("%s %s fetched=%d valid=%d rejected=%d inserted=%d updated=%d\n",
		report.Period, report.Outcome, report.Fetched, report.Valid, report.Rejected, report.Inserted, report.Updated)
	if report.Failed() {
		return 1
	}
	return 0
}
