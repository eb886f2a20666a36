package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/pedidos-sync/internal/logger"
	"github.com/sony/gobreaker"
)

const (
	DefaultBreakerTimeout  = 30 * time.Minute
	DefaultBreakerFailures = 5
)

// ErrCircuitOpen - API отключено после серии неудачных загрузок, запрос не выполнялся
var ErrCircuitOpen = errors.New("orders api circuit open")

func InitCircuitBreaker(timeout time.Duration, failures uint32) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "orders-api",
		Timeout: timeout, // после паузы пропускаем одну пробную загрузку
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// отмена вызывающей стороной не говорит о состоянии API
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Infow("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

// GuardedAPI - OrdersAPI за circuit breaker; один экземпляр на процесс,
// его делят плановые запуски и ручной запуск
type GuardedAPI struct {
	API     OrdersAPI
	Breaker *gobreaker.CircuitBreaker
}

func NewGuardedAPI(api OrdersAPI, timeout time.Duration, failures uint32) *GuardedAPI {
	return &GuardedAPI{API: api, Breaker: InitCircuitBreaker(timeout, failures)}
}

func (g *GuardedAPI) GetOrders(ctx context.Context, period time.Time) ([]byte, error) {
	body, err := g.Breaker.Execute(func() (interface{}, error) {
		return g.API.GetOrders(ctx, period)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		logger.Warnw("orders api skipped, circuit breaker open", "name", g.Breaker.Name())
		return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}
	if err != nil {
		return nil, err
	}
	return body.([]byte), nil
}
