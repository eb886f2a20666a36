package client

import (
	"context"
	"errors"
	"net/http"
	"time"
)

//go:generate mockgen -source=types.go -destination=mocks/mock_client.go -package=mocks

// HTTPClient - транспорт, подменяется в тестах
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OrdersAPI - получение заказов за период (сырой JSON ответа)
type OrdersAPI interface {
	GetOrders(ctx context.Context, period time.Time) ([]byte, error)
}

var (
	ErrServiceUnavailable = errors.New("orders api unavailable")
	ErrUnexpectedStatus   = errors.New("orders api unexpected status")
	ErrRateLimited        = errors.New("orders api rate limit exceeded")
	ErrPayloadNotList     = errors.New("orders api payload is not a list")
	ErrMalformedPayload   = errors.New("orders api payload is malformed")
)

// StatusError - ответ API с кодом вне 2xx
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	return e.Err.Error() + ": " + http.StatusText(e.Code)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// retryableStatus - коды, при которых GET повторяется
func retryableStatus(code int) bool {
	switch code {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
