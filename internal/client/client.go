package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/denmor86/pedidos-sync/internal/logger"
	"github.com/denmor86/pedidos-sync/internal/validators"
	"github.com/sethvargo/go-retry"
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryBase  = time.Second
	DefaultMaxRetries = 3

	apiKeyHeader = "x-api-key"
	periodParam  = "periodo"
	ordersPath   = "/pedidos/"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	limiter    *RateLimiter
	timeout    time.Duration
	retryBase  time.Duration
	maxRetries uint64
}

type Option func(*Client)

// WithTimeout - таймаут одной попытки запроса
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRetry - начальная задержка (удваивается) и число повторов
func WithRetry(base time.Duration, maxRetries uint64) Option {
	return func(c *Client) {
		c.retryBase = base
		c.maxRetries = maxRetries
	}
}

func WithLimiter(limiter *RateLimiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

func NewClient(baseURL string, apiKey string, client HTTPClient, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: client,
		limiter:    NewRateLimiter(0),
		timeout:    DefaultTimeout,
		retryBase:  DefaultRetryBase,
		maxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrders - GET /pedidos/?periodo=YYYY-MM-DD. Ответы 500/502/503/504 и сетевые ошибки
// повторяются с экспоненциальной задержкой, остальные коды вне 2xx возвращаются сразу.
func (c *Client) GetOrders(ctx context.Context, period time.Time) ([]byte, error) {
	u, err := url.Parse(c.baseURL + ordersPath)
	if err != nil {
		return nil, fmt.Errorf("invalid orders api url: %w", err)
	}
	q := u.Query()
	q.Set(periodParam, validators.FormatPeriod(period))
	u.RawQuery = q.Encode()

	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.retryBase))

	var (
		body    []byte
		attempt int
	)
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		b, err := c.get(ctx, u.String())
		if err == nil {
			body = b
			return nil
		}
		if ctx.Err() == nil && retryable(err) {
			logger.Warnw("orders api request failed, retrying", "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		logger.Errorw("failed to get orders from api", "periodo", validators.FormatPeriod(period), "attempts", attempt, "error", err)
		return nil, err
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read orders api response: %w", err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}
	return nil, c.handleErrorResponse(resp)
}

func (c *Client) handleErrorResponse(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		c.limiter.BlockFor(ParseRetryAfter(resp.Header))
		return &StatusError{Code: resp.StatusCode, Err: ErrRateLimited}
	case retryableStatus(resp.StatusCode):
		return &StatusError{Code: resp.StatusCode, Err: ErrServiceUnavailable}
	default:
		return &StatusError{Code: resp.StatusCode, Err: ErrUnexpectedStatus}
	}
}

// повторяем 5xx из списка и транспортные ошибки; коды 4xx и лимит - нет
func retryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return retryableStatus(statusErr.Code)
	}
	return !errors.Is(err, ErrRateLimited)
}

// DecodeOrders - тело ответа должно быть JSON массивом, элементы разбираются по одному дальше
func DecodeOrders(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedPayload)
	}
	if !json.Valid(trimmed) {
		return nil, ErrMalformedPayload
	}
	if trimmed[0] != '[' {
		return nil, ErrPayloadNotList
	}
	var records []json.RawMessage
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return records, nil
}
