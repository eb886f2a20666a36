package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order - нормализованный заказ (строка таблицы pedidos)
type Order struct {
	Number     string
	Status     string
	Franchisee string
	Supplier   string
	CreatedAt  time.Time
	MonthName  string
	Value      decimal.Decimal
}

// Итоги запуска загрузки
const (
	OutcomeDone           = "DONE"
	OutcomeNoData         = "NO_DATA"
	OutcomeInvalidPayload = "INVALID_PAYLOAD"
	OutcomeFailed         = "FAILED"
)

// Report - результат одного запуска загрузки заказов
type Report struct {
	RunID    string        `json:"run_id"`
	Period   string        `json:"periodo"`
	Outcome  string        `json:"outcome"`
	Fetched  int           `json:"fetched"`
	Valid    int           `json:"valid"`
	Rejected int           `json:"rejected"`
	Inserted int64         `json:"inserted"`
	Updated  int64         `json:"updated"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"-"`
}

// Failed - запуск завершился ошибкой
func (r Report) Failed() bool {
	return r.Outcome == OutcomeFailed
}
