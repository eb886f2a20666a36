// Package extractor переводит заказ из формата API в нормализованную модель.
package extractor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/pedidos-sync/internal/helpers"
	"github.com/denmor86/pedidos-sync/internal/models"
	"github.com/shopspring/decimal"
)

// CreatedAtLayout - формат dataCriacao (микросекунды, суффикс Z)
const CreatedAtLayout = "2006-01-02T15:04:05.999999Z"

// Пути обязательных полей
const (
	FieldRecord     = "pedido"
	FieldCode       = "codigo"
	FieldStatus     = "situacao.descricao"
	FieldFranchisee = "franqueado.nome"
	FieldSupplier   = "fornecedor.nome"
	FieldCreatedAt  = "dataCriacao"
	FieldItems      = "itensPedido"
)

var ErrRejected = errors.New("order rejected")

// RejectedError - причина отклонения записи: путь поля и, если есть, исходная ошибка
type RejectedError struct {
	Field string
	Err   error
}

func (e *RejectedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("order rejected: field %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("order rejected: missing field %s", e.Field)
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}

func missing(field string) error {
	return &RejectedError{Field: field}
}

func invalid(field string, err error) error {
	return &RejectedError{Field: field, Err: err}
}

// Extract - разбор одной записи API. Ошибка всегда *RejectedError, паники наружу не выходят.
func Extract(raw json.RawMessage) (order models.Order, err error) {
	defer func() {
		if r := recover(); r != nil {
			order, err = models.Order{}, invalid(FieldRecord, fmt.Errorf("%v", r))
		}
	}()

	var rec models.RawOrder
	if err := json.Unmarshal(raw, &rec); err != nil {
		return models.Order{}, invalid(FieldRecord, err)
	}
	return FromRaw(rec)
}

// FromRaw - проверка обязательных полей и нормализация
func FromRaw(rec models.RawOrder) (models.Order, error) {
	number, err := orderNumber(rec.Code)
	if err != nil {
		return models.Order{}, err
	}
	if rec.Situation == nil || rec.Situation.Description == nil {
		return models.Order{}, missing(FieldStatus)
	}
	if rec.Franchisee == nil || rec.Franchisee.Name == nil {
		return models.Order{}, missing(FieldFranchisee)
	}
	if rec.Supplier == nil || rec.Supplier.Name == nil {
		return models.Order{}, missing(FieldSupplier)
	}
	if rec.CreatedAt == nil {
		return models.Order{}, missing(FieldCreatedAt)
	}
	if rec.Items == nil {
		return models.Order{}, missing(FieldItems)
	}

	createdAt, err := time.Parse(CreatedAtLayout, *rec.CreatedAt)
	if err != nil {
		return models.Order{}, invalid(FieldCreatedAt, err)
	}

	value, err := OrderValue(*rec.Items)
	if err != nil {
		return models.Order{}, err
	}

	return models.Order{
		Number:     number,
		Status:     helpers.NormalizeStatus(*rec.Situation.Description),
		Franchisee: *rec.Franchisee.Name,
		Supplier:   helpers.NormalizeSupplier(*rec.Supplier.Name),
		CreatedAt:  createdAt,
		MonthName:  helpers.MonthName(createdAt.Month()),
		Value:      value,
	}, nil
}

// OrderValue - сумма quantidadeProdutos * valorUnitario по всем позициям
func OrderValue(items []models.RawItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for i, item := range items {
		if item.Quantity == nil {
			return decimal.Zero, missing(fmt.Sprintf("%s[%d].quantidadeProdutos", FieldItems, i))
		}
		if item.UnitPrice == nil {
			return decimal.Zero, missing(fmt.Sprintf("%s[%d].valorUnitario", FieldItems, i))
		}
		total = total.Add(item.Quantity.Mul(*item.UnitPrice))
	}
	return total, nil
}

// номер заказа приходит строкой или числом, храним как текст
func orderNumber(code json.RawMessage) (string, error) {
	code = bytes.TrimSpace(code)
	if len(code) == 0 || bytes.Equal(code, []byte("null")) {
		return "", missing(FieldCode)
	}
	switch {
	case code[0] == '"':
		var s string
		if err := json.Unmarshal(code, &s); err != nil {
			return "", invalid(FieldCode, err)
		}
		if s == "" {
			return "", missing(FieldCode)
		}
		return s, nil
	case code[0] == '-' || (code[0] >= '0' && code[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(code, &n); err != nil {
			return "", invalid(FieldCode, err)
		}
		return n.String(), nil
	default:
		return "", invalid(FieldCode, fmt.Errorf("unexpected value %s", code))
	}
}
