package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// RawOrder - заказ в формате API. Все поля указатели: отсутствие поля и null различаются
// от заполненного значения, обязательность проверяет extractor.
type RawOrder struct {
	Code       json.RawMessage `json:"codigo"`
	Situation  *RawSituation   `json:"situacao"`
	Franchisee *RawNamed       `json:"franqueado"`
	Supplier   *RawNamed       `json:"fornecedor"`
	CreatedAt  *string         `json:"dataCriacao"`
	Items      *[]RawItem      `json:"itensPedido"`
}

type RawSituation struct {
	Description *string `json:"descricao"`
}

type RawNamed struct {
	Name *string `json:"nome"`
}

// RawItem - позиция заказа
type RawItem struct {
	Quantity  *decimal.Decimal `json:"quantidadeProdutos"`
	UnitPrice *decimal.Decimal `json:"valorUnitario"`
}
