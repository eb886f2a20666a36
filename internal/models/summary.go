package models

import "github.com/shopspring/decimal"

// MonthlyTotal - количество и сумма заказов за месяц (YYYY-MM)
type MonthlyTotal struct {
	Month  string          `json:"ano_mes"`
	Orders int64           `json:"total_pedidos"`
	Value  decimal.Decimal `json:"valor_total"`
}

// FranchiseeRank - франчайзи и количество его заказов
type FranchiseeRank struct {
	Franchisee string `json:"franqueado"`
	Orders     int64  `json:"qtd_pedidos"`
}

// Totals - общие показатели: заказы, сумма, активные франчайзи (без [Excluído])
type Totals struct {
	Orders            int64           `json:"total_pedidos"`
	Value             decimal.Decimal `json:"valor_total"`
	ActiveFranchisees int64           `json:"franqueados_ativos"`
}

// Summary - сводка для аналитики
type Summary struct {
	Totals         Totals           `json:"totais"`
	Monthly        []MonthlyTotal   `json:"mensal"`
	TopFranchisees []FranchiseeRank `json:"top_franqueados"`
}
