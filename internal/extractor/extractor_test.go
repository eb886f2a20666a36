package extractor

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/pedidos-sync/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

const validOrder = `{
	"codigo": 1001,
	"situacao": {"descricao": "Finalizado"},
	"franqueado": {"nome": "Loja Centro"},
	"fornecedor": {"nome": "ABC - Distribuidora Ltda"},
	"dataCriacao": "2025-04-28T13:45:10.123456Z",
	"itensPedido": [
		{"quantidadeProdutos": 2, "valorUnitario": 10.00},
		{"quantidadeProdutos": 1, "valorUnitario": 5.50}
	]
}`

func TestExtract(t *testing.T) {
	testCases := []struct {
		Name          string
		Raw           string
		ExpectedOrder models.Order
		ExpectedField string
	}{
		{
			Name: "Success. Full record #1",
			Raw:  validOrder,
			ExpectedOrder: models.Order{
				Number:     "1001",
				Status:     "FINALIZADO",
				Franchisee: "Loja Centro",
				Supplier:   "DISTRIBUIDORA LTDA",
				CreatedAt:  time.Date(2025, 4, 28, 13, 45, 10, 123456000, time.UTC),
				MonthName:  "Abril",
				Value:      decimal.RequireFromString("25.50"),
			},
		},
		{
			Name: "Success. String code, accents, empty items #2",
			Raw: `{"codigo": "A-77", "situacao": {"descricao": "Em separação"}, "franqueado": {"nome": "Loja São José"},
				"fornecedor": {"nome": "99 - Café Três Corações"}, "dataCriacao": "2025-03-01T00:00:00.000001Z", "itensPedido": []}`,
			ExpectedOrder: models.Order{
				Number:     "A-77",
				Status:     "EM SEPARAO",
				Franchisee: "Loja São José",
				Supplier:   "CAFE TRES CORACOES",
				CreatedAt:  time.Date(2025, 3, 1, 0, 0, 0, 1000, time.UTC),
				MonthName:  "Março",
				Value:      decimal.Zero,
			},
		},
		{
			Name:          "Rejected. Missing code #3",
			Raw:           `{"situacao": {"descricao": "x"}, "franqueado": {"nome": "f"}, "fornecedor": {"nome": "s"}, "dataCriacao": "2025-04-28T13:45:10.123456Z", "itensPedido": []}`,
			ExpectedField: FieldCode,
		},
		{
			Name:          "Rejected. Null code #4",
			Raw:           `{"codigo": null, "situacao": {"descricao": "x"}}`,
			ExpectedField: FieldCode,
		},
		{
			Name:          "Rejected. Missing status #5",
			Raw:           `{"codigo": 1, "situacao": {}, "franqueado": {"nome": "f"}}`,
			ExpectedField: FieldStatus,
		},
		{
			Name:          "Rejected. Missing franchisee #6",
			Raw:           `{"codigo": 1, "situacao": {"descricao": "x"}, "fornecedor": {"nome": "s"}}`,
			ExpectedField: FieldFranchisee,
		},
		{
			Name:          "Rejected. Missing supplier #7",
			Raw:           `{"codigo": 1, "situacao": {"descricao": "x"}, "franqueado": {"nome": "f"}, "fornecedor": null}`,
			ExpectedField: FieldSupplier,
		},
		{
			Name:          "Rejected. Missing creation date #8",
			Raw:           `{"codigo": 1, "situacao": {"descricao": "x"}, "franqueado": {"nome": "f"}, "fornecedor": {"nome": "s"}, "itensPedido": []}`,
			ExpectedField: FieldCreatedAt,
		},
		{
			Name:          "Rejected. Bad creation date #9",
			Raw:           `{"codigo": 1, "situacao": {"descricao": "x"}, "franqueado": {"nome": "f"}, "fornecedor": {"nome": "s"}, "dataCriacao": "28/04/2025", "itensPedido": []}`,
			ExpectedField: FieldCreatedAt,
		},
		{
			Name:          "Rejected. Missing items #10",
			Raw:           `{"codigo": 1, "situacao": {"descricao": "x"}, "franqueado": {"nome": "f"}, "fornecedor": {"nome": "s"}, "dataCriacao": "2025-04-28T13:45:10.123456Z"}`,
			ExpectedField: FieldItems,
		},
		{
			Name:          "Rejected. Item without quantity #11",
			Raw:           `{"codigo": 1, "situacao": {"descricao": "x"}, "franqueado": {"nome": "f"}, "fornecedor": {"nome": "s"}, "dataCriacao": "2025-04-28T13:45:10.123456Z", "itensPedido": [{"valorUnitario": 1}]}`,
			ExpectedField: "itensPedido[0].quantidadeProdutos",
		},
		{
			Name:          "Rejected. Item without price #12",
			Raw:           `{"codigo": 1, "situacao": {"descricao": "x"}, "franqueado": {"nome": "f"}, "fornecedor": {"nome": "s"}, "dataCriacao": "2025-04-28T13:45:10.123456Z", "itensPedido": [{"quantidadeProdutos": 1, "valorUnitario": 1}, {"quantidadeProdutos": 3}]}`,
			ExpectedField: "itensPedido[1].valorUnitario",
		},
		{
			Name:          "Rejected. Record is not an object #13",
			Raw:           `"pedido"`,
			ExpectedField: FieldRecord,
		},
		{
			Name:          "Rejected. Boolean code #14",
			Raw:           `{"codigo": true}`,
			ExpectedField: FieldCode,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			order, err := Extract(json.RawMessage(tc.Raw))

			if tc.ExpectedField != "" {
				if !errors.Is(err, ErrRejected) {
					t.Fatalf("Expected rejection, got '%v'", err)
				}
				var rejected *RejectedError
				if !errors.As(err, &rejected) {
					t.Fatalf("Expected *RejectedError, got %T", err)
				}
				if rejected.Field != tc.ExpectedField {
					t.Errorf("Expected field '%s', got '%s'", tc.ExpectedField, rejected.Field)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got '%v'", err)
			}
			diff := cmp.Diff(tc.ExpectedOrder, order, cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }))
			if diff != "" {
				t.Errorf("order mismatch:\n %s", diff)
			}
		})
	}
}

func TestOrderValue(t *testing.T) {
	qty := func(s string) *decimal.Decimal { d := decimal.RequireFromString(s); return &d }

	value, err := OrderValue([]models.RawItem{
		{Quantity: qty("3"), UnitPrice: qty("0.10")},
		{Quantity: qty("7"), UnitPrice: qty("0.10")},
	})
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	// 10 * 0.10 без накопления ошибки двоичной плавающей точки
	if !value.Equal(decimal.RequireFromString("1.00")) {
		t.Errorf("Expected 1.00, got %s", value)
	}
}

func TestExtract_PartialBatch(t *testing.T) {
	raws := []json.RawMessage{
		json.RawMessage(validOrder),
		json.RawMessage(`{"codigo": 2}`),
		json.RawMessage(validOrder),
		json.RawMessage(`[]`),
	}
	valid := 0
	for _, raw := range raws {
		if _, err := Extract(raw); err == nil {
			valid++
		}
	}
	if valid != 2 {
		t.Errorf("Expected 2 valid orders, got %d", valid)
	}
}
