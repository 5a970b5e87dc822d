package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

func TestReceiptGenerator_SaleReceipt(t *testing.T) {
	sale := &entity.Sale{
		ID:                  "s1",
		Number:              "VEN-20260307-00042",
		SellerName:          "Ana",
		ClientName:          "Mercado Central",
		NegotiationTypeName: "Atacado",
		Total:               decimal.RequireFromString("32.25"),
		CreatedAt:           time.Date(2026, 3, 7, 15, 4, 0, 0, time.UTC),
		Items: []entity.SaleItem{
			{ProductCode: "P001", ProductName: "Café 500g", Quantity: 3, UnitPrice: decimal.RequireFromString("7.50"), Subtotal: decimal.RequireFromString("22.50")},
			{ProductCode: "P002", ProductName: "Açúcar 1kg", Quantity: 1, UnitPrice: decimal.RequireFromString("9.75"), Subtotal: decimal.RequireFromString("9.75")},
		},
	}

	out, err := NewReceiptGenerator("").SaleReceipt(context.Background(), sale)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestReceiptGenerator_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewReceiptGenerator("Vendas").SaleReceipt(ctx, &entity.Sale{Number: "VEN-1"})
	assert.ErrorIs(t, err, context.Canceled)
}
