package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusConfirmed = "CONFIRMED"
)

// Sale es la venta persistida al confirmar el checkout. No se modifica después de creada.
// Los nombres (vendedor, cliente, negociación, producto) son instantáneas tomadas al armar la venta.
type Sale struct {
	ID                  string
	Number              string // VEN-YYYYMMDD-NNNNN
	SellerID            string
	SellerName          string
	ClientID            string
	ClientName          string
	NegotiationTypeID   string
	NegotiationTypeName string
	Status              string
	Total               decimal.Decimal
	Items               []SaleItem
	CreatedAt           time.Time
}

// SaleItem es la instantánea de una línea del carrito.
type SaleItem struct {
	ProductID   string
	ProductCode string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
