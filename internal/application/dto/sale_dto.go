package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemResponse línea de una venta.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID                  string             `json:"id"`
	Number              string             `json:"number"`
	SellerID            string             `json:"seller_id"`
	SellerName          string             `json:"seller_name"`
	ClientID            string             `json:"client_id"`
	ClientName          string             `json:"client_name"`
	NegotiationTypeID   string             `json:"negotiation_type_id"`
	NegotiationTypeName string             `json:"negotiation_type_name"`
	Status              string             `json:"status"`
	Total               decimal.Decimal    `json:"total"`
	ItemCount           int                `json:"item_count"`
	Items               []SaleItemResponse `json:"items"`
	CreatedAt           time.Time          `json:"created_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ConfirmHeaderRequest selección de cliente y tipo de negociación del borrador.
type ConfirmHeaderRequest struct {
	ClientID          string `json:"client_id" validate:"required"`
	NegotiationTypeID string `json:"negotiation_type_id" validate:"required"`
}

// AddProductRequest agrega una unidad de un producto al carrito.
type AddProductRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// SetQuantityRequest fija la cantidad de una línea; <= 0 la quita.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// DraftHeaderResponse cabecera confirmada del borrador.
type DraftHeaderResponse struct {
	ClientID            string `json:"client_id"`
	ClientName          string `json:"client_name"`
	NegotiationTypeID   string `json:"negotiation_type_id"`
	NegotiationTypeName string `json:"negotiation_type_name"`
}

// CartLineResponse línea del carrito del borrador.
type CartLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Stock       int             `json:"stock"`
	AtCeiling   bool            `json:"at_ceiling"`
}

// DraftResponse estado de un borrador de venta.
type DraftResponse struct {
	ID           string               `json:"id"`
	Step         string               `json:"step"`
	HeaderLocked bool                 `json:"header_locked"`
	Header       *DraftHeaderResponse `json:"header,omitempty"`
	Lines        []CartLineResponse   `json:"lines"`
	ItemCount    int                  `json:"item_count"`
	Total        decimal.Decimal      `json:"total"`
	Sale         *SaleResponse        `json:"sale,omitempty"`
	UpdatedAt    time.Time            `json:"updated_at"`
}
