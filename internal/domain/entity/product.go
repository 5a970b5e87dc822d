package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// El carrito sólo lee Price y Stock como instantánea al momento de agregarlo.
type Product struct {
	ID          string
	Code        string // código único
	Name        string
	Description string
	Price       decimal.Decimal // precio unitario de venta
	Stock       int             // cantidad disponible, nunca negativa
	Unit        string          // unidad de medida: UN, KG, CX, ...
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
