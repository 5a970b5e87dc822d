// Package sale arma la venta persistible a partir de la cabecera confirmada y del
// carrito, y modela el flujo de nueva venta HEADER → PRODUCTS → CHECKOUT → DONE.
package sale

import (
	"strings"
	"time"

	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/cart"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// Header cliente y tipo de negociación elegidos, con sus nombres como instantánea.
type Header struct {
	ClientID            string
	ClientName          string
	NegotiationTypeID   string
	NegotiationTypeName string
}

// Validate exige ambas selecciones.
func (h Header) Validate() error {
	if strings.TrimSpace(h.ClientID) == "" {
		return domain.NewValidationError("cliente requerido")
	}
	if strings.TrimSpace(h.NegotiationTypeID) == "" {
		return domain.NewValidationError("tipo de negociación requerido")
	}
	return nil
}

// Assembler arma ventas con un reloj, una fuente aleatoria y un generador de ids inyectables.
type Assembler struct {
	prefix string
	now    func() time.Time
	rnd    RandomSource
	newID  func() string
}

// NewAssembler construye el ensamblador. prefix vacío usa DefaultNumberPrefix.
func NewAssembler(prefix string, now func() time.Time, rnd RandomSource, newID func() string) *Assembler {
	if prefix == "" {
		prefix = DefaultNumberPrefix
	}
	return &Assembler{prefix: prefix, now: now, rnd: rnd, newID: newID}
}

// BuildSale arma la venta inmutable. Falla con ValidationError si falta la cabecera,
// si la cabecera está incompleta o si el carrito está vacío.
func (a *Assembler) BuildSale(header *Header, c cart.Cart, seller *entity.User) (*entity.Sale, error) {
	if header == nil {
		return nil, domain.NewValidationError("cabecera no confirmada")
	}
	if err := header.Validate(); err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, domain.NewValidationError("carrito vacío")
	}
	if seller == nil || seller.ID == "" {
		return nil, domain.NewValidationError("vendedor requerido")
	}

	now := a.now()
	lines := c.Lines()
	items := make([]entity.SaleItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, entity.SaleItem{
			ProductID:   l.ProductID,
			ProductCode: l.ProductCode,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}
	return &entity.Sale{
		ID:                  a.newID(),
		Number:              generateNumber(a.prefix, now, a.rnd),
		SellerID:            seller.ID,
		SellerName:          seller.FullName,
		ClientID:            header.ClientID,
		ClientName:          header.ClientName,
		NegotiationTypeID:   header.NegotiationTypeID,
		NegotiationTypeName: header.NegotiationTypeName,
		Status:              entity.SaleStatusConfirmed,
		Total:               c.Total(),
		Items:               items,
		CreatedAt:           now,
	}, nil
}
