// Package cart implementa el carrito en memoria del flujo de nueva venta.
//
// Cart es un valor inmutable: cada operación devuelve un carrito nuevo y deja
// el original intacto. No hay errores: un productID inexistente en SetQuantity
// o RemoveLine no modifica nada.
//
// El motor no rechaza una cantidad por encima del tope de stock. Esa política
// pertenece al llamador (ver Line.AtCeiling); así el carrito queda como un
// reductor puro.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// Line es una entrada del carrito. Code, Name, UnitPrice y Stock son instantáneas
// del producto tomadas al agregarlo.
type Line struct {
	ProductID   string
	ProductCode string
	ProductName string
	Unit        string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	Stock       int // tope de cantidad
}

// AtCeiling indica si la línea ya alcanzó el stock instantáneo.
func (l Line) AtCeiling() bool {
	return l.Quantity >= l.Stock
}

func (l Line) withQuantity(q int) Line {
	l.Quantity = q
	l.Subtotal = l.UnitPrice.Mul(decimal.NewFromInt(int64(q)))
	return l
}

// Cart secuencia ordenada de líneas, a lo sumo una por producto.
type Cart struct {
	lines []Line
}

// Lines devuelve una copia de las líneas en orden de inserción.
func (c Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len número de líneas.
func (c Cart) Len() int { return len(c.lines) }

// IsEmpty indica si el carrito no tiene líneas.
func (c Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Line busca la línea de un producto.
func (c Cart) Line(productID string) (Line, bool) {
	if i := c.index(productID); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

func (c Cart) index(productID string) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddProduct suma 1 a la línea del producto o agrega una línea nueva con cantidad 1,
// tomando precio y stock del producto como instantánea.
func (c Cart) AddProduct(p entity.Product) Cart {
	lines := c.Lines()
	if i := c.index(p.ID); i >= 0 {
		lines[i] = lines[i].withQuantity(lines[i].Quantity + 1)
		return Cart{lines: lines}
	}
	line := Line{
		ProductID:   p.ID,
		ProductCode: p.Code,
		ProductName: p.Name,
		Unit:        p.Unit,
		UnitPrice:   p.Price,
		Stock:       p.Stock,
	}
	return Cart{lines: append(lines, line.withQuantity(1))}
}

// SetQuantity reemplaza la cantidad de la línea y recalcula el subtotal.
// quantity <= 0 equivale a RemoveLine.
func (c Cart) SetQuantity(productID string, quantity int) Cart {
	if quantity <= 0 {
		return c.RemoveLine(productID)
	}
	i := c.index(productID)
	if i < 0 {
		return c
	}
	lines := c.Lines()
	lines[i] = lines[i].withQuantity(quantity)
	return Cart{lines: lines}
}

// RemoveLine elimina la línea del producto.
func (c Cart) RemoveLine(productID string) Cart {
	i := c.index(productID)
	if i < 0 {
		return c
	}
	lines := make([]Line, 0, len(c.lines)-1)
	lines = append(lines, c.lines[:i]...)
	lines = append(lines, c.lines[i+1:]...)
	return Cart{lines: lines}
}

// Total suma de subtotales.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal)
	}
	return total
}
