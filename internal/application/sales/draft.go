// Package sales contiene los casos de uso de nueva venta (borradores del flujo
// HEADER → PRODUCTS → CHECKOUT → DONE) y de consulta de ventas.
package sales

import (
	"context"
	"time"

	"github.com/jhoicas/vendas-api/internal/domain/sale"
)

// Draft flujo de nueva venta en curso, propiedad del vendedor que lo creó.
type Draft struct {
	ID        string
	OwnerID   string
	Flow      *sale.Flow
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DraftStore guarda borradores. Update serializa el acceso a cada borrador:
// fn corre con el borrador bloqueado y sus cambios quedan visibles al volver.
type DraftStore interface {
	Put(ctx context.Context, d *Draft) error
	// Update devuelve domain.ErrNotFound si id no existe.
	Update(ctx context.Context, id string, fn func(d *Draft) error) error
	Delete(ctx context.Context, id string) error
}
