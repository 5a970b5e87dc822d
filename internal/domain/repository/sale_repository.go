package repository

import (
	"context"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
// Las ventas no se actualizan ni se eliminan.
type SaleRepository interface {
	// Create persiste cabecera e ítems. Debe ejecutarse dentro de una transacción (ver TxRunner).
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context, opts ListOptions) ([]*entity.Sale, error)
	Filter(ctx context.Context, fields Fields, opts ListOptions) ([]*entity.Sale, error)
}
