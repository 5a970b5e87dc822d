package repository

import (
	"context"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, opts ListOptions) ([]*entity.Product, error)
	Filter(ctx context.Context, fields Fields, opts ListOptions) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
