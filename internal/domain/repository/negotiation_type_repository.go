package repository

import (
	"context"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// NegotiationTypeRepository define el puerto de persistencia para NegotiationType.
type NegotiationTypeRepository interface {
	Create(ctx context.Context, nt *entity.NegotiationType) error
	GetByID(ctx context.Context, id string) (*entity.NegotiationType, error)
	List(ctx context.Context, opts ListOptions) ([]*entity.NegotiationType, error)
	Filter(ctx context.Context, fields Fields, opts ListOptions) ([]*entity.NegotiationType, error)
	Update(ctx context.Context, nt *entity.NegotiationType) error
	Delete(ctx context.Context, id string) error
}
