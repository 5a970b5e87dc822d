package repository

import (
	"context"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	List(ctx context.Context, opts ListOptions) ([]*entity.Client, error)
	Filter(ctx context.Context, fields Fields, opts ListOptions) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) error
}
