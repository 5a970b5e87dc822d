package repository

import (
	"context"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// ScreenPermissionRepository define el puerto de persistencia para ScreenPermission.
type ScreenPermissionRepository interface {
	Create(ctx context.Context, p *entity.ScreenPermission) error
	GetByID(ctx context.Context, id string) (*entity.ScreenPermission, error)
	List(ctx context.Context, opts ListOptions) ([]*entity.ScreenPermission, error)
	Filter(ctx context.Context, fields Fields, opts ListOptions) ([]*entity.ScreenPermission, error)
	Update(ctx context.Context, p *entity.ScreenPermission) error
	Delete(ctx context.Context, id string) error
}
