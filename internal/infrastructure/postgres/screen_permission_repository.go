package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

var _ repository.ScreenPermissionRepository = (*ScreenPermissionRepo)(nil)

var screenPermissionTable = table{
	name:    "screen_permissions",
	columns: "id, user_id, user_name, screen_name, can_view, can_edit, can_delete, created_at, updated_at",
	sortable: map[string]string{
		"screen_name": "screen_name",
		"user_name":   "user_name",
	},
	filterable: map[string]string{
		"id":          "id",
		"user_id":     "user_id",
		"screen_name": "screen_name",
	},
	searchable:  []string{"user_name", "screen_name"},
	defaultSort: "screen_name ASC, user_name ASC, id",
}

// ScreenPermissionRepo permisos por pantalla sobre PostgreSQL.
// El índice único (user_id, screen_name) respalda la verificación del caso de uso.
type ScreenPermissionRepo struct {
	q Querier
}

// NewScreenPermissionRepository construye el adaptador.
func NewScreenPermissionRepository(q Querier) *ScreenPermissionRepo {
	return &ScreenPermissionRepo{q: q}
}

// Create persiste un permiso.
func (r *ScreenPermissionRepo) Create(ctx context.Context, p *entity.ScreenPermission) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO screen_permissions (id, user_id, user_name, screen_name, can_view, can_edit, can_delete, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.UserID, p.UserName, p.ScreenName, p.CanView, p.CanEdit, p.CanDelete, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert screen permission: %w", err)
	}
	return nil
}

// GetByID obtiene un permiso por ID.
func (r *ScreenPermissionRepo) GetByID(ctx context.Context, id string) (*entity.ScreenPermission, error) {
	if !isUUID(id) {
		return nil, nil
	}
	p, err := scanScreenPermission(r.q.QueryRow(ctx, "SELECT "+screenPermissionTable.columns+" FROM screen_permissions WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get screen permission: %w", err)
	}
	return p, nil
}

// List lista permisos.
func (r *ScreenPermissionRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.ScreenPermission, error) {
	return r.Filter(ctx, nil, opts)
}

// Filter lista permisos por usuario y/o pantalla.
func (r *ScreenPermissionRepo) Filter(ctx context.Context, fields repository.Fields, opts repository.ListOptions) ([]*entity.ScreenPermission, error) {
	query, args, err := screenPermissionTable.selectSQL(fields, opts)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list screen permissions: %w", err)
	}
	defer rows.Close()
	var list []*entity.ScreenPermission
	for rows.Next() {
		p, err := scanScreenPermission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan screen permission: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update cambia sólo los flags; usuario y pantalla son fijos.
func (r *ScreenPermissionRepo) Update(ctx context.Context, p *entity.ScreenPermission) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE screen_permissions SET can_view = $2, can_edit = $3, can_delete = $4, updated_at = $5 WHERE id = $1`,
		p.ID, p.CanView, p.CanEdit, p.CanDelete, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update screen permission: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un permiso.
func (r *ScreenPermissionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM screen_permissions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete screen permission: %w", err)
	}
	return nil
}

func scanScreenPermission(row pgx.Row) (*entity.ScreenPermission, error) {
	var p entity.ScreenPermission
	err := row.Scan(&p.ID, &p.UserID, &p.UserName, &p.ScreenName, &p.CanView, &p.CanEdit, &p.CanDelete, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
