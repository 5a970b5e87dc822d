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

var _ repository.ClientRepository = (*ClientRepo)(nil)

var clientTable = table{
	name:    "clients",
	columns: "id, name, document, email, phone, active, created_at, updated_at",
	sortable: map[string]string{
		"name":     "name",
		"document": "document",
	},
	filterable: map[string]string{
		"id":       "id",
		"document": "document",
		"email":    "email",
		"active":   "active",
	},
	searchable:  []string{"name", "document", "email"},
	defaultSort: "created_at DESC, id",
}

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, document, email, phone, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Document, c.Email, c.Phone, c.Active, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	if !isUUID(id) {
		return nil, nil
	}
	c, err := scanClient(r.q.QueryRow(ctx, "SELECT "+clientTable.columns+" FROM clients WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List lista clientes.
func (r *ClientRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.Client, error) {
	return r.Filter(ctx, nil, opts)
}

// Filter lista clientes que cumplen la igualdad de fields.
func (r *ClientRepo) Filter(ctx context.Context, fields repository.Fields, opts repository.ListOptions) ([]*entity.Client, error) {
	query, args, err := clientTable.selectSQL(fields, opts)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update reescribe los campos editables.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE clients SET name = $2, document = $3, email = $4, phone = $5, active = $6, updated_at = $7 WHERE id = $1`,
		c.ID, c.Name, c.Document, c.Email, c.Phone, c.Active, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	if err := row.Scan(&c.ID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
