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

var _ repository.NegotiationTypeRepository = (*NegotiationTypeRepo)(nil)

var negotiationTypeTable = table{
	name:    "negotiation_types",
	columns: "id, code, description, notes, active, created_at, updated_at",
	sortable: map[string]string{
		"code":        "code",
		"description": "description",
	},
	filterable: map[string]string{
		"id":     "id",
		"code":   "code",
		"active": "active",
	},
	searchable:  []string{"code", "description"},
	defaultSort: "created_at DESC, id",
}

// NegotiationTypeRepo tipos de negociación sobre PostgreSQL.
type NegotiationTypeRepo struct {
	q Querier
}

// NewNegotiationTypeRepository construye el adaptador.
func NewNegotiationTypeRepository(q Querier) *NegotiationTypeRepo {
	return &NegotiationTypeRepo{q: q}
}

// Create persiste un tipo de negociación. El código es único.
func (r *NegotiationTypeRepo) Create(ctx context.Context, nt *entity.NegotiationType) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO negotiation_types (id, code, description, notes, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		nt.ID, nt.Code, nt.Description, nt.Notes, nt.Active, nt.CreatedAt, nt.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert negotiation type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de negociación por ID.
func (r *NegotiationTypeRepo) GetByID(ctx context.Context, id string) (*entity.NegotiationType, error) {
	if !isUUID(id) {
		return nil, nil
	}
	nt, err := scanNegotiationType(r.q.QueryRow(ctx, "SELECT "+negotiationTypeTable.columns+" FROM negotiation_types WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get negotiation type: %w", err)
	}
	return nt, nil
}

// List lista tipos de negociación.
func (r *NegotiationTypeRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.NegotiationType, error) {
	return r.Filter(ctx, nil, opts)
}

// Filter lista tipos de negociación que cumplen la igualdad de fields.
func (r *NegotiationTypeRepo) Filter(ctx context.Context, fields repository.Fields, opts repository.ListOptions) ([]*entity.NegotiationType, error) {
	query, args, err := negotiationTypeTable.selectSQL(fields, opts)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list negotiation types: %w", err)
	}
	defer rows.Close()
	var list []*entity.NegotiationType
	for rows.Next() {
		nt, err := scanNegotiationType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan negotiation type: %w", err)
		}
		list = append(list, nt)
	}
	return list, rows.Err()
}

// Update reescribe los campos editables.
func (r *NegotiationTypeRepo) Update(ctx context.Context, nt *entity.NegotiationType) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE negotiation_types SET code = $2, description = $3, notes = $4, active = $5, updated_at = $6 WHERE id = $1`,
		nt.ID, nt.Code, nt.Description, nt.Notes, nt.Active, nt.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update negotiation type: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un tipo de negociación.
func (r *NegotiationTypeRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM negotiation_types WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete negotiation type: %w", err)
	}
	return nil
}

func scanNegotiationType(row pgx.Row) (*entity.NegotiationType, error) {
	var nt entity.NegotiationType
	if err := row.Scan(&nt.ID, &nt.Code, &nt.Description, &nt.Notes, &nt.Active, &nt.CreatedAt, &nt.UpdatedAt); err != nil {
		return nil, err
	}
	return &nt, nil
}
