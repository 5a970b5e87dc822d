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

var _ repository.UserRepository = (*UserRepo)(nil)

const singleSupIndex = "users_single_sup"

var userTable = table{
	name:    "users",
	columns: "id, full_name, email, phone, password_hash, role, active, profile_photo, created_at, updated_at",
	sortable: map[string]string{
		"full_name": "full_name",
		"email":     "email",
		"role":      "role",
	},
	filterable: map[string]string{
		"id":     "id",
		"email":  "email",
		"role":   "role",
		"active": "active",
	},
	searchable:  []string{"full_name", "email"},
	defaultSort: "created_at DESC, id",
}

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, full_name, email, phone, password_hash, role, active, profile_photo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.FullName, u.Email, u.Phone, u.PasswordHash, u.Role, u.Active, u.ProfilePhoto, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return userWriteError("insert user", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if !isUUID(id) {
		return nil, nil
	}
	return r.findOne(ctx, "id = $1", id)
}

// GetByEmail obtiene un usuario por email, sin distinguir mayúsculas.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "lower(email) = lower($1)", email)
}

func (r *UserRepo) findOne(ctx context.Context, cond string, arg any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, "SELECT "+userTable.columns+" FROM users WHERE "+cond, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// List lista usuarios.
func (r *UserRepo) List(ctx context.Context, opts repository.ListOptions) ([]*entity.User, error) {
	return r.Filter(ctx, nil, opts)
}

// Filter lista usuarios que cumplen la igualdad de fields.
func (r *UserRepo) Filter(ctx context.Context, fields repository.Fields, opts repository.ListOptions) ([]*entity.User, error) {
	query, args, err := userTable.selectSQL(fields, opts)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update reescribe perfil, rol, estado y contraseña.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE users SET full_name = $2, email = $3, phone = $4, password_hash = $5, role = $6, active = $7,
		       profile_photo = $8, updated_at = $9
		WHERE id = $1`,
		u.ID, u.FullName, u.Email, u.Phone, u.PasswordHash, u.Role, u.Active, u.ProfilePhoto, u.UpdatedAt,
	)
	if err != nil {
		return userWriteError("update user", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete elimina un usuario; sus permisos se borran en cascada.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// userWriteError distingue el índice de SUP único del email duplicado.
func userWriteError(op string, err error) error {
	if !isUniqueViolation(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if violatedConstraint(err) == singleSupIndex {
		return fmt.Errorf("ya existe un usuario SUP: %w", domain.ErrConflict)
	}
	return domain.ErrEmailAlreadyExists
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.Active, &u.ProfilePhoto, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
