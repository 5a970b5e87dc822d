package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/access"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
	"github.com/jhoicas/vendas-api/pkg/validate"
)

// SellerUseCase administración de usuarios/vendedores.
//
// Las compuertas de access deciden qué acciones ofrecer; además aquí se aplican las
// reglas que el almacén no garantiza solo: un único SUP, el rol del SUP no cambia y
// el SUP no se elimina ni se desactiva.
type SellerUseCase struct {
	repo repository.UserRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewSellerUseCase construye el caso de uso.
func NewSellerUseCase(repo repository.UserRepository, log zerolog.Logger) *SellerUseCase {
	return &SellerUseCase{repo: repo, log: log, now: time.Now}
}

// List lista usuarios y marca en cada fila si actor puede editarla o eliminarla.
func (uc *SellerUseCase) List(ctx context.Context, actor *entity.User, q dto.ListQuery) (*dto.SellerListResponse, error) {
	opts := listOptions(q)
	var (
		users []*entity.User
		err   error
	)
	if f := activeFilter(q); f != nil {
		users, err = uc.repo.Filter(ctx, f, opts)
	} else {
		users, err = uc.repo.List(ctx, opts)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.SellerResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toSellerResponse(actor, u))
	}
	return &dto.SellerListResponse{Items: items, Page: page(opts)}, nil
}

// GetByID obtiene un usuario con los flags de acción del actor.
func (uc *SellerUseCase) GetByID(ctx context.Context, actor *entity.User, id string) (*dto.SellerResponse, error) {
	u, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toSellerResponse(actor, u)
	return &out, nil
}

// Create da de alta un usuario. Sólo SUP y ADMIN.
func (uc *SellerUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateSellerRequest) (*dto.SellerResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if err := access.Require(isManager(actor)); err != nil {
		return nil, err
	}
	email := normalizeEmail(in.Email)
	if err := uc.ensureEmailFree(ctx, email, ""); err != nil {
		return nil, err
	}
	if in.Role == entity.RoleSup {
		if err := uc.ensureNoOtherSup(ctx, ""); err != nil {
			return nil, err
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	u := &entity.User{
		ID:           uuid.New().String(),
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: string(hash),
		Role:         in.Role,
		Active:       boolOr(in.Active, true),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", u.ID).Str("role", u.Role).Str("by", actor.ID).Msg("usuario creado")
	out := toSellerResponse(actor, u)
	return &out, nil
}

// Update edita un usuario si CanEditSeller lo permite.
func (uc *SellerUseCase) Update(ctx context.Context, actor *entity.User, id string, in dto.UpdateSellerRequest) (*dto.SellerResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	u, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Require(access.CanEditSeller(actor, u)); err != nil {
		return nil, err
	}

	if in.Role != nil && *in.Role != u.Role {
		if u.IsSup() {
			return nil, domainConflict("el rol del SUP no puede cambiarse")
		}
		if *in.Role == entity.RoleSup {
			if err := uc.ensureNoOtherSup(ctx, u.ID); err != nil {
				return nil, err
			}
		}
		u.Role = *in.Role
	}
	if in.Active != nil {
		if u.IsSup() && !*in.Active {
			return nil, domainConflict("el SUP no puede desactivarse")
		}
		u.Active = *in.Active
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email != u.Email {
			if err := uc.ensureEmailFree(ctx, email, u.ID); err != nil {
				return nil, err
			}
		}
		u.Email = email
	}
	if in.FullName != nil {
		u.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	u.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	out := toSellerResponse(actor, u)
	return &out, nil
}

// Delete elimina un usuario si CanDeleteSeller lo permite.
func (uc *SellerUseCase) Delete(ctx context.Context, actor *entity.User, id string) error {
	u, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if err := access.Require(access.CanDeleteSeller(actor, u)); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", id).Str("by", actor.ID).Msg("usuario eliminado")
	return nil
}

func (uc *SellerUseCase) get(ctx context.Context, id string) (*entity.User, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (uc *SellerUseCase) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.ErrEmailAlreadyExists
	}
	return nil
}

func (uc *SellerUseCase) ensureNoOtherSup(ctx context.Context, selfID string) error {
	sups, err := uc.repo.Filter(ctx, repository.Fields{"role": entity.RoleSup}, repository.ListOptions{Limit: 2})
	if err != nil {
		return err
	}
	for _, s := range sups {
		if s.ID != selfID {
			return domainConflict("ya existe un usuario SUP")
		}
	}
	return nil
}

func isManager(u *entity.User) bool {
	return u != nil && (u.Role == entity.RoleSup || u.Role == entity.RoleAdmin)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ToUserResponse convierte un usuario a su salida sin password.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		Phone:        u.Phone,
		Role:         u.Role,
		Active:       u.Active,
		ProfilePhoto: u.ProfilePhoto,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toSellerResponse(actor, u *entity.User) dto.SellerResponse {
	return dto.SellerResponse{
		UserResponse: ToUserResponse(u),
		CanEdit:      access.CanEditSeller(actor, u),
		CanDelete:    access.CanDeleteSeller(actor, u),
	}
}
