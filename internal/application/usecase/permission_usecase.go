package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/access"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/permission"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
	"github.com/jhoicas/vendas-api/pkg/validate"
)

// PermissionUseCase administración de permisos por pantalla (sólo SUP y ADMIN).
type PermissionUseCase struct {
	perms repository.ScreenPermissionRepository
	users repository.UserRepository
	log   zerolog.Logger
	now   func() time.Time
}

// NewPermissionUseCase construye el caso de uso.
func NewPermissionUseCase(perms repository.ScreenPermissionRepository, users repository.UserRepository, log zerolog.Logger) *PermissionUseCase {
	return &PermissionUseCase{perms: perms, users: users, log: log, now: time.Now}
}

// Screens catálogo de pantallas que admiten permisos por usuario.
func (uc *PermissionUseCase) Screens() []dto.ScreenResponse {
	screens := access.GrantableScreens()
	out := make([]dto.ScreenResponse, 0, len(screens))
	for _, s := range screens {
		out = append(out, toScreenResponse(s))
	}
	return out
}

// List lista permisos, opcionalmente filtrados por pantalla y/o usuario.
func (uc *PermissionUseCase) List(ctx context.Context, actor *entity.User, q dto.PermissionListQuery) ([]dto.PermissionResponse, error) {
	if err := access.Require(isManager(actor)); err != nil {
		return nil, err
	}
	fields := repository.Fields{}
	if q.ScreenName != "" {
		fields["screen_name"] = q.ScreenName
	}
	if q.UserID != "" {
		fields["user_id"] = q.UserID
	}
	opts := repository.ListOptions{Sort: "screen_name"}
	var (
		list []*entity.ScreenPermission
		err  error
	)
	if len(fields) > 0 {
		list, err = uc.perms.Filter(ctx, fields, opts)
	} else {
		list, err = uc.perms.List(ctx, opts)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.PermissionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPermissionResponse(p))
	}
	return out, nil
}

// Create concede permisos. Rechaza pantallas fuera del catálogo y un segundo
// permiso para el mismo (usuario, pantalla).
func (uc *PermissionUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreatePermissionRequest) (*dto.PermissionResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	if err := access.Require(isManager(actor)); err != nil {
		return nil, err
	}
	screen, ok := access.LookupScreen(in.ScreenName)
	if !ok || !screen.Grantable {
		return nil, domain.NewValidationError("pantalla desconocida: " + in.ScreenName)
	}
	user, err := uc.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	existing, err := uc.perms.Filter(ctx, repository.Fields{"user_id": user.ID, "screen_name": screen.Name}, repository.ListOptions{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, domain.ErrDuplicate
	}

	name := user.FullName
	if name == "" {
		name = user.Email
	}
	now := uc.now()
	p := &entity.ScreenPermission{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		UserName:   name,
		ScreenName: screen.Name,
		CanView:    in.CanView,
		CanEdit:    in.CanEdit,
		CanDelete:  in.CanDelete,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.perms.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", p.UserID).Str("screen", p.ScreenName).Str("by", actor.ID).Msg("permiso concedido")
	out := toPermissionResponse(p)
	return &out, nil
}

// Update cambia los flags de un permiso existente.
func (uc *PermissionUseCase) Update(ctx context.Context, actor *entity.User, id string, in dto.UpdatePermissionRequest) (*dto.PermissionResponse, error) {
	if err := access.Require(isManager(actor)); err != nil {
		return nil, err
	}
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.CanView != nil {
		p.CanView = *in.CanView
	}
	if in.CanEdit != nil {
		p.CanEdit = *in.CanEdit
	}
	if in.CanDelete != nil {
		p.CanDelete = *in.CanDelete
	}
	p.UpdatedAt = uc.now()
	if err := uc.perms.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", p.UserID).Str("screen", p.ScreenName).Str("by", actor.ID).Msg("permiso actualizado")
	out := toPermissionResponse(p)
	return &out, nil
}

// Delete revoca un permiso.
func (uc *PermissionUseCase) Delete(ctx context.Context, actor *entity.User, id string) error {
	if err := access.Require(isManager(actor)); err != nil {
		return err
	}
	p, err := uc.get(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.perms.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", p.UserID).Str("screen", p.ScreenName).Str("by", actor.ID).Msg("permiso revocado")
	return nil
}

// Matrix reparte los usuarios entre los que tienen permiso en screenName y los que no.
func (uc *PermissionUseCase) Matrix(ctx context.Context, actor *entity.User, screenName string) (*dto.PermissionMatrixResponse, error) {
	if err := access.Require(isManager(actor)); err != nil {
		return nil, err
	}
	screen, ok := access.LookupScreen(screenName)
	if !ok || !screen.Grantable {
		return nil, domain.NewValidationError("pantalla desconocida: " + screenName)
	}
	users, err := uc.users.List(ctx, repository.ListOptions{Sort: "full_name"})
	if err != nil {
		return nil, err
	}
	perms, err := uc.perms.Filter(ctx, repository.Fields{"screen_name": screen.Name}, repository.ListOptions{})
	if err != nil {
		return nil, err
	}

	with := permission.UsersWithAccess(screen.Name, users, perms)
	without := permission.UsersWithoutAccess(screen.Name, users, perms)

	out := &dto.PermissionMatrixResponse{
		Screen:             toScreenResponse(screen),
		UsersWithAccess:    make([]dto.MatrixEntry, 0, len(with)),
		UsersWithoutAccess: make([]dto.UserSummary, 0, len(without)),
	}
	for _, u := range with {
		entry := dto.MatrixEntry{User: toUserSummary(u)}
		if p := permission.Find(screen.Name, u.ID, perms); p != nil {
			entry.Permission = toPermissionResponse(p)
		}
		out.UsersWithAccess = append(out.UsersWithAccess, entry)
	}
	for _, u := range without {
		out.UsersWithoutAccess = append(out.UsersWithoutAccess, toUserSummary(u))
	}
	return out, nil
}

func (uc *PermissionUseCase) get(ctx context.Context, id string) (*entity.ScreenPermission, error) {
	p, err := uc.perms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func toPermissionResponse(p *entity.ScreenPermission) dto.PermissionResponse {
	return dto.PermissionResponse{
		ID:         p.ID,
		UserID:     p.UserID,
		UserName:   p.UserName,
		ScreenName: p.ScreenName,
		CanView:    p.CanView,
		CanEdit:    p.CanEdit,
		CanDelete:  p.CanDelete,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toScreenResponse(s access.Screen) dto.ScreenResponse {
	return dto.ScreenResponse{Name: s.Name, DisplayName: s.DisplayName, Roles: s.Roles}
}

func toUserSummary(u *entity.User) dto.UserSummary {
	return dto.UserSummary{ID: u.ID, FullName: u.FullName, Email: u.Email, Role: u.Role}
}
