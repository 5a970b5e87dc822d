package auth

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/application/ports"
	"github.com/jhoicas/vendas-api/internal/application/usecase"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/access"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
	"github.com/jhoicas/vendas-api/pkg/jwt"
	"github.com/jhoicas/vendas-api/pkg/validate"
)

const (
	minPasswordLen = 6
	maxPhotoBytes  = 5 << 20
)

var photoExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase sesión y perfil del usuario autenticado.
type AuthUseCase struct {
	userRepo repository.UserRepository
	storage  ports.FileStorage
	revoker  ports.TokenRevoker
	jwtCfg   JWTConfig
	log      zerolog.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	storage ports.FileStorage,
	revoker ports.TokenRevoker,
	jwtCfg JWTConfig,
	log zerolog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		storage:  storage,
		revoker:  revoker,
		jwtCfg:   jwtCfg,
		log:      log,
		now:      time.Now,
	}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y password incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	now := uc.now()
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Msg("login")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: now.Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		User:      usecase.ToUserResponse(user),
	}, nil
}

// Actor carga el usuario del token. Un usuario borrado o inactivo ya no opera.
func (uc *AuthUseCase) Actor(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

// IsRevoked indica si el token fue cerrado con Logout.
func (uc *AuthUseCase) IsRevoked(tokenID string) bool {
	return tokenID != "" && uc.revoker.IsRevoked(tokenID)
}

// Me perfil del actor.
func (uc *AuthUseCase) Me(actor *entity.User) dto.UserResponse {
	return usecase.ToUserResponse(actor)
}

// UpdateMe edita el propio perfil. Si NewPassword viene informado: debe coincidir con
// ConfirmPassword, tener al menos 6 caracteres y, si el usuario ya tenía contraseña,
// CurrentPassword debe verificarla.
func (uc *AuthUseCase) UpdateMe(ctx context.Context, actor *entity.User, in dto.UpdateMeRequest) (*dto.UserResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	u := *actor
	if in.NewPassword != "" {
		if in.NewPassword != in.ConfirmPassword {
			return nil, domain.NewValidationError("las contraseñas no coinciden")
		}
		if len(in.NewPassword) < minPasswordLen {
			return nil, domain.NewValidationError(fmt.Sprintf("la contraseña debe tener al menos %d caracteres", minPasswordLen))
		}
		if u.PasswordHash != "" {
			if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.CurrentPassword)); err != nil {
				return nil, domain.NewValidationError("contraseña actual incorrecta")
			}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if in.FullName != nil {
		u.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.ProfilePhoto != nil {
		u.ProfilePhoto = strings.TrimSpace(*in.ProfilePhoto)
	}
	u.UpdatedAt = uc.now()
	if err := uc.userRepo.Update(ctx, &u); err != nil {
		return nil, &domain.RemoteError{Op: "actualizar perfil", Err: err}
	}
	*actor = u
	out := usecase.ToUserResponse(&u)
	return &out, nil
}

// UploadPhoto sube la imagen al almacenamiento y guarda la URL en el perfil.
func (uc *AuthUseCase) UploadPhoto(ctx context.Context, actor *entity.User, body []byte, contentType string) (*dto.UserResponse, error) {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	ext, ok := photoExt[ct]
	if !ok {
		return nil, domain.NewValidationError("formato de imagen no soportado: " + contentType)
	}
	if len(body) == 0 {
		return nil, domain.NewValidationError("archivo vacío")
	}
	if len(body) > maxPhotoBytes {
		return nil, domain.NewValidationError("la imagen supera 5 MB")
	}
	key := path.Join("profile-photos", actor.ID, uuid.NewString()+ext)
	url, err := uc.storage.Upload(ctx, key, body, ct)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", actor.ID).Msg("subida de foto")
		return nil, &domain.RemoteError{Op: "subir foto", Err: err}
	}
	return uc.UpdateMe(ctx, actor, dto.UpdateMeRequest{ProfilePhoto: &url})
}

// Logout revoca el token hasta su expiración.
func (uc *AuthUseCase) Logout(claims *jwt.Claims) {
	if claims == nil || claims.TokenID() == "" {
		return
	}
	uc.revoker.Revoke(claims.TokenID(), claims.Expiry())
	uc.log.Info().Str("user_id", claims.UserID).Msg("logout")
}

// Navigation entradas de menú visibles para el rol del actor.
func (uc *AuthUseCase) Navigation(actor *entity.User) []dto.NavigationItem {
	screens := access.NavigationFor(actor)
	out := make([]dto.NavigationItem, 0, len(screens))
	for _, s := range screens {
		out = append(out, dto.NavigationItem{Name: s.Name, DisplayName: s.DisplayName})
	}
	return out
}
