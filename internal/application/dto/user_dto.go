package dto

import "time"

// CreateSellerRequest alta de un vendedor (password en texto, se hashea en el use case).
type CreateSellerRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"max=30"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=SUP ADMIN VENDEDOR"`
	Active   *bool  `json:"active"`
}

// UpdateSellerRequest actualización parcial de un vendedor.
type UpdateSellerRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Role     *string `json:"role" validate:"omitempty,oneof=SUP ADMIN VENDEDOR"`
	Active   *bool   `json:"active"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	ProfilePhoto string    `json:"profile_photo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SellerResponse usuario más las acciones que el llamador puede ofrecer sobre él.
type SellerResponse struct {
	UserResponse
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
}

// SellerListResponse lista de vendedores.
type SellerListResponse struct {
	Items []SellerResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT y usuario autenticado.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UpdateMeRequest edición del propio perfil. El cambio de contraseña es opcional:
// se aplica sólo si NewPassword no está vacío.
type UpdateMeRequest struct {
	FullName        *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	Phone           *string `json:"phone" validate:"omitempty,max=30"`
	ProfilePhoto    *string `json:"profile_photo" validate:"omitempty,max=1000"`
	CurrentPassword string  `json:"current_password"`
	NewPassword     string  `json:"new_password"`
	ConfirmPassword string  `json:"confirm_password"`
}

// NavigationItem entrada del menú visible para el usuario.
type NavigationItem struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}
