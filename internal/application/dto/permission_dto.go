package dto

import "time"

// CreatePermissionRequest concede permisos sobre una pantalla a un usuario.
type CreatePermissionRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	ScreenName string `json:"screen_name" validate:"required"`
	CanView    bool   `json:"can_view"`
	CanEdit    bool   `json:"can_edit"`
	CanDelete  bool   `json:"can_delete"`
}

// UpdatePermissionRequest cambia los flags; usuario y pantalla son fijos.
type UpdatePermissionRequest struct {
	CanView   *bool `json:"can_view"`
	CanEdit   *bool `json:"can_edit"`
	CanDelete *bool `json:"can_delete"`
}

// PermissionResponse salida de un permiso.
type PermissionResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	ScreenName string    `json:"screen_name"`
	CanView    bool      `json:"can_view"`
	CanEdit    bool      `json:"can_edit"`
	CanDelete  bool      `json:"can_delete"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PermissionListQuery filtros del listado de permisos.
type PermissionListQuery struct {
	ScreenName string `query:"screen_name"`
	UserID     string `query:"user_id"`
}

// ScreenResponse pantalla del catálogo.
type ScreenResponse struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Roles       []string `json:"roles"`
}

// UserSummary datos mínimos de un usuario en la matriz.
type UserSummary struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// MatrixEntry usuario con acceso y su permiso.
type MatrixEntry struct {
	User       UserSummary        `json:"user"`
	Permission PermissionResponse `json:"permission"`
}

// PermissionMatrixResponse partición de los usuarios para una pantalla.
type PermissionMatrixResponse struct {
	Screen             ScreenResponse `json:"screen"`
	UsersWithAccess    []MatrixEntry  `json:"users_with_access"`
	UsersWithoutAccess []UserSummary  `json:"users_without_access"`
}
