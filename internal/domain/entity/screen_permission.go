package entity

import "time"

// ScreenPermission concede a un usuario ver/editar/eliminar en una pantalla.
// A lo sumo un registro por (UserID, ScreenName).
type ScreenPermission struct {
	ID         string
	UserID     string
	UserName   string // instantánea del nombre al crear el permiso
	ScreenName string
	CanView    bool
	CanEdit    bool
	CanDelete  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
