package entity

import "time"

// Roles válidos para User.
const (
	RoleSup      = "SUP" // super administrador, uno por despliegue
	RoleAdmin    = "ADMIN"
	RoleVendedor = "VENDEDOR"
)

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleSup, RoleAdmin, RoleVendedor:
		return true
	}
	return false
}

// User representa un usuario/vendedor del sistema.
type User struct {
	ID           string
	FullName     string
	Email        string
	Phone        string
	PasswordHash string // bcrypt; vacío si el usuario nunca definió contraseña
	Role         string // SUP, ADMIN, VENDEDOR
	Active       bool
	ProfilePhoto string // URL devuelta por el almacenamiento de archivos
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsSup indica si el usuario es el SUP.
func (u *User) IsSup() bool {
	return u != nil && u.Role == RoleSup
}
