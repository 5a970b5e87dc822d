// Package access contiene las compuertas de acceso por rol.
//
// Son predicados puros y consultivos: deciden qué acciones ofrecer y qué rutas
// bloquear antes de tocar el almacén, pero no sustituyen la autorización del
// almacén de entidades. Los permisos por usuario (ScreenPermission) son una capa
// aparte que estas funciones no consultan.
package access

import (
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

func isManager(u *entity.User) bool {
	return u != nil && (u.Role == entity.RoleSup || u.Role == entity.RoleAdmin)
}

// CanEditSeller sólo el propio SUP edita al SUP; al resto lo editan SUP y ADMIN.
func CanEditSeller(actor, subject *entity.User) bool {
	if actor == nil || subject == nil {
		return false
	}
	if subject.IsSup() {
		return actor.Email == subject.Email
	}
	return isManager(actor)
}

// CanDeleteSeller el SUP nunca se elimina (ni por sí mismo); al resto lo eliminan SUP y ADMIN.
func CanDeleteSeller(actor, subject *entity.User) bool {
	if actor == nil || subject == nil || subject.IsSup() {
		return false
	}
	return isManager(actor)
}

// Require convierte el resultado de un predicado en ErrPermissionDenied.
func Require(allowed bool) error {
	if !allowed {
		return domain.ErrPermissionDenied
	}
	return nil
}
