// Package permission cruza usuarios con los permisos por pantalla.
//
// La unicidad (usuario, pantalla) no se valida aquí: quien crea permisos debe
// ofrecer sólo usuarios de UsersWithoutAccess.
package permission

import "github.com/jhoicas/vendas-api/internal/domain/entity"

func grantedUserIDs(screenName string, perms []*entity.ScreenPermission) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, p := range perms {
		if p != nil && p.ScreenName == screenName {
			ids[p.UserID] = struct{}{}
		}
	}
	return ids
}

// UsersWithAccess usuarios con al menos un permiso para screenName, en el orden de users.
func UsersWithAccess(screenName string, users []*entity.User, perms []*entity.ScreenPermission) []*entity.User {
	ids := grantedUserIDs(screenName, perms)
	out := make([]*entity.User, 0, len(ids))
	for _, u := range users {
		if u == nil {
			continue
		}
		if _, ok := ids[u.ID]; ok {
			out = append(out, u)
		}
	}
	return out
}

// UsersWithoutAccess complemento de UsersWithAccess dentro de users.
func UsersWithoutAccess(screenName string, users []*entity.User, perms []*entity.ScreenPermission) []*entity.User {
	ids := grantedUserIDs(screenName, perms)
	out := make([]*entity.User, 0, len(users))
	for _, u := range users {
		if u == nil {
			continue
		}
		if _, ok := ids[u.ID]; !ok {
			out = append(out, u)
		}
	}
	return out
}

// Find busca el permiso de userID en screenName.
func Find(screenName, userID string, perms []*entity.ScreenPermission) *entity.ScreenPermission {
	for _, p := range perms {
		if p != nil && p.ScreenName == screenName && p.UserID == userID {
			return p
		}
	}
	return nil
}
