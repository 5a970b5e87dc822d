package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/permission"
)

func TestMatrix_Escenario(t *testing.T) {
	u1 := &entity.User{ID: "U1", FullName: "Ana"}
	u2 := &entity.User{ID: "U2", FullName: "Beto"}
	users := []*entity.User{u1, u2}
	perms := []*entity.ScreenPermission{{ID: "p1", UserID: "U1", ScreenName: "Produtos", CanView: true}}

	assert.Equal(t, []*entity.User{u1}, permission.UsersWithAccess("Produtos", users, perms))
	assert.Equal(t, []*entity.User{u2}, permission.UsersWithoutAccess("Produtos", users, perms))
}

func TestMatrix_ComplementoYOrden(t *testing.T) {
	users := []*entity.User{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	perms := []*entity.ScreenPermission{
		{UserID: "d", ScreenName: "Vendas"},
		{UserID: "b", ScreenName: "Vendas"},
		{UserID: "b", ScreenName: "Vendas"}, // duplicado: no repite al usuario
		{UserID: "a", ScreenName: "Clientes"},
		{UserID: "zz", ScreenName: "Vendas"}, // usuario desconocido
		nil,
	}

	with := permission.UsersWithAccess("Vendas", users, perms)
	without := permission.UsersWithoutAccess("Vendas", users, perms)

	assert.Equal(t, []*entity.User{users[1], users[3]}, with)
	assert.Equal(t, []*entity.User{users[0], users[2]}, without)
	assert.Len(t, append(with, without...), len(users))
}

func TestMatrix_SinPermisos(t *testing.T) {
	users := []*entity.User{{ID: "a"}}
	assert.Empty(t, permission.UsersWithAccess("Dashboard", users, nil))
	assert.Equal(t, users, permission.UsersWithoutAccess("Dashboard", users, nil))
}

func TestMatrix_IgnoraUsuariosNil(t *testing.T) {
	a := &entity.User{ID: "a"}
	b := &entity.User{ID: "b"}
	users := []*entity.User{a, nil, b}
	perms := []*entity.ScreenPermission{{UserID: "a", ScreenName: "Vendas"}}

	assert.Equal(t, []*entity.User{a}, permission.UsersWithAccess("Vendas", users, perms))
	assert.Equal(t, []*entity.User{b}, permission.UsersWithoutAccess("Vendas", users, perms))
}

func TestFind(t *testing.T) {
	perms := []*entity.ScreenPermission{
		{ID: "1", UserID: "a", ScreenName: "Vendas"},
		{ID: "2", UserID: "a", ScreenName: "Clientes"},
	}
	assert.Equal(t, "2", permission.Find("Clientes", "a", perms).ID)
	assert.Nil(t, permission.Find("Clientes", "b", perms))
}
