package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/access"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

var (
	sup      = &entity.User{ID: "1", Email: "sup@vendas.com", Role: entity.RoleSup}
	admin    = &entity.User{ID: "2", Email: "admin@vendas.com", Role: entity.RoleAdmin}
	vendedor = &entity.User{ID: "3", Email: "ana@vendas.com", Role: entity.RoleVendedor}
	otro     = &entity.User{ID: "4", Email: "beto@vendas.com", Role: entity.RoleVendedor}
)

func TestCanEditSeller(t *testing.T) {
	cases := []struct {
		name           string
		actor, subject *entity.User
		want           bool
	}{
		{"sup se edita a sí mismo", sup, sup, true},
		{"admin no edita al sup", admin, sup, false},
		{"vendedor no edita al sup", vendedor, sup, false},
		{"sup edita admin", sup, admin, true},
		{"admin edita vendedor", admin, vendedor, true},
		{"admin se edita", admin, admin, true},
		{"vendedor no edita a otro", vendedor, otro, false},
		{"vendedor no se edita por esta vía", vendedor, vendedor, false},
		{"sin actor", nil, vendedor, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, access.CanEditSeller(tc.actor, tc.subject))
		})
	}
}

func TestCanEditSeller_SupSoloPorEmail(t *testing.T) {
	// Otro usuario con el mismo email del SUP (cualquier rol) pasa la compuerta: la regla es por email.
	mismoEmail := &entity.User{ID: "9", Email: sup.Email, Role: entity.RoleVendedor}
	assert.True(t, access.CanEditSeller(mismoEmail, sup))

	otroSup := &entity.User{ID: "8", Email: "otro-sup@vendas.com", Role: entity.RoleSup}
	assert.False(t, access.CanEditSeller(otroSup, sup))
}

func TestCanDeleteSeller_SupNuncaSeElimina(t *testing.T) {
	for _, actor := range []*entity.User{sup, admin, vendedor, nil} {
		assert.False(t, access.CanDeleteSeller(actor, sup))
	}
}

func TestCanDeleteSeller(t *testing.T) {
	assert.True(t, access.CanDeleteSeller(sup, vendedor))
	assert.True(t, access.CanDeleteSeller(admin, vendedor))
	assert.True(t, access.CanDeleteSeller(admin, admin))
	assert.False(t, access.CanDeleteSeller(vendedor, otro))
}

func TestRequire(t *testing.T) {
	assert.NoError(t, access.Require(true))
	assert.ErrorIs(t, access.Require(false), domain.ErrPermissionDenied)
	assert.ErrorIs(t, access.Require(false), domain.ErrForbidden)
}

func TestNavigationFor(t *testing.T) {
	names := func(ss []access.Screen) []string {
		var out []string
		for _, s := range ss {
			out = append(out, s.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Dashboard", "Produtos", "Clientes", "NovaVenda", "Vendas"}, names(access.NavigationFor(vendedor)))
	assert.Len(t, access.NavigationFor(admin), 8)
	assert.Len(t, access.NavigationFor(sup), 8)
	assert.Empty(t, access.NavigationFor(&entity.User{Role: "user"}))
	assert.Nil(t, access.NavigationFor(nil))
}

func TestCanSeeScreen(t *testing.T) {
	assert.True(t, access.CanSeeScreen(vendedor, access.ScreenNovaVenda))
	assert.False(t, access.CanSeeScreen(vendedor, access.ScreenAcessos))
	assert.True(t, access.CanSeeScreen(admin, access.ScreenAcessos))
	assert.False(t, access.CanSeeScreen(admin, "Inexistente"))
	assert.False(t, access.CanSeeScreen(nil, access.ScreenDashboard))
}

func TestGrantableScreens_ExcluyeAcessos(t *testing.T) {
	gs := access.GrantableScreens()
	require.Len(t, gs, 7)
	for _, s := range gs {
		assert.NotEqual(t, access.ScreenAcessos, s.Name)
	}
	s, ok := access.LookupScreen(access.ScreenNegociacoes)
	require.True(t, ok)
	assert.Equal(t, "Tipos de Negociação", s.DisplayName)
}
