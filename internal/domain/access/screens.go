package access

import "github.com/jhoicas/vendas-api/internal/domain/entity"

// Nombres de pantalla del catálogo fijo.
const (
	ScreenDashboard   = "Dashboard"
	ScreenVendedores  = "Vendedores"
	ScreenProdutos    = "Produtos"
	ScreenClientes    = "Clientes"
	ScreenNegociacoes = "Negociacoes"
	ScreenNovaVenda   = "NovaVenda"
	ScreenVendas      = "Vendas"
	ScreenAcessos     = "Acessos"
)

// Screen entrada de navegación con su lista estática de roles.
// Grantable indica si admite permisos por usuario (ScreenPermission).
type Screen struct {
	Name        string
	DisplayName string
	Roles       []string
	Grantable   bool
}

var (
	allRoles     = []string{entity.RoleSup, entity.RoleAdmin, entity.RoleVendedor}
	managerRoles = []string{entity.RoleSup, entity.RoleAdmin}
)

var screens = []Screen{
	{Name: ScreenDashboard, DisplayName: "Dashboard", Roles: allRoles, Grantable: true},
	{Name: ScreenVendedores, DisplayName: "Vendedores", Roles: managerRoles, Grantable: true},
	{Name: ScreenProdutos, DisplayName: "Produtos", Roles: allRoles, Grantable: true},
	{Name: ScreenClientes, DisplayName: "Clientes", Roles: allRoles, Grantable: true},
	{Name: ScreenNegociacoes, DisplayName: "Tipos de Negociação", Roles: managerRoles, Grantable: true},
	{Name: ScreenNovaVenda, DisplayName: "Nova Venda", Roles: allRoles, Grantable: true},
	{Name: ScreenVendas, DisplayName: "Consultar Vendas", Roles: allRoles, Grantable: true},
	{Name: ScreenAcessos, DisplayName: "Acessos", Roles: managerRoles},
}

// Screens devuelve una copia del catálogo en orden de navegación.
func Screens() []Screen {
	out := make([]Screen, len(screens))
	copy(out, screens)
	return out
}

// GrantableScreens pantallas que admiten permisos por usuario.
func GrantableScreens() []Screen {
	var out []Screen
	for _, s := range screens {
		if s.Grantable {
			out = append(out, s)
		}
	}
	return out
}

// LookupScreen busca una pantalla por nombre.
func LookupScreen(name string) (Screen, bool) {
	for _, s := range screens {
		if s.Name == name {
			return s, true
		}
	}
	return Screen{}, false
}

// Allows indica si role está en la lista de la pantalla.
func (s Screen) Allows(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanSeeScreen visibilidad de una entrada de navegación para el actor.
func CanSeeScreen(actor *entity.User, screenName string) bool {
	if actor == nil {
		return false
	}
	s, ok := LookupScreen(screenName)
	return ok && s.Allows(actor.Role)
}

// NavigationFor pantallas visibles para el actor, en orden.
func NavigationFor(actor *entity.User) []Screen {
	if actor == nil {
		return nil
	}
	var out []Screen
	for _, s := range screens {
		if s.Allows(actor.Role) {
			out = append(out, s)
		}
	}
	return out
}
