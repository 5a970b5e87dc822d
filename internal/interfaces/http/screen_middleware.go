package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendas-api/internal/domain/access"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// LocalActor key del usuario autenticado ya cargado del almacén.
const LocalActor = "actor"

// actorLoader es el contrato mínimo que necesita el middleware para cargar al usuario.
// Lo implementa *auth.AuthUseCase; el uso de interfaz evita el import circular.
type actorLoader interface {
	Actor(ctx context.Context, userID string) (*entity.User, error)
}

// LoadActor carga el usuario del token. Debe usarse DESPUÉS de AuthMiddleware.
// Un usuario borrado responde 401 y uno inactivo 403, aunque su token siga vigente.
func LoadActor(loader actorLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := loader.Actor(c.UserContext(), GetUserID(c))
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalActor, actor)
		return c.Next()
	}
}

// GetActor devuelve el usuario cargado por LoadActor (nil si no pasó por él).
func GetActor(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalActor).(*entity.User)
	return u
}

// RequireScreen restringe la ruta a los roles de la pantalla en el catálogo de navegación.
// Una pantalla desconocida no deja pasar a nadie.
func RequireScreen(screenName string) fiber.Handler {
	screen, ok := access.LookupScreen(screenName)
	if !ok {
		return RequireRole()
	}
	return RequireRole(screen.Roles...)
}
