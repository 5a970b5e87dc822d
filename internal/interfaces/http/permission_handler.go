package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/application/usecase"
)

// PermissionHandler permisos por usuario y pantalla (SUP / ADMIN).
type PermissionHandler struct {
	uc *usecase.PermissionUseCase
}

// NewPermissionHandler construye el handler.
func NewPermissionHandler(uc *usecase.PermissionUseCase) *PermissionHandler {
	return &PermissionHandler{uc: uc}
}

// Screens catálogo de pantallas.
// GET /api/permissions/screens
func (h *PermissionHandler) Screens(c *fiber.Ctx) error {
	return c.JSON(h.uc.Screens())
}

// Matrix usuarios con y sin acceso a una pantalla.
// GET /api/permissions/matrix/:screen
func (h *PermissionHandler) Matrix(c *fiber.Ctx) error {
	out, err := h.uc.Matrix(c.UserContext(), GetActor(c), c.Params("screen"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List GET /api/permissions?screen_name=&user_id=
func (h *PermissionHandler) List(c *fiber.Ctx) error {
	var q dto.PermissionListQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), GetActor(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create POST /api/permissions
// Un mismo (usuario, pantalla) sólo puede tener un permiso: 409 si ya existe.
func (h *PermissionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/permissions/:id
func (h *PermissionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/permissions/:id
func (h *PermissionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
