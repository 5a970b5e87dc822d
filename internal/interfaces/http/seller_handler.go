package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/application/usecase"
)

// SellerHandler maneja los usuarios del sistema (SUP, ADMIN, VENDEDOR).
// Las compuertas de edición y borrado se evalúan en el caso de uso con el actor.
type SellerHandler struct {
	uc *usecase.SellerUseCase
}

// NewSellerHandler construye el handler.
func NewSellerHandler(uc *usecase.SellerUseCase) *SellerHandler {
	return &SellerHandler{uc: uc}
}

// List godoc
// @Summary      Listar vendedores
// @Description  Cada fila incluye can_edit / can_delete calculados para quien consulta.
// @Tags         sellers
// @Security     Bearer
// @Produce      json
// @Param        sort    query  string  false  "Campo de orden"
// @Param        limit   query  int     false  "Límite"
// @Param        offset  query  int     false  "Offset"
// @Param        search  query  string  false  "Nombre o email"
// @Param        active  query  bool    false  "Filtrar por estado"
// @Success      200     {object}  dto.SellerListResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/sellers [get]
func (h *SellerHandler) List(c *fiber.Ctx) error {
	q, err := listQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), GetActor(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener vendedor
// @Tags         sellers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.SellerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sellers/{id} [get]
func (h *SellerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear vendedor
// @Tags         sellers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSellerRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.SellerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sellers [post]
func (h *SellerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar vendedor
// @Description  El SUP sólo se edita a sí mismo y su rol no cambia.
// @Tags         sellers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateSellerRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SellerResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sellers/{id} [put]
func (h *SellerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar vendedor
// @Description  El SUP nunca se elimina.
// @Tags         sellers
// @Security     Bearer
// @Param        id   path  string  true  "ID del usuario"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/sellers/{id} [delete]
func (h *SellerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
