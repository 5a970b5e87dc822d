package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/application/usecase"
)

// NegotiationTypeHandler maneja los tipos de negociación.
type NegotiationTypeHandler struct {
	uc *usecase.NegotiationTypeUseCase
}

// NewNegotiationTypeHandler construye el handler.
func NewNegotiationTypeHandler(uc *usecase.NegotiationTypeUseCase) *NegotiationTypeHandler {
	return &NegotiationTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de negociación
// @Tags         negotiation-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNegotiationTypeRequest  true  "Código y descripción"
// @Success      201   {object}  dto.NegotiationTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/negotiation-types [post]
func (h *NegotiationTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNegotiationTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tipos de negociación
// @Tags         negotiation-types
// @Security     Bearer
// @Produce      json
// @Param        sort    query  string  false  "Campo de orden"
// @Param        limit   query  int     false  "Límite"
// @Param        offset  query  int     false  "Offset"
// @Param        search  query  string  false  "Código o descripción"
// @Param        active  query  bool    false  "Filtrar por estado"
// @Success      200     {object}  dto.NegotiationTypeListResponse
// @Router       /api/negotiation-types [get]
func (h *NegotiationTypeHandler) List(c *fiber.Ctx) error {
	q, err := listQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener tipo de negociación
// @Tags         negotiation-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.NegotiationTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/negotiation-types/{id} [get]
func (h *NegotiationTypeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tipo de negociación
// @Tags         negotiation-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.UpdateNegotiationTypeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.NegotiationTypeResponse
// @Router       /api/negotiation-types/{id} [put]
func (h *NegotiationTypeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateNegotiationTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tipo de negociación
// @Tags         negotiation-types
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Router       /api/negotiation-types/{id} [delete]
func (h *NegotiationTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
