package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/application/sales"
)

// DraftHandler expone el flujo de venta en curso (cabecera → productos → checkout → listo).
// Cada borrador pertenece al vendedor que lo creó; para otro usuario no existe (404).
type DraftHandler struct {
	uc *sales.DraftUseCase
}

// NewDraftHandler construye el handler.
func NewDraftHandler(uc *sales.DraftUseCase) *DraftHandler {
	return &DraftHandler{uc: uc}
}

// Create godoc
// @Summary      Iniciar una venta
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.DraftResponse
// @Router       /api/sales/drafts [post]
func (h *DraftHandler) Create(c *fiber.Ctx) error {
	out, err := h.uc.Create(c.UserContext(), GetActor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Estado del borrador
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/drafts/{id} [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	return h.respond(c)(h.uc.Get(c.UserContext(), GetActor(c), c.Params("id")))
}

// ConfirmHeader godoc
// @Summary      Confirmar cliente y tipo de negociación
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.ConfirmHeaderRequest  true  "client_id, negotiation_type_id"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales/drafts/{id}/header [put]
func (h *DraftHandler) ConfirmHeader(c *fiber.Ctx) error {
	var in dto.ConfirmHeaderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return h.respond(c)(h.uc.ConfirmHeader(c.UserContext(), GetActor(c), c.Params("id"), in))
}

// BackToHeader vuelve a la cabecera conservando el carrito.
// POST /api/sales/drafts/:id/header/edit
func (h *DraftHandler) BackToHeader(c *fiber.Ctx) error {
	return h.respond(c)(h.uc.BackToHeader(c.UserContext(), GetActor(c), c.Params("id")))
}

// ResumeProducts vuelve a productos sin cambiar la cabecera confirmada.
// POST /api/sales/drafts/:id/products
func (h *DraftHandler) ResumeProducts(c *fiber.Ctx) error {
	return h.respond(c)(h.uc.ResumeProducts(c.UserContext(), GetActor(c), c.Params("id")))
}

// AddProduct godoc
// @Summary      Agregar una unidad de un producto
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.AddProductRequest  true  "product_id"
// @Success      200   {object}  dto.DraftResponse
// @Failure      422   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/sales/drafts/{id}/lines [post]
func (h *DraftHandler) AddProduct(c *fiber.Ctx) error {
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return h.respond(c)(h.uc.AddProduct(c.UserContext(), GetActor(c), c.Params("id"), in))
}

// SetQuantity godoc
// @Summary      Fijar la cantidad de una línea (<= 0 la quita)
// @Tags         drafts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id          path  string  true  "ID del borrador"
// @Param        productId   path  string  true  "ID del producto"
// @Param        body        body  dto.SetQuantityRequest  true  "quantity"
// @Success      200   {object}  dto.DraftResponse
// @Failure      422   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/sales/drafts/{id}/lines/{productId} [put]
func (h *DraftHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return h.respond(c)(h.uc.SetQuantity(c.UserContext(), GetActor(c), c.Params("id"), c.Params("productId"), in))
}

// RemoveLine DELETE /api/sales/drafts/:id/lines/:productId
func (h *DraftHandler) RemoveLine(c *fiber.Ctx) error {
	return h.respond(c)(h.uc.RemoveLine(c.UserContext(), GetActor(c), c.Params("id"), c.Params("productId")))
}

// ProceedToCheckout POST /api/sales/drafts/:id/checkout
func (h *DraftHandler) ProceedToCheckout(c *fiber.Ctx) error {
	return h.respond(c)(h.uc.ProceedToCheckout(c.UserContext(), GetActor(c), c.Params("id")))
}

// BackToProducts POST /api/sales/drafts/:id/checkout/back
func (h *DraftHandler) BackToProducts(c *fiber.Ctx) error {
	return h.respond(c)(h.uc.BackToProducts(c.UserContext(), GetActor(c), c.Params("id")))
}

// Submit godoc
// @Summary      Confirmar la venta
// @Description  Arma y persiste la venta. Si el almacén falla responde 502 y el borrador queda en checkout.
// @Tags         drafts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/sales/drafts/{id}/submit [post]
func (h *DraftHandler) Submit(c *fiber.Ctx) error {
	return h.respond(c)(h.uc.Submit(c.UserContext(), GetActor(c), c.Params("id")))
}

// Restart POST /api/sales/drafts/:id/restart (sólo después de confirmar)
func (h *DraftHandler) Restart(c *fiber.Ctx) error {
	return h.respond(c)(h.uc.Restart(c.UserContext(), GetActor(c), c.Params("id")))
}

// Discard DELETE /api/sales/drafts/:id
func (h *DraftHandler) Discard(c *fiber.Ctx) error {
	if err := h.uc.Discard(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *DraftHandler) respond(c *fiber.Ctx) func(*dto.DraftResponse, error) error {
	return func(out *dto.DraftResponse, err error) error {
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
}
