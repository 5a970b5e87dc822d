package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendas-api/internal/application/sales"
)

// SaleHandler consulta de ventas confirmadas, exportación y comprobante.
type SaleHandler struct {
	uc *sales.QueryUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.QueryUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// List godoc
// @Summary      Listar ventas (más recientes primero)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        sort    query  string  false  "Campo de orden"  default(-created_date)
// @Param        limit   query  int     false  "Límite"
// @Param        offset  query  int     false  "Offset"
// @Param        search  query  string  false  "Número, cliente o vendedor"
// @Success      200     {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
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

// Export godoc
// @Summary      Exportar ventas a CSV
// @Description  Aplica el mismo orden y búsqueda que el listado, sin límite por defecto.
// @Tags         sales
// @Security     Bearer
// @Produce      text/csv
// @Param        sort    query  string  false  "Campo de orden"
// @Param        search  query  string  false  "Número, cliente o vendedor"
// @Success      200     {file}  file
// @Router       /api/sales/export [get]
func (h *SaleHandler) Export(c *fiber.Ctx) error {
	q, err := listQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	body, filename, err := h.uc.ExportCSV(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, "text/csv; charset=utf-8", filename, body)
}

// GetByID godoc
// @Summary      Detalle de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/pdf [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	body, filename, err := h.uc.ReceiptPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, "application/pdf", filename, body)
}

func sendFile(c *fiber.Ctx, contentType, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}
