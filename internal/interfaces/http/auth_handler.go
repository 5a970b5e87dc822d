package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendas-api/internal/application/auth"
	"github.com/jhoicas/vendas-api/internal/application/dto"
)

// AuthHandler maneja login, logout y el perfil propio.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (revoca el token actual)
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(GetClaims(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(h.uc.Me(GetActor(c)))
}

// UpdateMe godoc
// @Summary      Editar el propio perfil (opcionalmente la contraseña)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateMeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/auth/me [put]
func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	var in dto.UpdateMeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateMe(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UploadPhoto godoc
// @Summary      Subir foto de perfil
// @Description  multipart/form-data con el campo "photo" (jpeg, png, webp o gif; máx. 5 MB).
// @Tags         auth
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        photo  formData  file  true  "Imagen"
// @Success      200    {object}  dto.UserResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      502    {object}  dto.ErrorResponse
// @Router       /api/auth/me/photo [post]
func (h *AuthHandler) UploadPhoto(c *fiber.Ctx) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo photo requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return invalidBody(c)
	}
	defer f.Close()
	body, err := io.ReadAll(f)
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UploadPhoto(c.UserContext(), GetActor(c), body, fh.Header.Get("Content-Type"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Navigation godoc
// @Summary      Entradas de menú visibles para el rol del usuario
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NavigationItem
// @Router       /api/auth/navigation [get]
func (h *AuthHandler) Navigation(c *fiber.Ctx) error {
	return c.JSON(h.uc.Navigation(GetActor(c)))
}
