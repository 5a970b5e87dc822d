package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
)

func TestWriteError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.NewValidationError("name es requerido"), http.StatusBadRequest, "VALIDATION"},
		{domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{fmt.Errorf("producto: %w", domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{domain.ErrEmailAlreadyExists, http.StatusConflict, "DUPLICATE"},
		{fmt.Errorf("ya existe un SUP: %w", domain.ErrConflict), http.StatusConflict, "CONFLICT"},
		{fmt.Errorf("Café: %w", domain.ErrInsufficientStock), http.StatusUnprocessableEntity, "INSUFFICIENT_STOCK"},
		{domain.ErrPermissionDenied, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{&domain.RemoteError{Op: "crear venta", Err: domain.ErrNotFound}, http.StatusBadGateway, "REMOTE_ERROR"},
		{&domain.RemoteError{Op: "crear venta", Err: domain.NewValidationError("total inválido")}, http.StatusBadGateway, "REMOTE_ERROR"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.code+"/"+tc.err.Error(), func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return writeError(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestWriteError_MensajeDeValidacionSinPrefijo(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, domain.NewValidationError("las contraseñas no coinciden"))
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "las contraseñas no coinciden", body.Message)
}
