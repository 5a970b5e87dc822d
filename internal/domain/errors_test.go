package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/vendas-api/internal/domain"
)

func TestValidationError_EsErrInvalidInput(t *testing.T) {
	err := fmt.Errorf("confirmar: %w", domain.NewValidationError("carrito vacío"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "carrito vacío")

	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "carrito vacío", ve.Reason)
}

func TestRemoteError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &domain.RemoteError{Op: "crear venta", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.True(t, domain.IsRemote(fmt.Errorf("submit: %w", err)))
	assert.False(t, domain.IsRemote(cause))
	assert.Equal(t, "crear venta: connection refused", err.Error())
}

func TestErrPermissionDenied_EsForbidden(t *testing.T) {
	assert.ErrorIs(t, domain.ErrPermissionDenied, domain.ErrForbidden)
}
