package usecase

import (
	"fmt"

	"github.com/jhoicas/vendas-api/internal/domain"
)

// domainConflict ErrConflict con un motivo legible; errors.Is(err, domain.ErrConflict) se mantiene.
func domainConflict(reason string) error {
	return fmt.Errorf("%s: %w", reason, domain.ErrConflict)
}
