package entity

import "time"

// NegotiationType describe una condición de pago o negociación (contado, 30 días, ...).
type NegotiationType struct {
	ID          string
	Code        string
	Description string // nombre visible en la venta
	Notes       string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
