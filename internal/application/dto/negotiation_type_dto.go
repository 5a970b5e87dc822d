package dto

import "time"

// CreateNegotiationTypeRequest entrada para crear un tipo de negociación.
type CreateNegotiationTypeRequest struct {
	Code        string `json:"code" validate:"required,min=1,max=20"`
	Description string `json:"description" validate:"required,min=1,max=200"`
	Notes       string `json:"notes" validate:"max=1000"`
	Active      *bool  `json:"active"`
}

// UpdateNegotiationTypeRequest actualización parcial.
type UpdateNegotiationTypeRequest struct {
	Code        *string `json:"code" validate:"omitempty,min=1,max=20"`
	Description *string `json:"description" validate:"omitempty,min=1,max=200"`
	Notes       *string `json:"notes" validate:"omitempty,max=1000"`
	Active      *bool   `json:"active"`
}

// NegotiationTypeResponse salida de un tipo de negociación.
type NegotiationTypeResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Notes       string    `json:"notes"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NegotiationTypeListResponse lista paginada.
type NegotiationTypeListResponse struct {
	Items []NegotiationTypeResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}
