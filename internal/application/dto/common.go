package dto

// ListQuery parámetros comunes de listado (query string).
type ListQuery struct {
	Sort   string `query:"sort" json:"sort"`
	Limit  int    `query:"limit" json:"limit" validate:"min=0,max=500"`
	Offset int    `query:"offset" json:"offset" validate:"min=0"`
	Search string `query:"search" json:"search"`
	Active *bool  `query:"active" json:"active"`
}

// DefaultPage aplica el límite por defecto cuando Limit es 0 y acota valores fuera de rango.
func (q *ListQuery) DefaultPage(limit int) {
	if q.Limit <= 0 {
		q.Limit = limit
	}
	if q.Limit > 500 {
		q.Limit = 500
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
