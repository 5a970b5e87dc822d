package repository

// ListOptions orden, búsqueda y paginación para listados del almacén de entidades.
// Sort acepta un nombre de campo con prefijo "-" para orden descendente (ej. "-created_date").
// Search filtra por coincidencia parcial, sin distinguir mayúsculas, en los campos de texto
// propios de cada entidad. Limit 0 significa sin límite.
type ListOptions struct {
	Sort   string
	Limit  int
	Offset int
	Search string
}

// Fields filtro de igualdad por campo (ej. {"active": true}).
type Fields map[string]any
