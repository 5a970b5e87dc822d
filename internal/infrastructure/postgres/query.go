package postgres

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

// table describe las columnas consultables de una tabla. Sólo se interpolan en SQL
// nombres de columna de estas listas; los valores siempre van como parámetros.
type table struct {
	name        string
	columns     string            // lista SELECT
	sortable    map[string]string // campo de orden → columna
	filterable  map[string]string // campo de filtro → columna
	searchable  []string          // columnas para ILIKE
	defaultSort string            // ORDER BY por defecto
}

// commonSort alias de orden compartidos por todas las tablas.
var commonSort = map[string]string{
	"created_date": "created_at",
	"created_at":   "created_at",
	"updated_date": "updated_at",
	"updated_at":   "updated_at",
}

// orderBy traduce "campo" / "-campo" a ORDER BY. Un campo desconocido usa el orden por defecto.
func (t table) orderBy(sort string) string {
	desc := strings.HasPrefix(sort, "-")
	field := strings.TrimPrefix(sort, "-")
	col, ok := t.sortable[field]
	if !ok {
		col, ok = commonSort[field]
	}
	if !ok {
		return " ORDER BY " + t.defaultSort
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, id", col, dir)
}

// where arma el WHERE con igualdad por campo y búsqueda parcial. args acumula los parámetros.
func (t table) where(fields repository.Fields, search string, args []any) (string, []any, error) {
	var conds []string
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys) // SQL determinista
	for _, k := range keys {
		col, ok := t.filterable[k]
		if !ok {
			return "", nil, domain.NewValidationError("campo de filtro desconocido: " + k)
		}
		args = append(args, fields[k])
		conds = append(conds, col+" = $"+strconv.Itoa(len(args)))
	}
	if s := strings.TrimSpace(search); s != "" && len(t.searchable) > 0 {
		args = append(args, "%"+escapeLike(s)+"%")
		p := "$" + strconv.Itoa(len(args))
		ors := make([]string, 0, len(t.searchable))
		for _, col := range t.searchable {
			ors = append(ors, col+" ILIKE "+p)
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}
	if len(conds) == 0 {
		return "", args, nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

// selectSQL SELECT completo con filtro, orden y paginación.
func (t table) selectSQL(fields repository.Fields, opts repository.ListOptions) (string, []any, error) {
	where, args, err := t.where(fields, opts.Search, nil)
	if err != nil {
		return "", nil, err
	}
	q := "SELECT " + t.columns + " FROM " + t.name + where + t.orderBy(opts.Sort)
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		q += " LIMIT $" + strconv.Itoa(len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		q += " OFFSET $" + strconv.Itoa(len(args))
	}
	return q, args, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
