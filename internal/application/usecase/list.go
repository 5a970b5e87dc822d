package usecase

import (
	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

const (
	defaultSort  = "-created_date"
	defaultLimit = 100
)

func listOptions(q dto.ListQuery) repository.ListOptions {
	q.DefaultPage(defaultLimit)
	sort := q.Sort
	if sort == "" {
		sort = defaultSort
	}
	return repository.ListOptions{Sort: sort, Limit: q.Limit, Offset: q.Offset, Search: q.Search}
}

// activeFilter devuelve el filtro {"active": v} si la consulta lo pide.
func activeFilter(q dto.ListQuery) repository.Fields {
	if q.Active == nil {
		return nil
	}
	return repository.Fields{"active": *q.Active}
}

func page(opts repository.ListOptions) dto.PageResponse {
	return dto.PageResponse{Limit: opts.Limit, Offset: opts.Offset}
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
