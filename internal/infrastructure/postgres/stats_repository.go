package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el dashboard.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de indicadores.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// SalesSummary cantidad y total de ventas con created_at en [from, to).
// Un extremo cero se pasa como NULL y no acota.
func (r *StatsRepo) SalesSummary(ctx context.Context, from, to time.Time) (repository.SalesSummary, error) {
	const query = `
	SELECT COUNT(*), COALESCE(SUM(total), 0)
	FROM sales
	WHERE ($1::timestamptz IS NULL OR created_at >= $1)
	  AND ($2::timestamptz IS NULL OR created_at <  $2)`

	var out repository.SalesSummary
	if err := r.q.QueryRow(ctx, query, nullTime(from), nullTime(to)).Scan(&out.Count, &out.Total); err != nil {
		return out, fmt.Errorf("stats.SalesSummary: %w", err)
	}
	return out, nil
}

// ProductCounts productos activos y totales.
func (r *StatsRepo) ProductCounts(ctx context.Context) (repository.EntityCounts, error) {
	return r.counts(ctx, "products")
}

// ClientCounts clientes activos y totales.
func (r *StatsRepo) ClientCounts(ctx context.Context) (repository.EntityCounts, error) {
	return r.counts(ctx, "clients")
}

// counts table es siempre una constante de este archivo.
func (r *StatsRepo) counts(ctx context.Context, table string) (repository.EntityCounts, error) {
	var out repository.EntityCounts
	query := "SELECT COUNT(*) FILTER (WHERE active), COUNT(*) FROM " + table
	if err := r.q.QueryRow(ctx, query).Scan(&out.Active, &out.Total); err != nil {
		return out, fmt.Errorf("stats.counts(%s): %w", table, err)
	}
	return out, nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
