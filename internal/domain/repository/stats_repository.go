package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary cantidad y suma de ventas en un rango.
type SalesSummary struct {
	Count int
	Total decimal.Decimal
}

// EntityCounts registros activos y totales de una entidad.
type EntityCounts struct {
	Active int
	Total  int
}

// StatsRepository consultas agregadas de sólo lectura para el dashboard.
type StatsRepository interface {
	// SalesSummary suma las ventas con created_at en [from, to). Un from/to cero no acota ese extremo.
	SalesSummary(ctx context.Context, from, to time.Time) (SalesSummary, error)
	ProductCounts(ctx context.Context) (EntityCounts, error)
	ClientCounts(ctx context.Context) (EntityCounts, error)
}
