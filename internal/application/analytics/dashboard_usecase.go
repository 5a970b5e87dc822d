// Package analytics contiene los casos de uso de indicadores para la pantalla inicial.
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/application/sales"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

const dashboardRecentSales = 5 // ventas en el widget de últimas ventas

// DashboardUseCase genera el resumen del día y los totales generales.
//
// Fuente de datos: StatsRepository (consultas read-only) y SaleRepository para las
// últimas ventas.
type DashboardUseCase struct {
	stats repository.StatsRepository
	sales repository.SaleRepository
	now   func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stats repository.StatsRepository, sales repository.SaleRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats, sales: sales, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO para el actor.
//
// Cinco consultas en paralelo:
//  1. SalesSummary(hoy)      → TodayCount + TodayTotal
//  2. SalesSummary(todo)     → SalesCount + SalesTotal
//  3. ProductCounts          → ActiveProducts + TotalProducts
//  4. ClientCounts           → ActiveClients + TotalClients
//  5. últimas 5 ventas       → RecentSales
func (uc *DashboardUseCase) GetSummary(ctx context.Context, actor *entity.User) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)

	var (
		today    repository.SalesSummary
		all      repository.SalesSummary
		products repository.EntityCounts
		clients  repository.EntityCounts
		recent   []*entity.Sale
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if today, err = uc.stats.SalesSummary(gctx, todayStart, todayEnd); err != nil {
			return fmt.Errorf("dashboard: ventas de hoy: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if all, err = uc.stats.SalesSummary(gctx, time.Time{}, time.Time{}); err != nil {
			return fmt.Errorf("dashboard: ventas totales: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if products, err = uc.stats.ProductCounts(gctx); err != nil {
			return fmt.Errorf("dashboard: productos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if clients, err = uc.stats.ClientCounts(gctx); err != nil {
			return fmt.Errorf("dashboard: clientes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recent, err = uc.sales.List(gctx, repository.ListOptions{Sort: "-created_date", Limit: dashboardRecentSales})
		if err != nil {
			return fmt.Errorf("dashboard: últimas ventas: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &dto.DashboardSummaryDTO{
		UserName:       actor.FullName,
		TodayCount:     today.Count,
		TodayTotal:     today.Total.Round(2),
		SalesCount:     all.Count,
		SalesTotal:     all.Total.Round(2),
		ActiveProducts: products.Active,
		TotalProducts:  products.Total,
		ActiveClients:  clients.Active,
		TotalClients:   clients.Total,
		RecentSales:    make([]dto.SaleResponse, 0, len(recent)),
		NeedsSetup:     actor.Phone == "",
		DateLabel:      dateLabel(now),
	}
	for _, s := range recent {
		out.RecentSales = append(out.RecentSales, sales.ToSaleResponse(s))
	}
	return out, nil
}

// dateLabel devuelve una etiqueta legible del día, ej: "7 de Março de 2026".
func dateLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}
