package analytics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

type fakeStats struct {
	mu       sync.Mutex
	ranges   [][2]time.Time
	failWith error
}

func (f *fakeStats) SalesSummary(_ context.Context, from, to time.Time) (repository.SalesSummary, error) {
	f.mu.Lock()
	f.ranges = append(f.ranges, [2]time.Time{from, to})
	f.mu.Unlock()
	if from.IsZero() {
		return repository.SalesSummary{Count: 12, Total: decimal.RequireFromString("1500.456")}, nil
	}
	return repository.SalesSummary{Count: 2, Total: decimal.RequireFromString("80.5")}, nil
}

func (f *fakeStats) ProductCounts(context.Context) (repository.EntityCounts, error) {
	return repository.EntityCounts{Active: 8, Total: 10}, f.failWith
}

func (f *fakeStats) ClientCounts(context.Context) (repository.EntityCounts, error) {
	return repository.EntityCounts{Active: 3, Total: 4}, nil
}

type fakeSales struct {
	repository.SaleRepository
	opts repository.ListOptions
}

func (f *fakeSales) List(_ context.Context, opts repository.ListOptions) ([]*entity.Sale, error) {
	f.opts = opts
	return []*entity.Sale{{ID: "s1", Number: "VEN-20260307-00001"}}, nil
}

func TestGetSummary(t *testing.T) {
	stats := &fakeStats{}
	sales := &fakeSales{}
	uc := NewDashboardUseCase(stats, sales)
	uc.now = func() time.Time { return time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC) }

	out, err := uc.GetSummary(context.Background(), &entity.User{FullName: "Ana"})
	require.NoError(t, err)

	assert.Equal(t, "Ana", out.UserName)
	assert.Equal(t, 2, out.TodayCount)
	assert.True(t, out.TodayTotal.Equal(decimal.RequireFromString("80.50")))
	assert.Equal(t, 12, out.SalesCount)
	assert.True(t, out.SalesTotal.Equal(decimal.RequireFromString("1500.46")))
	assert.Equal(t, 8, out.ActiveProducts)
	assert.Equal(t, 4, out.TotalClients)
	assert.Len(t, out.RecentSales, 1)
	assert.True(t, out.NeedsSetup)
	assert.Equal(t, "7 de Março de 2026", out.DateLabel)
	assert.Equal(t, 5, sales.opts.Limit)
	assert.Equal(t, "-created_date", sales.opts.Sort)

	var today [2]time.Time
	for _, r := range stats.ranges {
		if !r[0].IsZero() {
			today = r
		}
	}
	assert.Equal(t, time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), today[0])
	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), today[1])
}

func TestGetSummary_ConTelefonoNoPideConfiguracion(t *testing.T) {
	uc := NewDashboardUseCase(&fakeStats{}, &fakeSales{})
	out, err := uc.GetSummary(context.Background(), &entity.User{FullName: "Ana", Phone: "11 99999-0000"})
	require.NoError(t, err)
	assert.False(t, out.NeedsSetup)
}

func TestGetSummary_ErrorDeConsulta(t *testing.T) {
	uc := NewDashboardUseCase(&fakeStats{failWith: errors.New("timeout")}, &fakeSales{})
	_, err := uc.GetSummary(context.Background(), &entity.User{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "productos")
}
