package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendas-api/internal/application/sales"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/sale"
)

func TestDraftStore_UpdateSerializa(t *testing.T) {
	s := NewDraftStore()
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, &sales.Draft{ID: "d1", Flow: sale.NewFlow()}))

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(ctx, "d1", func(*sales.Draft) error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}

func TestDraftStore_NoEncontrado(t *testing.T) {
	s := NewDraftStore()
	ctx := context.Background()
	err := s.Update(ctx, "nope", func(*sales.Draft) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, s.Put(ctx, &sales.Draft{ID: "d1"}))
	require.NoError(t, s.Delete(ctx, "d1"))
	require.NoError(t, s.Delete(ctx, "d1"))
	err = s.Update(ctx, "d1", func(*sales.Draft) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraftStore_Sweep(t *testing.T) {
	s := NewDraftStore()
	ctx := context.Background()
	now := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Put(ctx, &sales.Draft{ID: "viejo", UpdatedAt: now.Add(-3 * time.Hour)}))
	require.NoError(t, s.Put(ctx, &sales.Draft{ID: "nuevo", UpdatedAt: now.Add(-time.Minute)}))

	assert.Equal(t, 1, s.Sweep(now.Add(-time.Hour)))
	assert.Equal(t, 1, s.Len())
	err := s.Update(ctx, "viejo", func(*sales.Draft) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTokenDenylist(t *testing.T) {
	l := NewTokenDenylist()
	now := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Revoke("a", now.Add(time.Hour))
	l.Revoke("b", now.Add(-time.Second))
	assert.True(t, l.IsRevoked("a"))
	assert.False(t, l.IsRevoked("b"))
	assert.False(t, l.IsRevoked("c"))

	assert.Equal(t, 1, l.Sweep())
	assert.True(t, l.IsRevoked("a"))
}
