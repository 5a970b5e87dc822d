// Package memory adaptadores en memoria del proceso: borradores de venta y tokens revocados.
// Su estado se pierde al reiniciar, lo que es aceptable para ambos.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/vendas-api/internal/application/sales"
	"github.com/jhoicas/vendas-api/internal/domain"
)

var _ sales.DraftStore = (*DraftStore)(nil)

type draftEntry struct {
	mu    sync.Mutex
	draft *sales.Draft
}

// DraftStore borradores indexados por ID. Cada borrador tiene su propio mutex: dos
// pedidos sobre el mismo borrador se serializan y borradores distintos no se bloquean.
type DraftStore struct {
	mu      sync.RWMutex
	entries map[string]*draftEntry
}

// NewDraftStore crea un almacén vacío.
func NewDraftStore() *DraftStore {
	return &DraftStore{entries: make(map[string]*draftEntry)}
}

// Put guarda o reemplaza un borrador.
func (s *DraftStore) Put(_ context.Context, d *sales.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[d.ID] = &draftEntry{draft: d}
	return nil
}

// Update ejecuta fn con el borrador bloqueado.
func (s *DraftStore) Update(ctx context.Context, id string, fn func(d *sales.Draft) error) error {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return domain.ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	// descartado mientras se esperaba el lock
	if e.draft == nil {
		return domain.ErrNotFound
	}
	return fn(e.draft)
}

// Delete descarta un borrador. Un id inexistente no es error.
func (s *DraftStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	e, ok := s.entries[id]
	delete(s.entries, id)
	s.mu.Unlock()
	if ok {
		e.mu.Lock()
		e.draft = nil
		e.mu.Unlock()
	}
	return nil
}

// Len cantidad de borradores vivos.
func (s *DraftStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep descarta los borradores sin cambios desde antes de olderThan y devuelve cuántos.
func (s *DraftStore) Sweep(olderThan time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.entries {
		if !e.mu.TryLock() {
			continue // en uso ahora mismo
		}
		if e.draft != nil && e.draft.UpdatedAt.Before(olderThan) {
			e.draft = nil
			delete(s.entries, id)
			n++
		}
		e.mu.Unlock()
	}
	return n
}
