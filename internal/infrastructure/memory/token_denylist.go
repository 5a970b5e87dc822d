package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/vendas-api/internal/application/ports"
)

var _ ports.TokenRevoker = (*TokenDenylist)(nil)

// TokenDenylist ids de tokens cerrados con logout, hasta su expiración natural.
type TokenDenylist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewTokenDenylist crea una lista vacía.
func NewTokenDenylist() *TokenDenylist {
	return &TokenDenylist{revoked: make(map[string]time.Time), now: time.Now}
}

// Revoke marca tokenID como revocado hasta until.
func (l *TokenDenylist) Revoke(tokenID string, until time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.revoked[tokenID] = until
}

// IsRevoked indica si tokenID sigue revocado.
func (l *TokenDenylist) IsRevoked(tokenID string) bool {
	l.mu.RLock()
	until, ok := l.revoked[tokenID]
	l.mu.RUnlock()
	return ok && l.now().Before(until)
}

// Sweep quita los ids cuyo token ya expiró; después de eso el propio JWT es rechazado.
func (l *TokenDenylist) Sweep() int {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for id, until := range l.revoked {
		if !now.Before(until) {
			delete(l.revoked, id)
			n++
		}
	}
	return n
}
