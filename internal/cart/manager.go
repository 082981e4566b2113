package cart

import (
	"sync"

	"storefront-gateway/internal/domain"
)

// Manager holds the in-memory carts, one per session. Carts are never
// persisted: they die with the session, the reset path, or the process.
// Each mutation reads and writes under one lock hold, so two rapid
// additions of the same item always observe each other's effect.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*domain.Cart)}
}

// Add merges a catalog item into the session's cart, creating the cart on
// first use.
func (m *Manager) Add(sessionID string, p domain.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[sessionID]
	if !ok {
		c = &domain.Cart{}
		m.carts[sessionID] = c
	}
	c.Add(p)
}

// Remove deletes a line from the session's cart. Unknown sessions and
// unknown products are silent no-ops.
func (m *Manager) Remove(sessionID string, productID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.carts[sessionID]; ok {
		c.Remove(productID)
	}
}

// Snapshot returns a copy of the session's cart. Mutating the copy does not
// touch the live cart.
func (m *Manager) Snapshot(sessionID string) domain.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[sessionID]
	if !ok {
		return domain.Cart{}
	}
	lines := make([]domain.CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return domain.Cart{Lines: lines}
}

// Drop discards the session's cart entirely. Used after a successful
// submission, on logout, and on an authority-rejection reset.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}
