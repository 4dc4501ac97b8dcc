package cart

import (
	"strings"
	"sync"
)

// Manager holds one ephemeral cart per session, keyed by the session email.
// Carts live only in process memory: a restart reconstructs every cart
// empty, mirroring the storefront's reload behavior.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

// Get returns the cart for a session, creating it on first use.
func (m *Manager) Get(email string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(email)
	c, ok := m.carts[key]
	if !ok {
		c = &Cart{}
		m.carts[key] = c
	}
	return c
}

// With runs fn against the session's cart under the manager lock.
func (m *Manager) With(email string, fn func(*Cart)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := strings.ToLower(email)
	c, ok := m.carts[key]
	if !ok {
		c = &Cart{}
		m.carts[key] = c
	}
	fn(c)
}

// Drop discards a session's cart, e.g. on logout.
func (m *Manager) Drop(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, strings.ToLower(email))
}
