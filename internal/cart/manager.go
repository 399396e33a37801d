// internal/cart/manager.go
package cart

import (
	"sync"
	"time"
)

type session struct {
	cart     *Cart
	lastSeen time.Time
}

// Manager keeps one cart per shopping session. Idle sessions are evicted in
// the background so abandoned carts do not accumulate.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
}

func NewManager(ttl time.Duration) *Manager {
	m := &Manager{
		sessions: make(map[string]*session),
		ttl:      ttl,
	}

	go m.evictIdleSessions()

	return m
}

// Get returns the cart for the session, creating one on first use.
func (m *Manager) Get(sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, exists := m.sessions[sessionID]
	if !exists {
		s = &session{cart: New()}
		m.sessions[sessionID] = s
	}
	s.lastSeen = time.Now()
	return s.cart
}

// Drop discards the session's cart entirely.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

func (m *Manager) evictIdleSessions() {
	for {
		time.Sleep(time.Minute)
		m.mu.Lock()
		for id, s := range m.sessions {
			if time.Since(s.lastSeen) > m.ttl {
				delete(m.sessions, id)
			}
		}
		m.mu.Unlock()
	}
}
