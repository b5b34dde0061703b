package cart

import (
	"sync"
	"time"
)

const (
	sessionSweepInterval = 10 * time.Minute
	sessionIdleTTL       = 24 * time.Hour
)

// Store hands out one Cart per browsing session, created lazily. Carts
// live only in process memory and vanish with it; sessions idle past
// sessionIdleTTL are swept so abandoned carts do not pile up for the life
// of the process.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
}

// session pairs a cart with the last time its visitor touched it.
type session struct {
	cart     *Cart
	lastSeen time.Time
}

func NewStore() *Store {
	s := &Store{sessions: make(map[string]*session)}
	go s.cleanupSessions()
	return s
}

// Get returns the cart for the session, creating an empty one on first use.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{cart: New()}
		s.sessions[sessionID] = sess
	}
	sess.lastSeen = time.Now()
	return sess.cart
}

// evictIdle removes sessions that have not been touched within ttl.
func (s *Store) evictIdle(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if time.Since(sess.lastSeen) > ttl {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) cleanupSessions() {
	for {
		time.Sleep(sessionSweepInterval)
		s.evictIdle(sessionIdleTTL)
	}
}
