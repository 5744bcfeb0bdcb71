package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// Service is the in-memory editing-session registry. Sessions are keyed by
// an opaque random id handed to the browser; idle sessions are reaped so an
// abandoned tab does not pin its document forever.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// DefaultTTL is how long an idle session survives between requests.
const DefaultTTL = 2 * time.Hour

// NewService creates a registry. ttl <= 0 falls back to DefaultTTL.
func NewService(ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create starts a new editing session with an all-empty document and
// returns it.
func (s *Service) Create() *Session {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("sessions: crypto/rand unavailable: " + err.Error())
	}
	sess := newSession(hex.EncodeToString(b))
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session for id, refreshing its idle timer. Expired or
// unknown ids return nil.
func (s *Service) Get(id string) *Session {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	if now.Sub(sess.lastSeen) > s.ttl {
		delete(s.sessions, id)
		sess.close()
		return nil
	}
	sess.lastSeen = now
	return sess
}

// Delete ends a session. Unknown ids are a no-op.
func (s *Service) Delete(id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	if ok {
		sess.close()
	}
}

// Len reports the number of live sessions (expired ones included until
// swept).
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops every session idle for longer than the TTL and returns how
// many were removed.
func (s *Service) Sweep() int {
	now := s.now()
	s.mu.Lock()
	var closed []*Session
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
			closed = append(closed, sess)
		}
	}
	s.mu.Unlock()
	for _, sess := range closed {
		sess.close()
	}
	return len(closed)
}

// StartSweeper runs Sweep on the given interval until stop is closed.
func (s *Service) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				s.Sweep()
			case <-stop:
				return
			}
		}
	}()
}
