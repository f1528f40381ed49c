package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

type entry struct {
	mu      sync.Mutex
	session *Session
}

// Registry is the in-memory session table. Access to a single session is
// serialized through Do, so the domain types inside never see concurrent
// callers.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	now      func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// Create starts a fresh session and returns its id.
func (r *Registry) Create() string {
	id := uuid.NewString()
	e := &entry{session: newSession(id, r.now())}

	r.mu.Lock()
	r.sessions[id] = e
	r.mu.Unlock()
	return id
}

// Exists reports whether id names a live session.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sessions[id]
	return ok
}

// Do runs fn with exclusive access to the session and marks it as seen.
func (r *Registry) Do(id string, fn func(s *Session) error) error {
	e, ok := r.lookup(id)
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	// The session may have been swept or deleted while we waited for it.
	if current, ok := r.lookup(id); !ok || current != e {
		return ErrSessionNotFound
	}
	e.session.LastSeen = r.now()
	return fn(e.session)
}

func (r *Registry) lookup(id string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	return e, ok
}

// Delete drops a session. Deleting an unknown id is a no-op.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Sweep removes sessions idle for longer than idle and returns how many went.
// A session currently inside Do is never swept.
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.sessions {
		if !e.mu.TryLock() {
			continue
		}
		stale := e.session.LastSeen.Before(cutoff)
		e.mu.Unlock()
		if stale {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
