package session

import (
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Registry keeps track of the live sessions. Sessions add themselves once
// they are ready and remove themselves when they are destroyed.
type Registry struct {
	sync.Mutex
	sessions map[uuid.UUID]*Session
	order    []uuid.UUID
}

// DefaultRegistry is used by sessions which have not been created with the
// WithRegistry option.
var DefaultRegistry = NewRegistry()

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (r *Registry) add(s *Session) {
	r.Lock()
	defer r.Unlock()
	r.sessions[s.id] = s
	r.order = append(r.order, s.id)
}

func (r *Registry) remove(id uuid.UUID) {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return
	}
	delete(r.sessions, id)

	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Len returns the amount of live sessions.
func (r *Registry) Len() int {
	r.Lock()
	defer r.Unlock()
	return len(r.sessions)
}

// Lookup returns the live session with the given id.
func (r *Registry) Lookup(id uuid.UUID) (*Session, bool) {
	r.Lock()
	defer r.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Sessions returns the live sessions in the order they have been created.
func (r *Registry) Sessions() []*Session {
	r.Lock()
	defer r.Unlock()

	res := make([]*Session, 0, len(r.order))
	for _, id := range r.order {
		res = append(res, r.sessions[id])
	}
	return res
}

// CloseAll destroys all live sessions, the most recently created first.
// The errors of all failed teardowns are returned.
func (r *Registry) CloseAll() error {
	sessions := r.Sessions()

	var errs []error
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		if err := s.Destroy(); err != nil {
			log.Printf("unable to destroy session %v: %v\n", s.ID(), err)
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
