package timesheet

import (
	"sync"
	"time"

	"github.com/AmauryLAPEYRE/TimeTrack/app/models"
	"github.com/google/uuid"
)

// sessionIdleTTL is how long a session survives without any request
// before the registry drops it.
const sessionIdleTTL = 24 * time.Hour

type sessionEntry struct {
	session  *Session
	lastSeen time.Time
}

// Registry hands out per-browser sessions keyed by an opaque id carried
// in a cookie. The mutex guards the map; each Session carries its own
// lock for the state inside it. Idle sessions are evicted on lookup so
// cookieless crawlers cannot grow the map without bound.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	defaults models.SalaryConfig
	ttl      time.Duration
	now      func() time.Time
}

// NewRegistry creates a registry that seeds new sessions with the given
// default salary settings.
func NewRegistry(defaults models.SalaryConfig) *Registry {
	return &Registry{
		sessions: make(map[string]*sessionEntry),
		defaults: defaults,
		ttl:      sessionIdleTTL,
		now:      time.Now,
	}
}

// Get returns the session for id, creating one (under a fresh id when
// the given id is empty, unknown or expired) as needed. The returned id
// is what the caller should set back on the cookie.
func (r *Registry) Get(id string) (string, *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.ttl {
			delete(r.sessions, key)
		}
	}

	if id != "" {
		if e, ok := r.sessions[id]; ok {
			e.lastSeen = now
			return id, e.session
		}
	}
	id = uuid.NewString()
	s := NewSession(r.defaults)
	r.sessions[id] = &sessionEntry{session: s, lastSeen: now}
	return id, s
}
