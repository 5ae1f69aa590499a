package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ytclipper/ytclipper/internal/clips"
	"github.com/ytclipper/ytclipper/internal/logging"
)

var ErrNotFound = errors.New("session not found")

// Registry owns every live session of the process.
type Registry struct {
	defaultVideo string
	newIDs       func() clips.IDGenerator
	logger       *slog.Logger
	now          func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(defaultVideo string, logger *slog.Logger) *Registry {
	return &Registry{
		defaultVideo: defaultVideo,
		newIDs:       func() clips.IDGenerator { return clips.UUIDGenerator{} },
		logger:       logger,
		now:          time.Now,
		sessions:     make(map[string]*Session),
	}
}

// Create starts a new, empty session.
func (r *Registry) Create() *Session {
	s := newSession(uuid.NewString(), r.defaultVideo, r.newIDs(), r.now())

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Debug("session created", "session_id", logging.SanitizeToken(s.ID))
	}
	return s
}

// Get returns the session and marks it as recently used.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	s.touch(r.now())
	return s, nil
}

// Delete ends a session and drops its clips.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// EvictIdle removes sessions unused for longer than ttl and returns how many
// were removed.
func (r *Registry) EvictIdle(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, s := range r.sessions {
		if s.idleSince().Before(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}
