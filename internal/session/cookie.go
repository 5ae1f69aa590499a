package session

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/ytclipper/ytclipper/internal/logging"
)

const (
	cookieName = "ytclipper-session"
	sidKey     = "sid"
)

// NewCookieStore returns a signed cookie store whose cookies last as long as
// the browser session.
func NewCookieStore(key []byte) *sessions.CookieStore {
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Manager maps the browser's session cookie to a Session in the Registry.
type Manager struct {
	store    sessions.Store
	registry *Registry
	logger   *slog.Logger
}

func NewManager(store sessions.Store, registry *Registry, logger *slog.Logger) *Manager {
	return &Manager{store: store, registry: registry, logger: logger}
}

func (m *Manager) Registry() *Registry {
	return m.registry
}

// Load returns the caller's session, creating one (and setting the cookie)
// when the cookie is missing, tampered with, or names an evicted session.
// It must run before anything is written to w.
func (m *Manager) Load(w http.ResponseWriter, r *http.Request) (*Session, error) {
	gs, err := m.store.Get(r, cookieName)
	if err != nil && m.logger != nil {
		m.logger.Debug("discarding unreadable session cookie", "error", err)
	}
	if gs == nil {
		gs = sessions.NewSession(m.store, cookieName)
	}

	if sid, ok := gs.Values[sidKey].(string); ok && sid != "" {
		if s, err := m.registry.Get(sid); err == nil {
			return s, nil
		}
		if m.logger != nil {
			m.logger.Debug("session expired, starting a new one", "session_id", logging.SanitizeToken(sid))
		}
	}

	s := m.registry.Create()
	gs.Values[sidKey] = s.ID
	if err := gs.Save(r, w); err != nil {
		m.registry.Delete(s.ID)
		return nil, fmt.Errorf("save session cookie: %w", err)
	}
	return s, nil
}
