// Package session scopes a clip collection and its input form to a single
// browser session. Nothing here outlives the process.
package session

import (
	"sync"
	"time"

	"github.com/ytclipper/ytclipper/internal/clips"
)

// NoActive marks that no clip is highlighted.
const NoActive = -1

// Session is one user's editing state. Requests from the same browser may
// arrive concurrently, so every transition happens under mu.
type Session struct {
	ID string

	mu       sync.Mutex
	form     clips.Form
	store    *clips.Store
	active   int
	lastSeen time.Time
}

func newSession(id, defaultVideo string, ids clips.IDGenerator, now time.Time) *Session {
	return &Session{
		ID:       id,
		form:     clips.NewForm(defaultVideo),
		store:    clips.NewStore(ids),
		active:   NoActive,
		lastSeen: now,
	}
}

// View is a consistent copy of a session's state for rendering.
type View struct {
	Form   clips.Form
	Clips  []clips.Clip
	Active int
}

// VideoID is the identifier currently referenced by the form.
func (v View) VideoID() string {
	return v.Form.VideoID()
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{Form: s.form, Clips: s.store.List(), Active: s.active}
}

func (s *Session) Form() clips.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// SetForm replaces the raw input text.
func (s *Session) SetForm(f clips.Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
}

// SetVideo replaces only the video field.
func (s *Session) SetVideo(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Video = input
}

// AddClip adds a clip from the current form. On success the new clip becomes
// the active one and the title field moves on to the next default.
func (s *Session) AddClip() (clips.Clip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked()
}

// Submit replaces the form and then adds a clip from it.
func (s *Session) Submit(f clips.Form) (clips.Clip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
	return s.addLocked()
}

func (s *Session) addLocked() (clips.Clip, error) {
	f := s.form
	c, err := s.store.Add(f.VideoID(), f.Title, f.StartSeconds(), f.EndSeconds())
	if err != nil {
		return clips.Clip{}, err
	}
	s.active = s.store.Len() - 1
	s.form.Title = clips.DefaultTitle(s.store.Len() + 1)
	return c, nil
}

// Clip looks up one clip and reports whether it is the active one.
func (s *Session) Clip(id string) (c clips.Clip, active bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok = s.store.Get(id)
	if !ok {
		return clips.Clip{}, false, false
	}
	active = s.active != NoActive && s.store.List()[s.active].ID == id
	return c, active, true
}

// RemoveClip removes a clip by ID and clears the active marker.
func (s *Session) RemoveClip(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = NoActive
	return s.store.Remove(id)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
