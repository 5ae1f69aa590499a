// Package clips holds the clip collection of one editing session and the raw
// form input it is built from.
package clips

import (
	"fmt"
	"strings"
)

// Store is an insertion-ordered collection of clips, unique by ID.
// It is not safe for concurrent use; callers serialise access per session.
type Store struct {
	ids   IDGenerator
	clips []Clip
}

func NewStore(ids IDGenerator) *Store {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Store{ids: ids}
}

// Add appends a clip built from the given values. A blank title becomes
// "Clip N", N being the position the clip will occupy. Add rejects input that
// fails CanAdd and leaves the collection untouched.
func (s *Store) Add(videoID, title string, start, end int) (Clip, error) {
	if videoID == "" {
		return Clip{}, ErrNoVideo
	}
	if !ValidRange(start, end) {
		return Clip{}, ErrInvalidRange
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle(len(s.clips) + 1)
	}

	c := Clip{
		ID:    s.ids.NewID(),
		Title: title,
		Start: start,
		End:   end,
	}
	s.clips = append(s.clips, c)
	return c, nil
}

// Remove deletes the clip with the given ID. Unknown IDs are ignored.
func (s *Store) Remove(id string) bool {
	for i, c := range s.clips {
		if c.ID == id {
			s.clips = append(s.clips[:i:i], s.clips[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Get(id string) (Clip, bool) {
	for _, c := range s.clips {
		if c.ID == id {
			return c, true
		}
	}
	return Clip{}, false
}

// List returns a copy of the clips in insertion order.
func (s *Store) List() []Clip {
	out := make([]Clip, len(s.clips))
	copy(out, s.clips)
	return out
}

func (s *Store) Len() int {
	return len(s.clips)
}

// DefaultTitle is the title given to the n-th clip (1-based) when none is set.
func DefaultTitle(n int) string {
	return fmt.Sprintf("Clip %d", n)
}
