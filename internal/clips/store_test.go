package clips

import (
	"errors"
	"fmt"
	"testing"
)

type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("clip-%d", g.n)
}

const testVideo = "dQw4w9WgXcQ"

func TestStore_AddAndRemove(t *testing.T) {
	s := NewStore(&seqIDs{})

	first, err := s.Add(testVideo, "Intro", 0, 30)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	second, err := s.Add(testVideo, "Chorus", 45, 90)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if !s.Remove(first.ID) {
		t.Fatal("Remove(first) = false, want true")
	}

	got := s.List()
	if len(got) != 1 {
		t.Fatalf("len(List()) = %d, want 1", len(got))
	}
	if got[0] != second {
		t.Errorf("remaining clip = %+v, want %+v", got[0], second)
	}
}

func TestStore_RemoveUnknownIsNoop(t *testing.T) {
	s := NewStore(&seqIDs{})
	c, _ := s.Add(testVideo, "Only", 0, 10)

	if s.Remove("missing") {
		t.Error("Remove(missing) = true, want false")
	}
	if s.Remove("missing") {
		t.Error("second Remove(missing) = true, want false")
	}
	if got := s.List(); len(got) != 1 || got[0] != c {
		t.Errorf("List() = %+v, want [%+v]", got, c)
	}
}

func TestStore_DefaultTitle(t *testing.T) {
	s := NewStore(&seqIDs{})

	a, _ := s.Add(testVideo, "", 0, 10)
	b, _ := s.Add(testVideo, "   ", 10, 20)
	c, _ := s.Add(testVideo, "  Named  ", 20, 30)

	if a.Title != "Clip 1" {
		t.Errorf("first title = %q, want Clip 1", a.Title)
	}
	if b.Title != "Clip 2" {
		t.Errorf("second title = %q, want Clip 2", b.Title)
	}
	if c.Title != "Named" {
		t.Errorf("third title = %q, want Named", c.Title)
	}
}

func TestStore_AddRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		video      string
		start, end int
		wantErr    error
	}{
		{"no video", "", 0, 10, ErrNoVideo},
		{"equal bounds", testVideo, 10, 10, ErrInvalidRange},
		{"reversed", testVideo, 20, 10, ErrInvalidRange},
		{"negative start", testVideo, -1, 10, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(&seqIDs{})
			if _, err := s.Add(tt.video, "x", tt.start, tt.end); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
			}
			if s.Len() != 0 {
				t.Errorf("Len() = %d after rejected Add, want 0", s.Len())
			}
		})
	}
}

func TestStore_ListIsCopy(t *testing.T) {
	s := NewStore(&seqIDs{})
	s.Add(testVideo, "A", 0, 10)

	list := s.List()
	list[0].Title = "mutated"

	if c, _ := s.Get(list[0].ID); c.Title != "A" {
		t.Errorf("stored title = %q, want A", c.Title)
	}
}

func TestStore_UUIDsAreUnique(t *testing.T) {
	s := NewStore(nil)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		c, err := s.Add(testVideo, "", i, i+1)
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestCanAdd(t *testing.T) {
	if CanAdd(testVideo, 10, 10) {
		t.Error("CanAdd(start == end) = true, want false")
	}
	if !CanAdd(testVideo, 10, 11) {
		t.Error("CanAdd(end == start+1) = false, want true")
	}
	if CanAdd("", 10, 11) {
		t.Error("CanAdd(no video) = true, want false")
	}
}
