package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ytclipper/ytclipper/internal/clips"
)

const defaultVideo = "https://www.youtube.com/watch?v=BYizgB2FcAQ"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSession_AddClipAdvancesForm(t *testing.T) {
	reg := NewRegistry(defaultVideo, testLogger())
	s := reg.Create()

	c, err := s.AddClip()
	if err != nil {
		t.Fatalf("AddClip() error = %v", err)
	}
	if c.Title != "Clip 1" || c.Start != 0 || c.End != 30 {
		t.Errorf("clip = %+v", c)
	}

	v := s.View()
	if v.Form.Title != "Clip 2" {
		t.Errorf("next title = %q, want Clip 2", v.Form.Title)
	}
	if v.Active != 0 {
		t.Errorf("Active = %d, want 0", v.Active)
	}

	if !s.RemoveClip(c.ID) {
		t.Error("RemoveClip() = false")
	}
	if v := s.View(); v.Active != NoActive || len(v.Clips) != 0 {
		t.Errorf("after remove: active=%d clips=%d", v.Active, len(v.Clips))
	}
}

func TestSession_ClipLookup(t *testing.T) {
	s := NewRegistry(defaultVideo, testLogger()).Create()

	first, err := s.AddClip()
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Submit(clips.Form{Video: defaultVideo, Start: "1:00", End: "1:30", Title: "Second"})
	if err != nil {
		t.Fatal(err)
	}

	if c, active, ok := s.Clip(first.ID); !ok || active || c.Title != "Clip 1" {
		t.Errorf("Clip(first) = %+v active=%v ok=%v", c, active, ok)
	}
	if c, active, ok := s.Clip(second.ID); !ok || !active || c.Start != 60 {
		t.Errorf("Clip(second) = %+v active=%v ok=%v", c, active, ok)
	}
	if _, _, ok := s.Clip("missing"); ok {
		t.Error("Clip(missing) ok = true")
	}

	s.RemoveClip(first.ID)
	if _, active, _ := s.Clip(second.ID); active {
		t.Error("clip still active after a remove")
	}
}

func TestSession_SubmitRejectsInvalidForm(t *testing.T) {
	s := NewRegistry(defaultVideo, testLogger()).Create()

	_, err := s.Submit(clips.Form{Video: "nope", Start: "0", End: "10", Title: "x"})
	if !errors.Is(err, clips.ErrNoVideo) {
		t.Fatalf("Submit() error = %v, want ErrNoVideo", err)
	}

	_, err = s.Submit(clips.Form{Video: "dQw4w9WgXcQ", Start: "0:10", End: "0:10", Title: "x"})
	if !errors.Is(err, clips.ErrInvalidRange) {
		t.Fatalf("Submit() error = %v, want ErrInvalidRange", err)
	}

	v := s.View()
	if len(v.Clips) != 0 {
		t.Errorf("clips = %d, want 0", len(v.Clips))
	}
	if v.Form.Title != "x" {
		t.Errorf("form not kept after rejected submit: %+v", v.Form)
	}
}

func TestRegistry_GetAndEvict(t *testing.T) {
	reg := NewRegistry(defaultVideo, testLogger())
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return now }

	old := reg.Create()
	now = now.Add(30 * time.Minute)
	fresh := reg.Create()

	if _, err := reg.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
	}

	now = now.Add(20 * time.Minute)
	if n := reg.EvictIdle(45 * time.Minute); n != 1 {
		t.Fatalf("EvictIdle() = %d, want 1", n)
	}
	if _, err := reg.Get(old.ID); !errors.Is(err, ErrNotFound) {
		t.Error("old session survived eviction")
	}
	if _, err := reg.Get(fresh.ID); err != nil {
		t.Errorf("fresh session evicted: %v", err)
	}
}

func TestRegistry_GetTouches(t *testing.T) {
	reg := NewRegistry(defaultVideo, testLogger())
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return now }

	s := reg.Create()
	now = now.Add(time.Hour)
	reg.Get(s.ID)
	now = now.Add(10 * time.Minute)

	if n := reg.EvictIdle(30 * time.Minute); n != 0 {
		t.Errorf("EvictIdle() = %d, want 0 for a touched session", n)
	}
}

func TestJanitor_StopsOnCancel(t *testing.T) {
	reg := NewRegistry(defaultVideo, testLogger())
	j := NewJanitor(reg, time.Minute, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
	if j.IsRunning() {
		t.Error("IsRunning() = true after stop")
	}
}

func TestManager_LoadReusesCookie(t *testing.T) {
	reg := NewRegistry(defaultVideo, testLogger())
	m := NewManager(NewCookieStore([]byte("0123456789abcdef0123456789abcdef")), reg, testLogger())

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	first, err := m.Load(rr, req)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(cookies[0])
	second, err := m.Load(httptest.NewRecorder(), req2)
	if err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if second != first {
		t.Errorf("got session %s, want %s", second.ID, first.ID)
	}
	if reg.Len() != 1 {
		t.Errorf("registry has %d sessions, want 1", reg.Len())
	}
}

func TestManager_LoadAfterEviction(t *testing.T) {
	reg := NewRegistry(defaultVideo, testLogger())
	m := NewManager(NewCookieStore([]byte("0123456789abcdef0123456789abcdef")), reg, testLogger())

	rr := httptest.NewRecorder()
	first, _ := m.Load(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	reg.Delete(first.ID)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rr.Result().Cookies()[0])
	second, err := m.Load(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if second.ID == first.ID {
		t.Error("evicted session was resurrected")
	}
}

func TestManager_TamperedCookie(t *testing.T) {
	reg := NewRegistry(defaultVideo, testLogger())
	m := NewManager(NewCookieStore([]byte("0123456789abcdef0123456789abcdef")), reg, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "forged"})
	s, err := m.Load(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s == nil || reg.Len() != 1 {
		t.Fatalf("expected a fresh session, registry len = %d", reg.Len())
	}
}
