package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/getlantern/systray"
	"github.com/ytclipper/ytclipper/internal/clipboard"
)

// SessionCounter reports how many editing sessions are live.
type SessionCounter interface {
	Len() int
}

type Tray struct {
	sessions  SessionCounter
	clipboard clipboard.Writer
	publicURL string
	logger    *slog.Logger
	interval  time.Duration

	statusItem   *systray.MenuItem
	sessionsItem *systray.MenuItem

	mu sync.Mutex

	onQuit func()
}

type TrayConfig struct {
	Sessions  SessionCounter
	Clipboard clipboard.Writer
	PublicURL string
	Logger    *slog.Logger
	OnQuit    func()
}

func NewTray(cfg TrayConfig) *Tray {
	cb := cfg.Clipboard
	if cb == nil {
		cb = clipboard.System{}
	}
	return &Tray{
		sessions:  cfg.Sessions,
		clipboard: cb,
		publicURL: cfg.PublicURL,
		logger:    cfg.Logger,
		interval:  5 * time.Second,
		onQuit:    cfg.OnQuit,
	}
}

// Run blocks until the tray exits. It must be called from the main goroutine
// on macOS.
func (t *Tray) Run(ctx context.Context) {
	systray.Run(func() { t.onReady(ctx) }, t.onExit)
}

func (t *Tray) onReady(ctx context.Context) {
	systray.SetIcon(iconBytes)
	systray.SetTitle("Clipper")
	systray.SetTooltip("YouTube Clipper")

	t.statusItem = systray.AddMenuItem("Serving "+t.publicURL, "Builder address")
	t.statusItem.Disable()

	t.sessionsItem = systray.AddMenuItem(sessionsLabel(0), "Live editing sessions")
	t.sessionsItem.Disable()

	systray.AddSeparator()

	copyItem := systray.AddMenuItem("Copy builder URL", "Copy the builder address to the clipboard")

	systray.AddSeparator()

	quitItem := systray.AddMenuItem("Quit", "Quit YouTube Clipper")

	ticker := time.NewTicker(t.interval)
	go func() {
		defer ticker.Stop()
		t.refresh()
		for {
			select {
			case <-ctx.Done():
				systray.Quit()
				return
			case <-ticker.C:
				t.refresh()
			case <-copyItem.ClickedCh:
				t.copyBuilderURL()
			case <-quitItem.ClickedCh:
				t.logger.Info("quit requested from tray")
				if t.onQuit != nil {
					t.onQuit()
				}
				systray.Quit()
				return
			}
		}
	}()

	t.logger.Info("system tray ready")
}

func (t *Tray) onExit() {
	t.logger.Info("system tray exiting")
}

func (t *Tray) refresh() {
	if t.sessions == nil {
		return
	}
	t.UpdateSessionsCount(t.sessions.Len())
}

// copyBuilderURL returns the notification shown for the copy attempt.
func (t *Tray) copyBuilderURL() string {
	err := t.clipboard.Write(t.publicURL + "/")
	if err != nil {
		t.logger.Warn("failed to copy builder url", "error", err)
	}
	msg := clipboard.Notification(err)
	t.setStatus(msg)
	return msg
}

func (t *Tray) setStatus(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.statusItem != nil {
		t.statusItem.SetTitle(s)
	}
}

func (t *Tray) UpdateSessionsCount(count int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sessionsItem != nil {
		t.sessionsItem.SetTitle(sessionsLabel(count))
	}
}

func sessionsLabel(n int) string {
	if n == 1 {
		return "1 session"
	}
	return fmt.Sprintf("%d sessions", n)
}
