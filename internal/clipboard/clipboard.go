// Package clipboard hands finished share links to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

var (
	clipboardWriteAll = clipboard.WriteAll
	clipboardReadAll  = clipboard.ReadAll
)

// ErrUnsupported is returned when no clipboard utility is available, e.g. on
// a headless Linux box without xclip, xsel or wl-clipboard.
var ErrUnsupported = errors.New("clipboard not available on this system")

// Writer places text on a clipboard.
type Writer interface {
	Write(text string) error
}

// Reader returns the text currently on a clipboard.
type Reader interface {
	Read() (string, error)
}

// Clipboard can be both written and read.
type Clipboard interface {
	Reader
	Writer
}

// System is the operating system clipboard.
type System struct{}

func (System) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Read returns the current clipboard text, trimmed.
func (System) Read() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	text, err := clipboardReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// Messages shown to the user after a copy attempt.
const (
	CopiedMessage = "Clip link copied!"
	FailedPrefix  = "Could not copy link: "
)

// Notification is the short user-facing message reported after a copy.
func Notification(err error) string {
	if err != nil {
		return FailedPrefix + err.Error()
	}
	return CopiedMessage
}
