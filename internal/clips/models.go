package clips

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNoVideo      = errors.New("no video identifier")
	ErrInvalidRange = errors.New("end must be after start")
)

// Clip is a titled sub-range of a video, in whole seconds.
type Clip struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Duration returns the clip length in seconds.
func (c Clip) Duration() int {
	return c.End - c.Start
}

// ValidRange reports whether start/end describe a playable range.
func ValidRange(start, end int) bool {
	return start >= 0 && end > start
}

// CanAdd gates Store.Add: a video must be referenced and the range valid.
func CanAdd(videoID string, start, end int) bool {
	return videoID != "" && ValidRange(start, end)
}

// IDGenerator hands out clip identifiers unique within one store.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
