// Package share encodes clips into the /clip link that is passed around and
// decodes such links back into something playable.
package share

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ytclipper/ytclipper/internal/clips"
	"github.com/ytclipper/ytclipper/internal/youtube"
)

// Path is where the clip page is served.
const Path = "/clip"

// DefaultTitle is shown when a link carries no title.
const DefaultTitle = "Clip"

// Link returns the relative share link for a clip of video id:
//
//	/clip?v=<id>&start=<s>&end=<e>&t=<title>
func Link(videoID string, c clips.Clip) string {
	return fmt.Sprintf("%s?v=%s&start=%d&end=%d&t=%s",
		Path, url.QueryEscape(videoID), c.Start, c.End, EscapeTitle(c.Title))
}

// AbsoluteLink prefixes Link with base, e.g. "https://clips.example.com".
func AbsoluteLink(base, videoID string, c clips.Clip) string {
	return strings.TrimRight(base, "/") + Link(videoID, c)
}

// EscapeTitle percent-encodes a title the way browsers' encodeURIComponent
// does, so spaces become %20 rather than '+'.
func EscapeTitle(title string) string {
	return strings.ReplaceAll(url.QueryEscape(title), "+", "%20")
}

// SharedClip is a clip reconstructed from an incoming link. A malformed link
// yields Valid == false instead of an error.
type SharedClip struct {
	VideoID string `json:"video_id"`
	Title   string `json:"title"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Valid   bool   `json:"valid"`
}

// Parse reads the v, start, end and t parameters of a share link.
func Parse(q url.Values) SharedClip {
	sc := SharedClip{
		VideoID: q.Get("v"),
		Title:   q.Get("t"),
	}
	if sc.Title == "" {
		sc.Title = DefaultTitle
	}

	start, startErr := strconv.Atoi(strings.TrimSpace(q.Get("start")))
	end, endErr := strconv.Atoi(strings.TrimSpace(q.Get("end")))
	if startErr == nil {
		sc.Start = start
	}
	if endErr == nil {
		sc.End = end
	}

	// Same rule as youtube.ExtractID, so every clip the builder accepts
	// produces a link that plays.
	sc.Valid = len(sc.VideoID) == youtube.IDLength &&
		startErr == nil && endErr == nil &&
		clips.ValidRange(sc.Start, sc.End)
	return sc
}

// ParseURL is Parse for a complete link string.
func ParseURL(raw string) (SharedClip, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return SharedClip{}, fmt.Errorf("parse share link: %w", err)
	}
	return Parse(u.Query()), nil
}

// Clip converts a shared clip back into a clip record without an ID.
func (sc SharedClip) Clip() clips.Clip {
	return clips.Clip{Title: sc.Title, Start: sc.Start, End: sc.End}
}

// Link re-encodes the shared clip.
func (sc SharedClip) Link() string {
	return Link(sc.VideoID, sc.Clip())
}
