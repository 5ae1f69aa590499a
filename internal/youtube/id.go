// Package youtube recognises YouTube video identifiers and builds the player
// URLs that scope playback to a time range.
package youtube

import (
	"net/url"
	"regexp"
	"strings"
)

// IDLength is the length of every YouTube video identifier.
const IDLength = 11

var idRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// IsID reports whether s is a bare video identifier.
func IsID(s string) bool {
	return idRe.MatchString(s)
}

// ExtractID returns the video identifier referenced by input, or "" when none
// can be found. Accepted shapes, in the order they are tried:
//
//	dQw4w9WgXcQ
//	https://youtu.be/dQw4w9WgXcQ
//	https://www.youtube.com/watch?v=dQw4w9WgXcQ
//	https://www.youtube.com/embed/dQw4w9WgXcQ
//
// Surrounding spaces and control characters are ignored when input is read
// as a URL, as browsers do. Only the length of the candidate is checked;
// identifiers are opaque.
func ExtractID(input string) string {
	if IsID(input) {
		return input
	}

	u, err := url.Parse(strings.TrimFunc(input, isC0OrSpace))
	if err != nil || u.Scheme == "" {
		return ""
	}

	if strings.Contains(u.Hostname(), "youtu.be") {
		for _, seg := range strings.Split(u.EscapedPath(), "/") {
			if seg == "" {
				continue
			}
			if len(seg) == IDLength {
				return seg
			}
			return ""
		}
		return ""
	}

	if v := u.Query().Get("v"); len(v) == IDLength {
		return v
	}

	segs := strings.Split(u.EscapedPath(), "/")
	for i, seg := range segs {
		if seg != "embed" {
			continue
		}
		if i+1 < len(segs) && len(segs[i+1]) == IDLength {
			return segs[i+1]
		}
		break
	}
	return ""
}

func isC0OrSpace(r rune) bool {
	return r <= ' '
}
