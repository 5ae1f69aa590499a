package youtube

import (
	"fmt"
	"net/url"
)

// DefaultDomain serves both the watch pages and the embeddable player.
const DefaultDomain = "www.youtube.com"

// Player builds URLs for the embeddable iframe player on a given domain.
type Player struct {
	Domain string
}

func NewPlayer(domain string) Player {
	if domain == "" {
		domain = DefaultDomain
	}
	return Player{Domain: domain}
}

// Embed returns the player URL for the whole video.
func (p Player) Embed(id string) string {
	return fmt.Sprintf("https://%s/embed/%s", p.Domain, url.PathEscape(id))
}

// EmbedRange returns the player URL limited to [start, end) seconds.
func (p Player) EmbedRange(id string, start, end int, autoplay bool) string {
	u := fmt.Sprintf("%s?start=%d&end=%d", p.Embed(id), start, end)
	if autoplay {
		u += "&autoplay=1"
	}
	return u
}

// WatchURL is the canonical watch page for id.
func WatchURL(id string) string {
	return "https://" + DefaultDomain + "/watch?v=" + url.QueryEscape(id)
}
