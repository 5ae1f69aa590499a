package api

import (
	"github.com/ytclipper/ytclipper/internal/clips"
	"github.com/ytclipper/ytclipper/internal/share"
	"github.com/ytclipper/ytclipper/internal/timecode"
	"github.com/ytclipper/ytclipper/internal/youtube"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	UptimeS  int64  `json:"uptime_s"`
	Sessions int    `json:"sessions"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// DeriveResponse is everything computed from the raw form text.
type DeriveResponse struct {
	VideoID      string `json:"video_id,omitempty"`
	VideoError   string `json:"video_error,omitempty"`
	StartSeconds int    `json:"start_seconds"`
	EndSeconds   int    `json:"end_seconds"`
	StartText    string `json:"start_text"`
	EndText      string `json:"end_text"`
	ValidRange   bool   `json:"valid_range"`
	CanAdd       bool   `json:"can_add"`
	PreviewURL   string `json:"preview_url,omitempty"`
}

type FormRequest struct {
	Video string `json:"video"`
	Start string `json:"start"`
	End   string `json:"end"`
	Title string `json:"title"`
}

type ClipResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Duration   int    `json:"duration"`
	Range      string `json:"range"`
	Active     bool   `json:"active"`
	ShareLink  string `json:"share_link,omitempty"`
	PreviewURL string `json:"preview_url,omitempty"`
	EmbedURL   string `json:"embed_url,omitempty"`
}

type ClipsResponse struct {
	VideoID string         `json:"video_id,omitempty"`
	Form    clips.Form     `json:"form"`
	Clips   []ClipResponse `json:"clips"`
}

type ShareResponse struct {
	share.SharedClip
	Link         string `json:"link,omitempty"`
	AbsoluteLink string `json:"absolute_link,omitempty"`
	EmbedURL     string `json:"embed_url,omitempty"`
}

func DeriveForm(player youtube.Player, f clips.Form) DeriveResponse {
	resp := DeriveResponse{
		VideoID:      f.VideoID(),
		VideoError:   f.VideoError(),
		StartSeconds: f.StartSeconds(),
		EndSeconds:   f.EndSeconds(),
		ValidRange:   f.ValidRange(),
		CanAdd:       f.CanAdd(),
	}
	resp.StartText = timecode.FormatDuration(resp.StartSeconds)
	resp.EndText = timecode.FormatDuration(resp.EndSeconds)
	if resp.CanAdd {
		resp.PreviewURL = player.EmbedRange(resp.VideoID, resp.StartSeconds, resp.EndSeconds, true)
	}
	return resp
}

// ClipToResponse renders a clip against the video currently in the form.
// Links are omitted while the form references no video.
func ClipToResponse(player youtube.Player, videoID string, c clips.Clip, active bool) ClipResponse {
	resp := ClipResponse{
		ID:       c.ID,
		Title:    c.Title,
		Start:    c.Start,
		End:      c.End,
		Duration: c.Duration(),
		Range:    timecode.FormatRange(c.Start, c.End),
		Active:   active,
	}
	if videoID != "" {
		resp.ShareLink = share.Link(videoID, c)
		resp.PreviewURL = player.EmbedRange(videoID, c.Start, c.End, true)
		resp.EmbedURL = player.EmbedRange(videoID, c.Start, c.End, false)
	}
	return resp
}

type FormResponse struct {
	Form    clips.Form     `json:"form"`
	Derived DeriveResponse `json:"derived"`
}
