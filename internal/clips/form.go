package clips

import (
	"github.com/ytclipper/ytclipper/internal/timecode"
	"github.com/ytclipper/ytclipper/internal/youtube"
)

const (
	DefaultStartText = "0:00"
	DefaultEndText   = "0:30"

	// VideoErrorMessage is shown while the video field references nothing.
	VideoErrorMessage = "Enter a valid YouTube URL or ID"
)

// Form is the raw text the user has typed. Every derived value is computed
// from it on each call so nothing can drift out of sync with the input.
type Form struct {
	Video string `json:"video"`
	Start string `json:"start"`
	End   string `json:"end"`
	Title string `json:"title"`
}

func NewForm(video string) Form {
	return Form{
		Video: video,
		Start: DefaultStartText,
		End:   DefaultEndText,
		Title: DefaultTitle(1),
	}
}

func (f Form) VideoID() string {
	return youtube.ExtractID(f.Video)
}

func (f Form) VideoError() string {
	if f.VideoID() == "" {
		return VideoErrorMessage
	}
	return ""
}

func (f Form) StartSeconds() int {
	return timecode.ParseDuration(f.Start)
}

func (f Form) EndSeconds() int {
	return timecode.ParseDuration(f.End)
}

func (f Form) ValidRange() bool {
	return ValidRange(f.StartSeconds(), f.EndSeconds())
}

func (f Form) CanAdd() bool {
	return CanAdd(f.VideoID(), f.StartSeconds(), f.EndSeconds())
}
