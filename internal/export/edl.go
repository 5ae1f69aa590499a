package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/ytclipper/ytclipper/internal/clips"
	"github.com/ytclipper/ytclipper/internal/youtube"
)

// DefaultFrameRate is used when the caller does not pick one.
const DefaultFrameRate = 30.0

// FromClips resolves a session's clips against the video they were cut from.
func FromClips(videoID string, list []clips.Clip) []ResolvedClip {
	media := youtube.WatchURL(videoID)
	out := make([]ResolvedClip, 0, len(list))
	for _, c := range list {
		name := SanitizeName(c.Title, 160)
		if name == "" {
			name = videoID
		}
		out = append(out, ResolvedClip{
			ClipName:  name,
			MediaPath: media,
			StartMs:   c.Start * 1000,
			EndMs:     c.End * 1000,
		})
	}
	return out
}

// GenerateEDL renders clips as a CMX3600 edit decision list, laying them end
// to end on the record side.
func GenerateEDL(clips []ResolvedClip, title string, frameRate float64) string {
	fps := int(math.Round(frameRate))
	if fps <= 0 {
		fps = int(DefaultFrameRate)
	}

	isDropFrame := math.Abs(frameRate-29.97) < 0.01 || math.Abs(frameRate-59.94) < 0.01

	lines := []string{fmt.Sprintf("TITLE: %s", title)}
	if isDropFrame {
		lines = append(lines, "FCM: DROP FRAME")
	} else {
		lines = append(lines, "FCM: NON-DROP FRAME")
	}
	lines = append(lines, "")

	recordOffsetMs := 0
	for i, clip := range clips {
		durationMs := clip.EndMs - clip.StartMs
		lines = append(lines,
			fmt.Sprintf("%03d  %-8s %-5s C        %s %s %s %s", i+1, "AX", "V",
				msToTimecode(clip.StartMs, fps), msToTimecode(clip.EndMs, fps),
				msToTimecode(recordOffsetMs, fps), msToTimecode(recordOffsetMs+durationMs, fps)),
			fmt.Sprintf("* FROM CLIP NAME:  %s", clip.ClipName),
			fmt.Sprintf("* SOURCE URL:  %s", clip.MediaPath),
		)
		recordOffsetMs += durationMs
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func msToTimecode(ms int, fps int) string {
	totalFrames := int(math.Round(float64(ms) * float64(fps) / 1000.0))
	frames := totalFrames % fps
	totalSeconds := totalFrames / fps
	seconds := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	minutes := totalMinutes % 60
	hours := totalMinutes / 60
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, minutes, seconds, frames)
}
