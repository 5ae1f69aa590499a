package export

// ResolvedClip is one EDL event: a named range of a source video.
type ResolvedClip struct {
	ClipName  string
	MediaPath string
	StartMs   int
	EndMs     int
}
