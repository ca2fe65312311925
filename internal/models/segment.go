package models

// SegmentKind distinguishes the two playable segment types
type SegmentKind string

const (
	SegmentKindVideo SegmentKind = "video" // One clip's trimmed range
	SegmentKindImage SegmentKind = "image" // Storyboard still fallback
)

// PlaybackSegment is a derived, non-persisted unit of playback consumed
// by the sequencer. Segments are recomputed from the scene list on every
// plan build and carry no identity across rebuilds.
type PlaybackSegment struct {
	Kind       SegmentKind `json:"kind"`
	SceneIndex int         `json:"scene_index"`
	ClipIndex  int         `json:"clip_index"`
	SourceURL  string      `json:"source_url"`
	Start      float64     `json:"start"`    // Offset into the source media, seconds
	End        float64     `json:"end"`      // Offset into the source media, seconds
	Duration   float64     `json:"duration"` // Seconds on the presentation timeline
	Label      string      `json:"label,omitempty"`
}

// IsVideo returns true for video segments
func (s *PlaybackSegment) IsVideo() bool {
	return s.Kind == SegmentKindVideo
}
