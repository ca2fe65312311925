package render

// RenderMode selects the renderer pipeline for a job
type RenderMode string

const (
	// ModeKenBurns renders still images with a slow zoom/pan effect
	ModeKenBurns RenderMode = "ken_burns"

	// ModeConcatenate concatenates pre-rendered video segments
	ModeConcatenate RenderMode = "concatenate"
)

// VideoSegment is one video source in a concatenation render.
// StartTime and EndTime are offsets into the source media, so the
// renderer cuts the same trimmed range the preview played.
type VideoSegment struct {
	VideoURL  string  `json:"videoUrl"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
	Duration  float64 `json:"duration"`
	Label     string  `json:"label,omitempty"`
}

// ImageSegment is one still image in a Ken Burns render
type ImageSegment struct {
	ImageURL string  `json:"imageUrl"`
	Duration float64 `json:"duration"`
	Label    string  `json:"label,omitempty"`
}

// AudioClip schedules one audio source on the render's mix timeline.
// StartTime is seconds from the start of the output.
type AudioClip struct {
	URL       string  `json:"url"`
	StartTime float64 `json:"startTime"`
	Duration  float64 `json:"duration,omitempty"`
	Volume    float64 `json:"volume"`
}

// JobSpec is the self-contained render job description handed to the
// external renderer. Field names are the renderer's wire contract.
type JobSpec struct {
	JobID      string     `json:"jobId"`
	ProjectID  string     `json:"projectId"`
	RenderMode RenderMode `json:"renderMode"`
	Resolution string     `json:"resolution"`
	FPS        int        `json:"fps"`
	OutputPath string     `json:"outputPath"`

	// VideoSegments is populated in concatenate mode
	VideoSegments []VideoSegment `json:"videoSegments,omitempty"`

	// Segments is populated in ken_burns mode
	Segments []ImageSegment `json:"segments,omitempty"`

	AudioClips []AudioClip `json:"audioClips"`

	IncludeSegmentAudio bool    `json:"includeSegmentAudio"`
	SegmentAudioVolume  float64 `json:"segmentAudioVolume"`
}

// TotalDuration returns the output length implied by the visual track
func (s *JobSpec) TotalDuration() float64 {
	var total float64
	for _, segment := range s.VideoSegments {
		total += segment.Duration
	}
	for _, segment := range s.Segments {
		total += segment.Duration
	}
	return total
}
