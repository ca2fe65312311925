package playback

import (
	"context"

	"github.com/sceneflow/sceneflow-api/internal/models"
)

// VisualSurface is the single video-or-image display region, owned
// exclusively by the sequencer for the duration of playback. The host
// application supplies an implementation bound to its actual display.
//
// PlayVideo starts native playback of the segment's trimmed range and
// returns a completion signal that fires when the native playback
// position reaches the segment's end or the media itself ends,
// whichever comes first. ShowImage only displays the still; the
// sequencer supplies its own wall-clock timer for image segments.
type VisualSurface interface {
	// PlayVideo starts the segment and returns its completion signal
	PlayVideo(ctx context.Context, segment models.PlaybackSegment) (CompletionSignal, error)

	// ShowImage displays a storyboard still
	ShowImage(ctx context.Context, segment models.PlaybackSegment) error

	// Pause halts native playback, keeping the current position
	Pause()

	// Resume continues native playback from the held position and
	// returns a fresh completion signal for the remainder of the
	// current segment
	Resume() (CompletionSignal, error)

	// Stop halts playback and releases the current media entirely
	Stop()
}
