package timeline

import (
	"github.com/sceneflow/sceneflow-api/internal/models"
)

// MinClipDuration is the shortest a clip may be on the timeline, in
// seconds. Trims that would produce a shorter clip are clamped.
const MinClipDuration = 0.5

// Normalize recomputes canonical timeline placement for a clip list.
// It walks the list in the given order with a running cursor: source
// in/out points are clamped (in >= 0, out >= in + MinClipDuration),
// TimelineDuration and StartTime are rederived, and Position is set to
// the array index. The result is contiguous and gap-free regardless of
// input quality, and normalizing an already-normalized list is a no-op.
//
// Malformed values are clamped rather than rejected; this runs on every
// edit gesture and must never fail.
func Normalize(clips []models.Clip) []models.Clip {
	normalized := make([]models.Clip, len(clips))
	cursor := 0.0

	for i, clip := range clips {
		if clip.SourceInPoint < 0 {
			clip.SourceInPoint = 0
		}
		if clip.SourceOutPoint < clip.SourceInPoint+MinClipDuration {
			clip.SourceOutPoint = clip.SourceInPoint + MinClipDuration
		}

		duration := clip.SourceOutPoint - clip.SourceInPoint
		if duration < MinClipDuration {
			duration = MinClipDuration
		}

		clip.TimelineDuration = duration
		clip.StartTime = cursor
		clip.Position = i
		cursor += duration

		normalized[i] = clip
	}

	return normalized
}
