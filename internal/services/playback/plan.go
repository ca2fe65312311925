package playback

import (
	"github.com/sceneflow/sceneflow-api/internal/models"
)

// DefaultImageSegmentDuration is how long a storyboard still is held on
// screen when a scene has no clips, in seconds. Overridable via
// playback.image_segment_duration.
const DefaultImageSegmentDuration = 6.0

// PlanBuilder derives the full playback plan from the current scene
// list. A plan is one ordered segment list per scene; scene boundaries
// stay addressable so transport controls can jump by scene. Plans are
// recomputed whenever scenes change, never cached.
type PlanBuilder struct {
	imageDuration float64
}

// NewPlanBuilder creates a plan builder. imageDuration is the fixed
// duration for storyboard still segments; values <= 0 fall back to the
// default.
func NewPlanBuilder(imageDuration float64) *PlanBuilder {
	if imageDuration <= 0 {
		imageDuration = DefaultImageSegmentDuration
	}
	return &PlanBuilder{imageDuration: imageDuration}
}

// BuildPlan produces one segment list per scene, in scene order.
// A scene with clips yields one video segment per clip; a scene with no
// clips but a storyboard still yields a single image segment; a scene
// with neither yields an empty list, which the sequencer skips.
func (b *PlanBuilder) BuildPlan(scenes []models.Scene) [][]models.PlaybackSegment {
	plan := make([][]models.PlaybackSegment, len(scenes))

	for i, scene := range scenes {
		plan[i] = b.buildScene(i, scene)
	}

	return plan
}

func (b *PlanBuilder) buildScene(sceneIndex int, scene models.Scene) []models.PlaybackSegment {
	if scene.HasClips() {
		segments := make([]models.PlaybackSegment, len(scene.Clips))
		for j, clip := range scene.Clips {
			segments[j] = models.PlaybackSegment{
				Kind:       models.SegmentKindVideo,
				SceneIndex: sceneIndex,
				ClipIndex:  j,
				SourceURL:  clip.SourceURL,
				Start:      clip.SourceInPoint,
				End:        clip.SourceOutPoint,
				Duration:   clip.TimelineDuration,
				Label:      clip.Label,
			}
		}
		return segments
	}

	if scene.StoryboardURL != "" {
		return []models.PlaybackSegment{
			{
				Kind:       models.SegmentKindImage,
				SceneIndex: sceneIndex,
				ClipIndex:  0,
				SourceURL:  scene.StoryboardURL,
				Start:      0,
				End:        b.imageDuration,
				Duration:   b.imageDuration,
				Label:      scene.Heading,
			},
		}
	}

	return []models.PlaybackSegment{}
}
