package render

import (
	"fmt"
	"log"

	"github.com/sceneflow/sceneflow-api/internal/models"
	"github.com/sceneflow/sceneflow-api/internal/services/playback"
)

// Builder turns a project into a renderer job spec. The same playback
// plan that drives the preview sequencer supplies the visual track, so
// a render reproduces exactly what the preview showed.
type Builder struct {
	planBuilder *playback.PlanBuilder
	resolution  string
	fps         int
}

// NewBuilder creates a job spec builder. resolution and fps are the
// output defaults, overridden per project when the project sets them.
func NewBuilder(planBuilder *playback.PlanBuilder, resolution string, fps int) *Builder {
	if resolution == "" {
		resolution = "1080p"
	}
	if fps <= 0 {
		fps = 24
	}
	return &Builder{
		planBuilder: planBuilder,
		resolution:  resolution,
		fps:         fps,
	}
}

// BuildJobSpec assembles the render job for a project. The render mode
// follows the visual material: any clip on any scene selects
// concatenation, otherwise storyboard stills render with the Ken Burns
// pipeline. In concatenation mode image-only scenes contribute no
// visual segment; their audio still lands on the mix timeline at the
// scene's offset.
func (b *Builder) BuildJobSpec(project *models.Project, jobID string) (*JobSpec, error) {
	if project == nil {
		return nil, fmt.Errorf("project is required")
	}
	if jobID == "" {
		return nil, fmt.Errorf("job id is required")
	}

	plan := b.planBuilder.BuildPlan(project.Scenes)

	spec := &JobSpec{
		JobID:               jobID,
		ProjectID:           fmt.Sprintf("%d", project.ID),
		RenderMode:          detectMode(plan),
		Resolution:          b.resolution,
		FPS:                 b.fps,
		OutputPath:          fmt.Sprintf("renders/%d/%s.mp4", project.ID, jobID),
		AudioClips:          []AudioClip{},
		IncludeSegmentAudio: true,
		SegmentAudioVolume:  1.0,
	}
	if project.Resolution != "" {
		spec.Resolution = project.Resolution
	}
	if project.FPS > 0 {
		spec.FPS = project.FPS
	}

	offset := 0.0
	for i, segments := range plan {
		sceneDuration := 0.0
		for _, segment := range segments {
			switch {
			case segment.IsVideo():
				spec.VideoSegments = append(spec.VideoSegments, VideoSegment{
					VideoURL:  segment.SourceURL,
					StartTime: segment.Start,
					EndTime:   segment.End,
					Duration:  segment.Duration,
					Label:     segment.Label,
				})
				sceneDuration += segment.Duration
			case spec.RenderMode == ModeKenBurns:
				spec.Segments = append(spec.Segments, ImageSegment{
					ImageURL: segment.SourceURL,
					Duration: segment.Duration,
					Label:    segment.Label,
				})
				sceneDuration += segment.Duration
			default:
				log.Printf("[DEBUG] Scene %d has no video material; skipping its still in concatenation render", i)
			}
		}

		appendSceneAudio(spec, project.Scenes[i], offset)
		offset += sceneDuration
	}

	if len(spec.VideoSegments) == 0 && len(spec.Segments) == 0 {
		return nil, fmt.Errorf("project %d has no renderable scenes", project.ID)
	}

	return spec, nil
}

// detectMode picks concatenation as soon as any clip exists; clips take
// precedence over stills the same way they do in preview
func detectMode(plan [][]models.PlaybackSegment) RenderMode {
	for _, segments := range plan {
		for _, segment := range segments {
			if segment.IsVideo() {
				return ModeConcatenate
			}
		}
	}
	return ModeKenBurns
}

// appendSceneAudio places a scene's narration, music, and dialogue cues
// on the output mix timeline, offset to where the scene starts
func appendSceneAudio(spec *JobSpec, scene models.Scene, offset float64) {
	if scene.NarrationURL != "" {
		spec.AudioClips = append(spec.AudioClips, AudioClip{
			URL:       scene.NarrationURL,
			StartTime: offset,
			Volume:    1.0,
		})
	}
	if scene.MusicURL != "" {
		spec.AudioClips = append(spec.AudioClips, AudioClip{
			URL:       scene.MusicURL,
			StartTime: offset,
			Volume:    1.0,
		})
	}
	for _, cue := range scene.DialogueCues {
		volume := cue.Volume
		if volume <= 0 {
			volume = 1.0
		}
		spec.AudioClips = append(spec.AudioClips, AudioClip{
			URL:       cue.SourceURL,
			StartTime: offset + cue.StartTime,
			Duration:  cue.Duration,
			Volume:    volume,
		})
	}
}
