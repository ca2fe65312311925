package playback

import (
	"context"

	"github.com/sceneflow/sceneflow-api/internal/models"
)

// DialogueClip schedules one dialogue audio file at an offset from
// scene start
type DialogueClip struct {
	URL       string  `json:"url"`
	StartTime float64 `json:"startTime"`
	Volume    float64 `json:"volume,omitempty"`
}

// SceneAudioConfig is the per-scene input to the audio mixer: the
// narration and music beds plus independently-timed dialogue clips.
type SceneAudioConfig struct {
	Narration string         `json:"narration,omitempty"`
	Music     string         `json:"music,omitempty"`
	Dialogue  []DialogueClip `json:"dialogue,omitempty"`
}

// IsEmpty returns true if the scene has no audio at all
func (c SceneAudioConfig) IsEmpty() bool {
	return c.Narration == "" && c.Music == "" && len(c.Dialogue) == 0
}

// AudioMixer is one mixed, self-clocked audio session per scene. The
// sequencer starts and stops it at scene boundaries only; it never
// feeds the mixer per-frame timing, so audio and video are scene-
// synchronized, not frame-synchronized. The mixer's internal gain and
// routing are opaque to this package.
type AudioMixer interface {
	// PlayScene starts the scene's mixed audio session from scene start
	PlayScene(ctx context.Context, config SceneAudioConfig) error

	// Stop halts the session; it must stop output, not merely mute it
	Stop()
}

// SceneAudio derives the mixer configuration for a scene
func SceneAudio(scene models.Scene) SceneAudioConfig {
	config := SceneAudioConfig{
		Narration: scene.NarrationURL,
		Music:     scene.MusicURL,
	}

	for _, cue := range scene.DialogueCues {
		config.Dialogue = append(config.Dialogue, DialogueClip{
			URL:       cue.SourceURL,
			StartTime: cue.StartTime,
			Volume:    cue.Volume,
		})
	}

	return config
}
