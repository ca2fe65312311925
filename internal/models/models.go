package models

import (
	"gorm.io/gorm"
)

// Project represents an authored video project: an ordered list of scenes
// that plays back as one continuous presentation.
type Project struct {
	gorm.Model
	Title      string  `json:"title" gorm:"not null"`
	Resolution string  `json:"resolution" gorm:"size:10;default:1080p"`
	FPS        int     `json:"fps" gorm:"default:24"`
	Scenes     []Scene `json:"scenes,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the Project model
func (Project) TableName() string {
	return "projects"
}

// Scene is the unit containing one visual track (ordered clips) plus
// independently-timed narration, music, and dialogue audio. A scene with
// no clips may fall back to a single storyboard still.
type Scene struct {
	gorm.Model
	ProjectID uint   `json:"project_id" gorm:"not null;index"`
	Position  int    `json:"position" gorm:"not null;index"`
	Heading   string `json:"heading"`

	// Storyboard still used as the visual fallback when the clip list is empty
	StoryboardURL string `json:"storyboard_url,omitempty" gorm:"size:500"`

	// Audio bed, mixed per scene and not editable on the timeline
	NarrationURL string        `json:"narration_url,omitempty" gorm:"size:500"`
	MusicURL     string        `json:"music_url,omitempty" gorm:"size:500"`
	DialogueCues []DialogueCue `json:"dialogue_cues,omitempty" gorm:"foreignKey:SceneID;constraint:OnDelete:CASCADE"`

	// Visual track, ordered by Position
	Clips []Clip `json:"clips,omitempty" gorm:"foreignKey:SceneID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the Scene model
func (Scene) TableName() string {
	return "scenes"
}

// HasClips returns true if the scene has at least one clip on its visual track
func (s *Scene) HasClips() bool {
	return len(s.Clips) > 0
}

// VisualDuration returns the total duration of the scene's visual track
func (s *Scene) VisualDuration() float64 {
	total := 0.0
	for _, clip := range s.Clips {
		total += clip.TimelineDuration
	}
	return total
}

// DialogueCue is one dialogue audio clip scheduled at an offset relative
// to its scene's start. Cues are mixed by the audio mixer, not placed on
// the visual timeline.
type DialogueCue struct {
	gorm.Model
	SceneID   uint    `json:"scene_id" gorm:"not null;index"`
	SourceURL string  `json:"source_url" gorm:"not null;size:500"`
	StartTime float64 `json:"start_time" gorm:"not null"` // Seconds from scene start
	Duration  float64 `json:"duration"`                   // Seconds, 0 = play to end
	Volume    float64 `json:"volume" gorm:"default:1"`
}

// TableName returns the table name for the DialogueCue model
func (DialogueCue) TableName() string {
	return "dialogue_cues"
}

// AllModels returns every persisted model for migration
func AllModels() []any {
	return []any{
		&Project{},
		&Scene{},
		&Clip{},
		&DialogueCue{},
		&Job{},
	}
}
