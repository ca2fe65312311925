package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Clip is one trimmed reference to a source media asset placed on a
// scene's visual track. StartTime and TimelineDuration are derived by
// the timeline normalizer and are never set directly; the contiguity
// invariant (clip i starts where clip i-1 ends, clip 0 starts at 0)
// must hold after every edit.
type Clip struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SceneID uint `json:"scene_id" gorm:"not null;index"`

	// AssetID is the clip's stable identity, unique within a scene's clip list
	AssetID string `json:"asset_id" gorm:"not null;index;size:36"`

	// Source information
	SourceURL      string  `json:"source_url" gorm:"not null;size:500"`
	SourceInPoint  float64 `json:"source_in_point" gorm:"not null"`  // Seconds into the source media
	SourceOutPoint float64 `json:"source_out_point" gorm:"not null"` // Seconds, always > SourceInPoint

	// Derived timeline placement, owned by the normalizer
	TimelineDuration float64 `json:"timeline_duration"`
	StartTime        float64 `json:"start_time"`

	// Display only, no invariant
	Label string `json:"label" gorm:"size:255"`

	// Position is the clip's index in the scene's visual track
	Position int `json:"position" gorm:"not null;index"`
}

// BeforeCreate generates an asset ID before creating a new clip
func (c *Clip) BeforeCreate(tx *gorm.DB) error {
	if c.AssetID == "" {
		c.AssetID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Clip model
func (Clip) TableName() string {
	return "clips"
}

// SourceDuration returns the trimmed range length in the source media
func (c *Clip) SourceDuration() float64 {
	return c.SourceOutPoint - c.SourceInPoint
}

// EndTime returns the clip's end position on the scene timeline
func (c *Clip) EndTime() float64 {
	return c.StartTime + c.TimelineDuration
}
