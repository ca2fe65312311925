package timeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/sceneflow/sceneflow-api/internal/models"
	"gorm.io/gorm"
)

// Service errors
var (
	ErrSceneNotFound = errors.New("scene not found")
	ErrClipNotFound  = errors.New("clip not found")
)

// Service owns the persisted clip list for each scene. It loads the
// list, applies one editor gesture, and stores the re-normalized result
// in a single transaction.
type Service interface {
	// GetTimeline returns a scene's normalized clip list
	GetTimeline(ctx context.Context, sceneID uint) ([]models.Clip, error)

	// AppendClip adds an asset to the end of a scene's timeline
	AppendClip(ctx context.Context, sceneID uint, params AppendClipParams) ([]models.Clip, error)

	// ReorderClip moves a clip to a new index
	ReorderClip(ctx context.Context, sceneID uint, assetID string, toIndex int) ([]models.Clip, error)

	// TrimClip updates one trim point on a clip
	TrimClip(ctx context.Context, sceneID uint, assetID string, field TrimField, value float64) ([]models.Clip, error)

	// RemoveClip deletes a clip from the timeline
	RemoveClip(ctx context.Context, sceneID uint, assetID string) ([]models.Clip, error)
}

// AppendClipParams contains parameters for adding a clip
type AppendClipParams struct {
	SourceURL      string
	SourceInPoint  float64
	SourceOutPoint float64
	Label          string
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	db *gorm.DB
}

// NewService creates a new timeline service
func NewService(db *gorm.DB) Service {
	return &ServiceImpl{db: db}
}

// GetTimeline returns a scene's normalized clip list
func (s *ServiceImpl) GetTimeline(ctx context.Context, sceneID uint) ([]models.Clip, error) {
	clips, err := s.loadClips(ctx, sceneID)
	if err != nil {
		return nil, err
	}
	return Normalize(clips), nil
}

// AppendClip adds an asset to the end of a scene's timeline
func (s *ServiceImpl) AppendClip(ctx context.Context, sceneID uint, params AppendClipParams) ([]models.Clip, error) {
	if params.SourceURL == "" {
		return nil, fmt.Errorf("source URL is required")
	}

	return s.edit(ctx, sceneID, func(editor *Editor) error {
		editor.Append(models.Clip{
			SceneID:        sceneID,
			SourceURL:      params.SourceURL,
			SourceInPoint:  params.SourceInPoint,
			SourceOutPoint: params.SourceOutPoint,
			Label:          params.Label,
		})
		return nil
	})
}

// ReorderClip moves a clip to a new index
func (s *ServiceImpl) ReorderClip(ctx context.Context, sceneID uint, assetID string, toIndex int) ([]models.Clip, error) {
	return s.edit(ctx, sceneID, func(editor *Editor) error {
		if err := editor.Reorder(assetID, toIndex); err != nil {
			return ErrClipNotFound
		}
		return nil
	})
}

// TrimClip updates one trim point on a clip
func (s *ServiceImpl) TrimClip(ctx context.Context, sceneID uint, assetID string, field TrimField, value float64) ([]models.Clip, error) {
	if field != TrimFieldIn && field != TrimFieldOut {
		return nil, fmt.Errorf("unknown trim field %q", field)
	}

	return s.edit(ctx, sceneID, func(editor *Editor) error {
		if err := editor.Trim(assetID, field, value); err != nil {
			return ErrClipNotFound
		}
		return nil
	})
}

// RemoveClip deletes a clip from the timeline
func (s *ServiceImpl) RemoveClip(ctx context.Context, sceneID uint, assetID string) ([]models.Clip, error) {
	return s.edit(ctx, sceneID, func(editor *Editor) error {
		if err := editor.Remove(assetID); err != nil {
			return ErrClipNotFound
		}
		return nil
	})
}

// edit loads a scene's clips, applies one gesture through the editor,
// and persists the normalized result. The stored list is replaced
// wholesale; clip identity is the asset ID, not the row ID.
func (s *ServiceImpl) edit(ctx context.Context, sceneID uint, apply func(*Editor) error) ([]models.Clip, error) {
	clips, err := s.loadClips(ctx, sceneID)
	if err != nil {
		return nil, err
	}

	editor := NewEditor(clips, nil)
	if err := apply(editor); err != nil {
		return nil, err
	}

	updated := editor.Clips()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("scene_id = ?", sceneID).Delete(&models.Clip{}).Error; err != nil {
			return fmt.Errorf("clearing clip list: %w", err)
		}

		for i := range updated {
			updated[i].ID = 0
			updated[i].SceneID = sceneID
		}

		if len(updated) > 0 {
			if err := tx.Create(&updated).Error; err != nil {
				return fmt.Errorf("storing clip list: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("persisting timeline for scene %d: %w", sceneID, err)
	}

	return updated, nil
}

// loadClips fetches a scene's clips in timeline order, verifying the
// scene exists
func (s *ServiceImpl) loadClips(ctx context.Context, sceneID uint) ([]models.Clip, error) {
	var scene models.Scene
	if err := s.db.WithContext(ctx).First(&scene, sceneID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSceneNotFound
		}
		return nil, fmt.Errorf("getting scene: %w", err)
	}

	var clips []models.Clip
	if err := s.db.WithContext(ctx).
		Where("scene_id = ?", sceneID).
		Order("position ASC").
		Find(&clips).Error; err != nil {
		return nil, fmt.Errorf("loading clips: %w", err)
	}

	return clips, nil
}
