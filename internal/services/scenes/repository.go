package scenes

import (
	"context"
	"errors"
	"fmt"

	"github.com/sceneflow/sceneflow-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements ProjectRepository interface
var _ ProjectRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateProject(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return fmt.Errorf("creating project: %w", err)
	}
	return nil
}

func (r *Repository) GetProjectByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).
		Preload("Scenes", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Scenes.Clips", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Scenes.DialogueCues").
		First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return &project, nil
}

func (r *Repository) ListProjects(ctx context.Context, page, limit int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&models.Project{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting projects: %w", err)
	}

	if err := query.
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&projects).Error; err != nil {
		return nil, 0, fmt.Errorf("listing projects: %w", err)
	}

	return projects, total, nil
}

func (r *Repository) UpdateProject(ctx context.Context, project *models.Project) error {
	// Scenes are managed through their own operations; saving the parent
	// must not cascade into them
	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(project)
	if result.Error != nil {
		return fmt.Errorf("updating project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *Repository) DeleteProject(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *Repository) CreateScene(ctx context.Context, scene *models.Scene) error {
	if err := r.db.WithContext(ctx).Create(scene).Error; err != nil {
		return fmt.Errorf("creating scene: %w", err)
	}
	return nil
}

func (r *Repository) GetSceneByID(ctx context.Context, id uint) (*models.Scene, error) {
	var scene models.Scene
	if err := r.db.WithContext(ctx).
		Preload("Clips", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("DialogueCues").
		First(&scene, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSceneNotFound
		}
		return nil, fmt.Errorf("getting scene: %w", err)
	}
	return &scene, nil
}

func (r *Repository) GetScenesByProjectID(ctx context.Context, projectID uint) ([]models.Scene, error) {
	var scenes []models.Scene
	if err := r.db.WithContext(ctx).
		Preload("Clips", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("DialogueCues").
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&scenes).Error; err != nil {
		return nil, fmt.Errorf("getting scenes for project %d: %w", projectID, err)
	}
	return scenes, nil
}

func (r *Repository) UpdateScene(ctx context.Context, scene *models.Scene) error {
	// Clips are owned by the timeline editor; saving the scene must not
	// cascade into them
	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(scene)
	if result.Error != nil {
		return fmt.Errorf("updating scene: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSceneNotFound
	}
	return nil
}

func (r *Repository) DeleteScene(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Scene{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting scene: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSceneNotFound
	}
	return nil
}
