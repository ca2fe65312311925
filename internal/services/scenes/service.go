package scenes

import (
	"context"
	"fmt"
	"log"

	"github.com/sceneflow/sceneflow-api/internal/models"
)

// Service implements SceneService on top of a ProjectRepository
type Service struct {
	repository ProjectRepository
}

var _ SceneService = (*Service)(nil)

func NewService(repository ProjectRepository) *Service {
	return &Service{repository: repository}
}

func (s *Service) CreateProject(ctx context.Context, params CreateProjectParams) (*models.Project, error) {
	if params.Title == "" {
		return nil, fmt.Errorf("project title is required")
	}

	project := &models.Project{
		Title:      params.Title,
		Resolution: params.Resolution,
		FPS:        params.FPS,
	}
	if err := s.repository.CreateProject(ctx, project); err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] Created project %d: %s", project.ID, project.Title)
	return project, nil
}

func (s *Service) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	return s.repository.GetProjectByID(ctx, id)
}

func (s *Service) ListProjects(ctx context.Context, page, limit int) ([]models.Project, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repository.ListProjects(ctx, page, limit)
}

func (s *Service) UpdateProject(ctx context.Context, id uint, params UpdateProjectParams) (*models.Project, error) {
	project, err := s.repository.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		project.Title = *params.Title
	}
	if params.Resolution != nil {
		project.Resolution = *params.Resolution
	}
	if params.FPS != nil {
		project.FPS = *params.FPS
	}

	if err := s.repository.UpdateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *Service) DeleteProject(ctx context.Context, id uint) error {
	return s.repository.DeleteProject(ctx, id)
}

// AddScene appends a scene at the end of the project's scene order
func (s *Service) AddScene(ctx context.Context, projectID uint, params SceneParams) (*models.Scene, error) {
	if _, err := s.repository.GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	existing, err := s.repository.GetScenesByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	scene := &models.Scene{
		ProjectID:     projectID,
		Position:      len(existing),
		Heading:       params.Heading,
		StoryboardURL: params.StoryboardURL,
		NarrationURL:  params.NarrationURL,
		MusicURL:      params.MusicURL,
	}
	if err := s.repository.CreateScene(ctx, scene); err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] Added scene %d to project %d at position %d", scene.ID, projectID, scene.Position)
	return scene, nil
}

func (s *Service) GetScene(ctx context.Context, id uint) (*models.Scene, error) {
	return s.repository.GetSceneByID(ctx, id)
}

func (s *Service) UpdateScene(ctx context.Context, id uint, params SceneParams) (*models.Scene, error) {
	scene, err := s.repository.GetSceneByID(ctx, id)
	if err != nil {
		return nil, err
	}

	scene.Heading = params.Heading
	scene.StoryboardURL = params.StoryboardURL
	scene.NarrationURL = params.NarrationURL
	scene.MusicURL = params.MusicURL

	if err := s.repository.UpdateScene(ctx, scene); err != nil {
		return nil, err
	}
	return scene, nil
}

// DeleteScene removes a scene and renumbers the remaining scenes so
// positions stay dense
func (s *Service) DeleteScene(ctx context.Context, id uint) error {
	scene, err := s.repository.GetSceneByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repository.DeleteScene(ctx, id); err != nil {
		return err
	}

	remaining, err := s.repository.GetScenesByProjectID(ctx, scene.ProjectID)
	if err != nil {
		return err
	}
	for i := range remaining {
		if remaining[i].Position != i {
			remaining[i].Position = i
			if err := s.repository.UpdateScene(ctx, &remaining[i]); err != nil {
				return fmt.Errorf("renumbering scene %d: %w", remaining[i].ID, err)
			}
		}
	}
	return nil
}
