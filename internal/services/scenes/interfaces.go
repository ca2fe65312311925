package scenes

import (
	"context"

	"github.com/sceneflow/sceneflow-api/internal/models"
)

// ProjectRepository handles persistence for projects and their scenes
type ProjectRepository interface {
	CreateProject(ctx context.Context, project *models.Project) error
	GetProjectByID(ctx context.Context, id uint) (*models.Project, error)
	ListProjects(ctx context.Context, page, limit int) ([]models.Project, int64, error)
	UpdateProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id uint) error

	CreateScene(ctx context.Context, scene *models.Scene) error
	GetSceneByID(ctx context.Context, id uint) (*models.Scene, error)
	GetScenesByProjectID(ctx context.Context, projectID uint) ([]models.Scene, error)
	UpdateScene(ctx context.Context, scene *models.Scene) error
	DeleteScene(ctx context.Context, id uint) error
}

// SceneService is the business-logic surface for project and scene
// management
type SceneService interface {
	CreateProject(ctx context.Context, params CreateProjectParams) (*models.Project, error)
	GetProject(ctx context.Context, id uint) (*models.Project, error)
	ListProjects(ctx context.Context, page, limit int) ([]models.Project, int64, error)
	UpdateProject(ctx context.Context, id uint, params UpdateProjectParams) (*models.Project, error)
	DeleteProject(ctx context.Context, id uint) error

	AddScene(ctx context.Context, projectID uint, params SceneParams) (*models.Scene, error)
	GetScene(ctx context.Context, id uint) (*models.Scene, error)
	UpdateScene(ctx context.Context, id uint, params SceneParams) (*models.Scene, error)
	DeleteScene(ctx context.Context, id uint) error
}

// CreateProjectParams carries the fields a client may set when creating
// a project
type CreateProjectParams struct {
	Title      string
	Resolution string
	FPS        int
}

// UpdateProjectParams carries the mutable project fields; nil means
// leave unchanged
type UpdateProjectParams struct {
	Title      *string
	Resolution *string
	FPS        *int
}

// SceneParams carries the scene fields a client may set. The visual
// timeline is edited through the timeline service, not here.
type SceneParams struct {
	Heading       string
	StoryboardURL string
	NarrationURL  string
	MusicURL      string
}
