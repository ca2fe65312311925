package projects

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sceneflow/sceneflow-api/api/types"
	"github.com/sceneflow/sceneflow-api/internal/services/scenes"
)

// CreateProjectRequest is the request body for creating a project
type CreateProjectRequest struct {
	Title      string `json:"title" binding:"required"`
	Resolution string `json:"resolution"`
	FPS        int    `json:"fps"`
}

// UpdateProjectRequest is the request body for updating a project.
// Absent fields are left unchanged.
type UpdateProjectRequest struct {
	Title      *string `json:"title"`
	Resolution *string `json:"resolution"`
	FPS        *int    `json:"fps"`
}

// AddSceneRequest is the request body for appending a scene
type AddSceneRequest struct {
	Heading       string `json:"heading"`
	StoryboardURL string `json:"storyboard_url"`
	NarrationURL  string `json:"narration_url"`
	MusicURL      string `json:"music_url"`
}

// CreateProject handles project creation
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body CreateProjectRequest true "Project fields"
// @Success      201 {object} models.Project "Created project"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid body"
// @Router       /api/v1/projects [post]
func CreateProject(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProjectRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		project, err := deps.SceneService.CreateProject(c.Request.Context(), scenes.CreateProjectParams{
			Title:      req.Title,
			Resolution: req.Resolution,
			FPS:        req.FPS,
		})
		if err != nil {
			types.SendInternalError(c, "Failed to create project")
			return
		}

		types.SendCreated(c, project)
	}
}

// ListProjects handles project listing
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size"
// @Success      200 {object} types.ProjectsResponse "Paged project list"
// @Router       /api/v1/projects [get]
func ListProjects(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := types.ParseIntQuery(c, "page", 1)
		limit := types.ParseIntQuery(c, "limit", 20)

		projects, total, err := deps.SceneService.ListProjects(c.Request.Context(), page, limit)
		if err != nil {
			types.SendInternalError(c, "Failed to list projects")
			return
		}

		types.SendSuccess(c, types.ProjectsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Projects:     projects,
			Count:        len(projects),
			Total:        total,
			Page:         page,
		})
	}
}

// GetProject returns a project with its scenes and clips
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {object} models.Project "Project with scenes and clips"
// @Failure      404 {object} types.ErrorResponse "Project not found"
// @Router       /api/v1/projects/{id} [get]
func GetProject(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		project, err := deps.SceneService.GetProject(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, scenes.ErrProjectNotFound) {
				types.SendNotFound(c, "Project not found")
				return
			}
			types.SendInternalError(c, "Failed to get project")
			return
		}

		types.SendSuccess(c, project)
	}
}

// UpdateProject handles PATCH /api/v1/projects/:id
func UpdateProject(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req UpdateProjectRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		project, err := deps.SceneService.UpdateProject(c.Request.Context(), id, scenes.UpdateProjectParams{
			Title:      req.Title,
			Resolution: req.Resolution,
			FPS:        req.FPS,
		})
		if err != nil {
			if errors.Is(err, scenes.ErrProjectNotFound) {
				types.SendNotFound(c, "Project not found")
				return
			}
			types.SendInternalError(c, "Failed to update project")
			return
		}

		types.SendSuccess(c, project)
	}
}

// DeleteProject handles DELETE /api/v1/projects/:id
func DeleteProject(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.SceneService.DeleteProject(c.Request.Context(), id); err != nil {
			if errors.Is(err, scenes.ErrProjectNotFound) {
				types.SendNotFound(c, "Project not found")
				return
			}
			types.SendInternalError(c, "Failed to delete project")
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// AddScene appends a scene to a project
// @Summary      Append a scene
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path int true "Project ID"
// @Param        request body AddSceneRequest true "Scene fields"
// @Success      201 {object} models.Scene "Created scene"
// @Failure      404 {object} types.ErrorResponse "Project not found"
// @Router       /api/v1/projects/{id}/scenes [post]
func AddScene(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req AddSceneRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		scene, err := deps.SceneService.AddScene(c.Request.Context(), id, scenes.SceneParams{
			Heading:       req.Heading,
			StoryboardURL: req.StoryboardURL,
			NarrationURL:  req.NarrationURL,
			MusicURL:      req.MusicURL,
		})
		if err != nil {
			if errors.Is(err, scenes.ErrProjectNotFound) {
				types.SendNotFound(c, "Project not found")
				return
			}
			types.SendInternalError(c, "Failed to add scene")
			return
		}

		types.SendCreated(c, scene)
	}
}
