package scenes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sceneflow/sceneflow-api/api/types"
	scenesService "github.com/sceneflow/sceneflow-api/internal/services/scenes"
)

// UpdateSceneRequest is the request body for updating a scene
type UpdateSceneRequest struct {
	Heading       string `json:"heading"`
	StoryboardURL string `json:"storyboard_url"`
	NarrationURL  string `json:"narration_url"`
	MusicURL      string `json:"music_url"`
}

// GetScene returns a scene with its timeline and audio tracks
// @Summary      Get a scene
// @Tags         scenes
// @Produce      json
// @Param        id path int true "Scene ID"
// @Success      200 {object} models.Scene "Scene with clips and dialogue cues"
// @Failure      404 {object} types.ErrorResponse "Scene not found"
// @Router       /api/v1/scenes/{id} [get]
func GetScene(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		scene, err := deps.SceneService.GetScene(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, scenesService.ErrSceneNotFound) {
				types.SendNotFound(c, "Scene not found")
				return
			}
			types.SendInternalError(c, "Failed to get scene")
			return
		}

		types.SendSuccess(c, scene)
	}
}

// UpdateScene replaces a scene's heading and track URLs
func UpdateScene(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req UpdateSceneRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		scene, err := deps.SceneService.UpdateScene(c.Request.Context(), id, scenesService.SceneParams{
			Heading:       req.Heading,
			StoryboardURL: req.StoryboardURL,
			NarrationURL:  req.NarrationURL,
			MusicURL:      req.MusicURL,
		})
		if err != nil {
			if errors.Is(err, scenesService.ErrSceneNotFound) {
				types.SendNotFound(c, "Scene not found")
				return
			}
			types.SendInternalError(c, "Failed to update scene")
			return
		}

		types.SendSuccess(c, scene)
	}
}

// DeleteScene removes a scene; remaining scenes are renumbered
func DeleteScene(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.SceneService.DeleteScene(c.Request.Context(), id); err != nil {
			if errors.Is(err, scenesService.ErrSceneNotFound) {
				types.SendNotFound(c, "Scene not found")
				return
			}
			types.SendInternalError(c, "Failed to delete scene")
			return
		}

		c.Status(http.StatusNoContent)
	}
}
