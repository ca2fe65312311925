package playback

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sceneflow/sceneflow-api/api/types"
	"github.com/sceneflow/sceneflow-api/internal/services/scenes"
)

// GetPlan resolves a project's scenes into a playback plan
// @Summary      Get a project's playback plan
// @Tags         playback
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {object} types.PlanResponse "Per-scene playback segments"
// @Failure      404 {object} types.ErrorResponse "Project not found"
// @Router       /api/v1/projects/{id}/plan [get]
func GetPlan(deps *types.Dependencies) gin.HandlerFunc {
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

		plan := deps.PlanBuilder.BuildPlan(project.Scenes)

		types.SendSuccess(c, types.PlanResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			ProjectID:    project.ID,
			Scenes:       plan,
		})
	}
}
