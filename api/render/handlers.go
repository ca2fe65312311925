package render

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sceneflow/sceneflow-api/api/types"
	"github.com/sceneflow/sceneflow-api/internal/models"
	"github.com/sceneflow/sceneflow-api/internal/services/jobs"
	"github.com/sceneflow/sceneflow-api/internal/services/scenes"
)

// EnqueueRenderSpec queues a render-spec export for a project. If an
// active export for the same project already exists, it is returned
// instead of queueing a duplicate.
// @Summary      Export a render spec
// @Tags         render
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      202 {object} types.JobResponse "Queued or existing export job"
// @Failure      404 {object} types.ErrorResponse "Project not found"
// @Router       /api/v1/projects/{id}/render-spec [post]
func EnqueueRenderSpec(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if _, err := deps.SceneService.GetProject(c.Request.Context(), id); err != nil {
			if errors.Is(err, scenes.ErrProjectNotFound) {
				types.SendNotFound(c, "Project not found")
				return
			}
			types.SendInternalError(c, "Failed to get project")
			return
		}

		job, err := deps.JobService.EnqueueUniqueJob(c.Request.Context(), models.JobTypeRenderSpecExport,
			models.JobPayload{"project_id": id}, "project_id")
		if err != nil {
			types.SendInternalError(c, "Failed to enqueue render spec export")
			return
		}

		c.JSON(http.StatusAccepted, types.JobResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusQueued},
			Job:          job,
		})
	}
}

// GetRenderSpecJob returns the latest render-spec export job for a
// project
// @Summary      Get a project's export job
// @Tags         render
// @Produce      json
// @Param        id path int true "Project ID"
// @Success      200 {object} types.JobResponse "Latest export job"
// @Failure      404 {object} types.ErrorResponse "No export job for project"
// @Router       /api/v1/projects/{id}/render-spec [get]
func GetRenderSpecJob(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		job, err := deps.JobService.GetJobForProject(c.Request.Context(), models.JobTypeRenderSpecExport, id)
		if err != nil {
			if errors.Is(err, jobs.ErrJobNotFound) {
				types.SendNotFound(c, "No render spec export for project")
				return
			}
			types.SendInternalError(c, "Failed to get export job")
			return
		}

		types.SendSuccess(c, types.JobResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Job:          job,
		})
	}
}

// GetJob returns a background job by ID
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id path int true "Job ID"
// @Success      200 {object} types.JobResponse "Job with status and result"
// @Failure      404 {object} types.ErrorResponse "Job not found"
// @Router       /api/v1/jobs/{id} [get]
func GetJob(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		job, err := deps.JobService.GetJob(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, jobs.ErrJobNotFound) {
				types.SendNotFound(c, "Job not found")
				return
			}
			types.SendInternalError(c, "Failed to get job")
			return
		}

		types.SendSuccess(c, types.JobResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Job:          job,
		})
	}
}
