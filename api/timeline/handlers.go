package timeline

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sceneflow/sceneflow-api/api/types"
	"github.com/sceneflow/sceneflow-api/internal/models"
	"github.com/sceneflow/sceneflow-api/internal/services/timeline"
)

// AppendClipRequest is the request body for adding a clip to a timeline
type AppendClipRequest struct {
	SourceURL      string  `json:"source_url" binding:"required"`
	SourceInPoint  float64 `json:"source_in_point"`
	SourceOutPoint float64 `json:"source_out_point"`
	Label          string  `json:"label"`
}

// ReorderClipRequest is the request body for moving a clip
type ReorderClipRequest struct {
	AssetID string `json:"asset_id" binding:"required"`
	ToIndex *int   `json:"to_index" binding:"required"`
}

// TrimClipRequest is the request body for adjusting one trim point
type TrimClipRequest struct {
	AssetID string   `json:"asset_id" binding:"required"`
	Field   string   `json:"field" binding:"required"`
	Value   *float64 `json:"value" binding:"required"`
}

// GetTimeline returns a scene's normalized clip list
// @Summary      Get a scene's timeline
// @Tags         timeline
// @Produce      json
// @Param        id path int true "Scene ID"
// @Success      200 {object} types.TimelineResponse "Ordered clip list"
// @Failure      404 {object} types.ErrorResponse "Scene not found"
// @Router       /api/v1/scenes/{id}/timeline [get]
func GetTimeline(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		clips, err := deps.TimelineService.GetTimeline(c.Request.Context(), sceneID)
		if err != nil {
			respondTimelineError(c, err, "Failed to get timeline")
			return
		}

		sendTimeline(c, sceneID, clips)
	}
}

// AppendClip adds an asset to the end of a scene's timeline
// @Summary      Append a clip
// @Tags         timeline
// @Accept       json
// @Produce      json
// @Param        id path int true "Scene ID"
// @Param        request body AppendClipRequest true "Clip source and trim points"
// @Success      200 {object} types.TimelineResponse "Updated clip list"
// @Failure      404 {object} types.ErrorResponse "Scene not found"
// @Router       /api/v1/scenes/{id}/timeline/clips [post]
func AppendClip(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req AppendClipRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		clips, err := deps.TimelineService.AppendClip(c.Request.Context(), sceneID, timeline.AppendClipParams{
			SourceURL:      req.SourceURL,
			SourceInPoint:  req.SourceInPoint,
			SourceOutPoint: req.SourceOutPoint,
			Label:          req.Label,
		})
		if err != nil {
			respondTimelineError(c, err, "Failed to append clip")
			return
		}

		sendTimeline(c, sceneID, clips)
	}
}

// ReorderClip moves a clip to a new position in the timeline
// @Summary      Reorder a clip
// @Tags         timeline
// @Accept       json
// @Produce      json
// @Param        id path int true "Scene ID"
// @Param        request body ReorderClipRequest true "Clip and target index"
// @Success      200 {object} types.TimelineResponse "Updated clip list"
// @Failure      404 {object} types.ErrorResponse "Scene or clip not found"
// @Router       /api/v1/scenes/{id}/timeline/reorder [post]
func ReorderClip(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req ReorderClipRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		clips, err := deps.TimelineService.ReorderClip(c.Request.Context(), sceneID, req.AssetID, *req.ToIndex)
		if err != nil {
			respondTimelineError(c, err, "Failed to reorder clip")
			return
		}

		sendTimeline(c, sceneID, clips)
	}
}

// TrimClip updates one trim point on a clip
// @Summary      Trim a clip
// @Tags         timeline
// @Accept       json
// @Produce      json
// @Param        id path int true "Scene ID"
// @Param        request body TrimClipRequest true "Clip, trim field and value"
// @Success      200 {object} types.TimelineResponse "Updated clip list"
// @Failure      400 {object} types.ErrorResponse "Unknown trim field"
// @Failure      404 {object} types.ErrorResponse "Scene or clip not found"
// @Router       /api/v1/scenes/{id}/timeline/trim [post]
func TrimClip(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req TrimClipRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		field := timeline.TrimField(req.Field)
		if field != timeline.TrimFieldIn && field != timeline.TrimFieldOut {
			types.SendBadRequest(c, "Field must be source_in_point or source_out_point")
			return
		}

		clips, err := deps.TimelineService.TrimClip(c.Request.Context(), sceneID, req.AssetID, field, *req.Value)
		if err != nil {
			respondTimelineError(c, err, "Failed to trim clip")
			return
		}

		sendTimeline(c, sceneID, clips)
	}
}

// RemoveClip deletes a clip from the timeline
// @Summary      Remove a clip
// @Tags         timeline
// @Produce      json
// @Param        id path int true "Scene ID"
// @Param        assetId path string true "Clip asset ID"
// @Success      200 {object} types.TimelineResponse "Updated clip list"
// @Failure      404 {object} types.ErrorResponse "Scene or clip not found"
// @Router       /api/v1/scenes/{id}/timeline/clips/{assetId} [delete]
func RemoveClip(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sceneID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		assetID := c.Param("assetId")
		if assetID == "" {
			types.SendBadRequest(c, "Asset ID is required")
			return
		}

		clips, err := deps.TimelineService.RemoveClip(c.Request.Context(), sceneID, assetID)
		if err != nil {
			respondTimelineError(c, err, "Failed to remove clip")
			return
		}

		sendTimeline(c, sceneID, clips)
	}
}

func respondTimelineError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, timeline.ErrSceneNotFound):
		types.SendNotFound(c, "Scene not found")
	case errors.Is(err, timeline.ErrClipNotFound):
		types.SendNotFound(c, "Clip not found")
	default:
		types.SendInternalError(c, fallback)
	}
}

func sendTimeline(c *gin.Context, sceneID uint, clips []models.Clip) {
	var duration float64
	for _, clip := range clips {
		duration += clip.TimelineDuration
	}

	types.SendSuccess(c, types.TimelineResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK},
		SceneID:      sceneID,
		Clips:        clips,
		Duration:     duration,
	})
}
