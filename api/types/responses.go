package types

import "github.com/sceneflow/sceneflow-api/internal/models"

// Status constants for API responses
const (
	StatusOK         = "ok"
	StatusError      = "error"
	StatusProcessing = "processing"
	StatusQueued     = "queued"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// ProjectsResponse for project lists
type ProjectsResponse struct {
	BaseResponse
	Projects []models.Project `json:"projects"`
	Count    int              `json:"count"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
}

// TimelineResponse for a scene's clip timeline
type TimelineResponse struct {
	BaseResponse
	SceneID uint          `json:"scene_id"`
	Clips   []models.Clip `json:"clips"`

	// Duration is the total visual length of the timeline in seconds
	Duration float64 `json:"duration"`
}

// PlanResponse for a project's playback plan
type PlanResponse struct {
	BaseResponse
	ProjectID uint                       `json:"project_id"`
	Scenes    [][]models.PlaybackSegment `json:"scenes"`
}

// JobResponse for background job status
type JobResponse struct {
	BaseResponse
	Job *models.Job `json:"job"`
}
