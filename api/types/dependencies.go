package types

import (
	"github.com/sceneflow/sceneflow-api/internal/database"
	"github.com/sceneflow/sceneflow-api/internal/services/jobs"
	"github.com/sceneflow/sceneflow-api/internal/services/playback"
	"github.com/sceneflow/sceneflow-api/internal/services/scenes"
	"github.com/sceneflow/sceneflow-api/internal/services/timeline"
	"github.com/sceneflow/sceneflow-api/internal/services/workers"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB              *database.DB
	SceneService    scenes.SceneService
	TimelineService timeline.Service
	JobService      jobs.Service
	WorkerPool      *workers.WorkerPool
	PlanBuilder     *playback.PlanBuilder
}
