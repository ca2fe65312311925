package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sceneflow/sceneflow-api/api/health"
	"github.com/sceneflow/sceneflow-api/api/playback"
	"github.com/sceneflow/sceneflow-api/api/projects"
	"github.com/sceneflow/sceneflow-api/api/render"
	apiScenes "github.com/sceneflow/sceneflow-api/api/scenes"
	"github.com/sceneflow/sceneflow-api/api/timeline"
	"github.com/sceneflow/sceneflow-api/api/types"
	"github.com/sceneflow/sceneflow-api/api/version"
	_ "github.com/sceneflow/sceneflow-api/docs/swagger"
	jobsService "github.com/sceneflow/sceneflow-api/internal/services/jobs"
	playbackService "github.com/sceneflow/sceneflow-api/internal/services/playback"
	scenesService "github.com/sceneflow/sceneflow-api/internal/services/scenes"
	timelineService "github.com/sceneflow/sceneflow-api/internal/services/timeline"
	"github.com/sceneflow/sceneflow-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.DB == nil || deps.DB.DB == nil {
		return fmt.Errorf("database is required")
	}

	if deps.SceneService == nil {
		deps.SceneService = scenesService.NewService(scenesService.NewRepository(deps.DB.DB))
	}
	if deps.TimelineService == nil {
		deps.TimelineService = timelineService.NewService(deps.DB.DB)
	}
	if deps.JobService == nil {
		deps.JobService = jobsService.NewService(jobsService.NewRepository(deps.DB.DB))
	}
	if deps.PlanBuilder == nil {
		deps.PlanBuilder = playbackService.NewPlanBuilder(cfg.Playback.ImageSegmentDuration)
	}

	v1 := engine.Group("/api/v1")

	// Editing traffic is interactive; per-client limits keep one
	// misbehaving client from starving the rest
	editMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20)

	projectGroup := v1.Group("/projects")
	projectGroup.Use(editMiddleware)
	projects.RegisterRoutes(projectGroup, deps)
	playback.RegisterRoutes(projectGroup, deps)
	render.RegisterProjectRoutes(projectGroup, deps)

	sceneGroup := v1.Group("/scenes")
	sceneGroup.Use(editMiddleware)
	apiScenes.RegisterRoutes(sceneGroup, deps)
	timeline.RegisterRoutes(sceneGroup, deps)

	// Job polling gets a higher limit so progress checks don't trip it
	jobGroup := v1.Group("/jobs")
	jobGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 20, 30))
	render.RegisterJobRoutes(jobGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
