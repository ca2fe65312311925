package render

import (
	"github.com/gin-gonic/gin"
	"github.com/sceneflow/sceneflow-api/api/types"
)

// RegisterProjectRoutes registers render-spec export routes on the
// projects group
func RegisterProjectRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/:id/render-spec", EnqueueRenderSpec(deps))
	router.GET("/:id/render-spec", GetRenderSpecJob(deps))
}

// RegisterJobRoutes registers job status routes
func RegisterJobRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:id", GetJob(deps))
}
