package playback

import (
	"github.com/gin-gonic/gin"
	"github.com/sceneflow/sceneflow-api/api/types"
)

// RegisterRoutes registers playback plan routes on the projects group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:id/plan", GetPlan(deps))
}
