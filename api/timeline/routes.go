package timeline

import (
	"github.com/gin-gonic/gin"
	"github.com/sceneflow/sceneflow-api/api/types"
)

// RegisterRoutes registers timeline editing routes on the scenes group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:id/timeline", GetTimeline(deps))
	router.POST("/:id/timeline/clips", AppendClip(deps))
	router.POST("/:id/timeline/reorder", ReorderClip(deps))
	router.POST("/:id/timeline/trim", TrimClip(deps))
	router.DELETE("/:id/timeline/clips/:assetId", RemoveClip(deps))
}
