package scenes

import (
	"github.com/gin-gonic/gin"
	"github.com/sceneflow/sceneflow-api/api/types"
)

// RegisterRoutes registers scene management routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:id", GetScene(deps))
	router.PATCH("/:id", UpdateScene(deps))
	router.DELETE("/:id", DeleteScene(deps))
}
