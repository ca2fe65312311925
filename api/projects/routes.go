package projects

import (
	"github.com/gin-gonic/gin"
	"github.com/sceneflow/sceneflow-api/api/types"
)

// RegisterRoutes registers project management routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", CreateProject(deps))
	router.GET("", ListProjects(deps))
	router.GET("/:id", GetProject(deps))
	router.PATCH("/:id", UpdateProject(deps))
	router.DELETE("/:id", DeleteProject(deps))
	router.POST("/:id/scenes", AddScene(deps))
}
