package health

import (
	"github.com/ethanbaker/names/pkg/names"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the routes for the health module
func RegisterRoutes(g *gin.RouterGroup, store names.StoreInterface) {
	ctl := &controller{store: store}
	g.GET("/health", ctl.getStatus)
	g.GET("/health/", ctl.getStatus)
}
