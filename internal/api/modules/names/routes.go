package names_module

import (
	"github.com/ethanbaker/names/pkg/names"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the routes for the names module.
// writeMiddleware runs before handlers that store data
func RegisterRoutes(g *gin.RouterGroup, service *names.Service, writeMiddleware ...gin.HandlerFunc) {
	ctl := &controller{service: service}

	// The slash forms are served directly since a redirect carries no CORS headers
	create := append(append([]gin.HandlerFunc{}, writeMiddleware...), ctl.createName)

	group := g.Group("/names")
	for _, path := range []string{"", "/"} {
		group.GET(path, ctl.listNames)
		group.POST(path, create...)
	}
}
