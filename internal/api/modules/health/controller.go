package health

import (
	"net/http"

	"github.com/ethanbaker/names/pkg/names"
	"github.com/gin-gonic/gin"
)

type controller struct {
	store names.StoreInterface
}

// getStatus reports store connectivity. An unreachable store answers 500 with the same body shape
func (ctl *controller) getStatus(c *gin.Context) {
	status := names.CheckHealth(c.Request.Context(), ctl.store)

	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusInternalServerError
	}

	c.JSON(code, status)
}
