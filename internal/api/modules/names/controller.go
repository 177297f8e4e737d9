package names_module

import (
	"net/http"

	"github.com/ethanbaker/names/internal/metrics"
	"github.com/ethanbaker/names/pkg/names"
	"github.com/ethanbaker/names/pkg/sdk"
	"github.com/gin-gonic/gin"
)

type controller struct {
	service *names.Service
}

// listNames handles GET requests returning every stored name, newest first
func (ctl *controller) listNames(c *gin.Context) {
	list, err := ctl.service.ListNames(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// createName handles POST requests storing a new name
func (ctl *controller) createName(c *gin.Context) {
	// Parse request body
	var req sdk.CreateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	created, err := ctl.service.CreateName(c.Request.Context(), req.GetValue())
	if err != nil {
		c.Error(err)
		return
	}

	metrics.NamesCreated.Inc()
	c.JSON(http.StatusCreated, created)
}
