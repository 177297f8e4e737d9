package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/ethanbaker/names/pkg/names"
	"github.com/ethanbaker/names/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the context with c.Error into JSON responses.
// Handlers report failures by calling c.Error and returning without writing a body
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		status, resp := MapError(last)

		if status >= http.StatusInternalServerError {
			log.Printf("[API]: %s %s failed (request %s): %v", c.Request.Method, c.Request.URL.Path, GetRequestID(c), last.Err)
		}

		c.AbortWithStatusJSON(status, resp)
	}
}

// MapError converts an error into an HTTP status and response body
func MapError(err *gin.Error) (int, sdk.ErrorResponse) {
	if err.IsType(gin.ErrorTypeBind) {
		return http.StatusBadRequest, sdk.ErrorResponse{Error: "invalid request body", Detail: err.Err.Error()}
	}

	var validationErr *names.ValidationError
	if errors.As(err.Err, &validationErr) {
		return http.StatusBadRequest, sdk.ErrorResponse{Error: "validation failed", Detail: validationErr.Error()}
	}

	var storageErr *names.StorageError
	if errors.As(err.Err, &storageErr) {
		return http.StatusInternalServerError, sdk.ErrorResponse{Error: "storage failure", Detail: storageErr.Error()}
	}

	return http.StatusInternalServerError, sdk.ErrorResponse{Error: "internal error", Detail: err.Err.Error()}
}

// Recover turns a panic into a context error so ErrorHandler reports it like any other failure
func Recover(c *gin.Context, recovered any) {
	c.Error(fmt.Errorf("panic: %v", recovered))
	c.Abort()
}
