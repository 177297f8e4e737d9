package sdk

import (
	"fmt"
	"strings"
)

/** Requests */

// CreateNameRequest is the body of POST /names. Either 'name' or 'value' may carry the text
type CreateNameRequest struct {
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// GetValue returns the submitted text, preferring 'value' over 'name'
func (r *CreateNameRequest) GetValue() string {
	if r.Value != "" {
		return r.Value
	}
	return r.Name
}

/** Responses */

// ErrorResponse is the body returned for every failed request
type ErrorResponse struct {
	Error  string `json:"error"`            // Short error category
	Detail string `json:"detail,omitempty"` // Underlying error message
}

// APIError is returned by the client when the server answers with a non-2xx status
type APIError struct {
	StatusCode int
	Response   ErrorResponse
	Body       []byte // Raw response body
}

func (e *APIError) Error() string {
	parts := []string{fmt.Sprintf("status %d", e.StatusCode)}
	if e.Response.Error != "" {
		parts = append(parts, e.Response.Error)
	}
	if e.Response.Detail != "" {
		parts = append(parts, e.Response.Detail)
	}
	return "[NAMES-API]: " + strings.Join(parts, ": ")
}
