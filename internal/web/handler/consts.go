// Package handler holds shared pieces of the resource handlers.
package handler

import (
	"errors"
)

const (
	// APIPrefix is the common prefix of all record store routes.
	APIPrefix = "/api"

	// ErrNilACDFatalLogMsg is used if the app, cfg or db pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)

// ErrNilDependency is returned by Init when a required dependency is nil.
var ErrNilDependency = errors.New("app, cfg or db is nil")

// SuccessResponse is the uniform body of mutating endpoints.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// IDResponse is the body returned by create endpoints. Only the assigned
// identity is returned, never the full row.
type IDResponse struct {
	ID uint64 `json:"id"`
}

// Success is the shared success body.
var Success = SuccessResponse{Success: true}
