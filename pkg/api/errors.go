package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/services"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/tenant"
)

// errorResponse is the uniform error body.
type errorResponse struct {
	Error string `json:"error"`
}

// abortWithError writes a JSON error response and stops the handler chain.
func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		abortWithError(c, http.StatusBadRequest, validErr.Error())
	case errors.Is(err, services.ErrNotFound):
		abortWithError(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrAlreadyExists):
		abortWithError(c, http.StatusConflict, "resource already exists")
	case errors.Is(err, services.ErrInvalidTransition):
		abortWithError(c, http.StatusConflict, "investigation is not in a valid state for this operation")
	case errors.Is(err, services.ErrNotTerminal):
		abortWithError(c, http.StatusConflict, "investigation has not finished")
	case errors.Is(err, tenant.ErrNoTenant):
		abortWithError(c, http.StatusBadRequest, "tenant scope is required")
	default:
		slog.Error("Unexpected service error", "error", err)
		abortWithError(c, http.StatusInternalServerError, "internal server error")
	}
}
