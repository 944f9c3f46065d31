package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/domain"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/storage"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/auth"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/upload"
)

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger  *slog.Logger
	Storage *storage.Storage
	Tokens  *auth.TokenManager
	Uploads *upload.Store
}

// PortalHandler handles all job portal HTTP requests
type PortalHandler struct {
	logger  *slog.Logger
	storage *storage.Storage
	tokens  *auth.TokenManager
	uploads *upload.Store
}

// NewPortalHandler creates a new PortalHandler instance
func NewPortalHandler(deps *Dependencies) *PortalHandler {
	return &PortalHandler{
		logger:  deps.Logger,
		storage: deps.Storage,
		tokens:  deps.Tokens,
		uploads: deps.Uploads,
	}
}

// respondError maps a domain error onto the HTTP status line and a short
// message. Anything unrecognized is logged and collapsed to a generic 500.
func (h *PortalHandler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "Server error"

	switch {
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAlreadyApplied),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidStatus):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrApplicationNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, domain.ErrNotJobPoster),
		errors.Is(err, domain.ErrNotJobOwner):
		status = http.StatusForbidden
		msg = err.Error()
	case errors.Is(err, auth.ErrInvalidToken):
		status = http.StatusUnauthorized
		msg = err.Error()
	default:
		h.logger.Error("Unexpected error",
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err),
		)
	}

	c.JSON(status, gin.H{
		"error": msg,
	})
}
