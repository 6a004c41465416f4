package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/cosmic-rhythm/internal/domain/advisory"
	"github.com/yanqian/cosmic-rhythm/internal/domain/biorhythm"
	"github.com/yanqian/cosmic-rhythm/internal/domain/maya"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	biorhythmSvc biorhythm.Service
	mayaSvc      maya.Service
	dressSvc     advisory.Service
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(biorhythmSvc biorhythm.Service, mayaSvc maya.Service, dressSvc advisory.Service, logger *slog.Logger) *Handler {
	return &Handler{
		biorhythmSvc: biorhythmSvc,
		mayaSvc:      mayaSvc,
		dressSvc:     dressSvc,
		logger:       logger.With("component", "http.handler"),
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindQuery binds query parameters into dst, aborting with 400 on failure.
func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return false
	}
	return true
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
