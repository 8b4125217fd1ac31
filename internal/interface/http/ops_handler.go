package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/warungkode/accounts-backend/pkg/response"
)

// Pinger is the connectivity probe the health endpoint needs.
// Satisfied by pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// OpsHandler serves operational endpoints.
type OpsHandler struct {
	DB     Pinger
	Logger *logrus.Logger
}

func NewOpsHandler(db Pinger, logger *logrus.Logger) *OpsHandler {
	return &OpsHandler{DB: db, Logger: logger}
}

// Healthz handles GET /api/healthz with a bounded database ping.
func (h *OpsHandler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		h.Logger.WithError(err).Warn("health check: database unreachable")
		response.Error(c, http.StatusServiceUnavailable, "database unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, "ok", nil)
}
