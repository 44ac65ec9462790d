package api

import (
	"log/slog"
	"net/http"

	"storefront-cart/internal/handler/httperr"
	"storefront-cart/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	checker usecase.HealthChecker
}

func NewHealthHandler(checker usecase.HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// @Summary Health check
// @Description Liveness plus a ping of the snapshot storage
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} httperr.Response
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.checker.Check(c.Request.Context()); err != nil {
		slog.Warn("health check failed", "error", err)
		httperr.AbortWithError(c, httperr.StatusOf(err), err, "Service is unhealthy", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}
