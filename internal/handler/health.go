package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tradelog/internal/service"
)

type HealthHandler struct {
	Analysis *service.AnalysisService
}

func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", h.health)
	r.GET("/readyz", h.ready)
}

// @Summary Health check
// @Tags health
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Readiness check
// @Tags health
// @Success 200 {object} map[string]string
// @Router /readyz [get]
func (h *HealthHandler) ready(c *gin.Context) {
	if h.Analysis == nil || !h.Analysis.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "no_snapshot"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"loaded_at": h.Analysis.LoadedAt().Format(time.RFC3339),
	})
}
