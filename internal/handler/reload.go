package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tradelog/internal/ingest"
	"tradelog/internal/metrics"
	"tradelog/internal/service"
)

type ReloadHandler struct {
	Analysis *service.AnalysisService
	Logger   *zap.Logger
}

func (h *ReloadHandler) Register(r *gin.Engine) {
	r.POST("/api/v1/reload", h.reload)
}

// @Summary Re-read the trade log and swap the snapshot
// @Tags records
// @Success 200 {object} apiResponse
// @Router /api/v1/reload [post]
func (h *ReloadHandler) reload(c *gin.Context) {
	metrics.APIRequests.WithLabelValues("reload").Inc()
	if h.Analysis == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	if err := h.Analysis.Reload(c.Request.Context()); err != nil {
		if h.Logger != nil {
			h.Logger.Warn("reload via api failed", zap.Error(err))
		}
		var verr *ingest.ValidationError
		if errors.As(err, &verr) {
			Error(c, http.StatusUnprocessableEntity, err.Error(), map[string]any{
				"row":   verr.Row,
				"field": verr.Field,
			})
			return
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	rep := h.Analysis.Snapshot()
	Ok(c, gin.H{
		"records":   len(rep.Records),
		"loaded_at": h.Analysis.LoadedAt().Format(time.RFC3339),
	}, nil)
}
