package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradelog/internal/metrics"
	"tradelog/internal/report"
	"tradelog/internal/service"
)

type RecordsHandler struct {
	Analysis *service.AnalysisService
	Renderer report.Renderer
}

func (h *RecordsHandler) Register(r *gin.Engine) {
	r.GET("/api/v1/records", h.list)
}

// @Summary List enriched trade records, chronological
// @Tags records
// @Param symbol query string false "symbol filter"
// @Param side query string false "long|short"
// @Param category query string false "setup category filter"
// @Param outcome query string false "win|loss"
// @Param limit query int false "page size"
// @Param offset query int false "offset"
// @Success 200 {object} apiResponse
// @Router /api/v1/records [get]
func (h *RecordsHandler) list(c *gin.Context) {
	metrics.APIRequests.WithLabelValues("records").Inc()
	if h.Analysis == nil || !h.Analysis.Ready() {
		Error(c, http.StatusServiceUnavailable, "no snapshot loaded", nil)
		return
	}
	limit := intQuery(c, "limit", 100)
	if limit <= 0 {
		limit = 100
	}
	offset := intQuery(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	all := h.Analysis.FilteredRecords(filterFromQuery(c))
	total := len(all)

	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	Ok(c, report.RoundRecords(all[start:end], h.Renderer.Places()), paginationMeta(limit, offset, total))
}
