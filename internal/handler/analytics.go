package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tradelog/internal/metrics"
	"tradelog/internal/models"
	"tradelog/internal/report"
	"tradelog/internal/service"
)

type AnalyticsHandler struct {
	Analysis *service.AnalysisService
	Renderer report.Renderer
}

func (h *AnalyticsHandler) Register(r *gin.Engine) {
	group := r.Group("/api/v1")
	group.GET("/summary", h.summary)
	group.GET("/groups/:view", h.groups)
	group.GET("/report", h.report)
}

func filterFromQuery(c *gin.Context) service.Filter {
	return service.Filter{
		Symbol:   strQuery(c, "symbol"),
		Side:     strQuery(c, "side"),
		Category: strQuery(c, "category"),
		Outcome:  strQuery(c, "outcome"),
	}
}

// @Summary Summary stats, optionally over a filtered subset
// @Tags analytics
// @Param symbol query string false "symbol filter"
// @Param side query string false "long|short"
// @Param category query string false "setup category filter"
// @Param outcome query string false "win|loss"
// @Success 200 {object} apiResponse
// @Router /api/v1/summary [get]
func (h *AnalyticsHandler) summary(c *gin.Context) {
	metrics.APIRequests.WithLabelValues("summary").Inc()
	if h.Analysis == nil || !h.Analysis.Ready() {
		Error(c, http.StatusServiceUnavailable, "no snapshot loaded", nil)
		return
	}
	sum := h.Analysis.FilteredSummary(filterFromQuery(c))
	Ok(c, report.RoundSummary(sum, h.Renderer.Places()), nil)
}

// @Summary Grouped stats for one view
// @Tags analytics
// @Param view path string true "category|symbol|month"
// @Success 200 {object} apiResponse
// @Router /api/v1/groups/{view} [get]
func (h *AnalyticsHandler) groups(c *gin.Context) {
	metrics.APIRequests.WithLabelValues("groups").Inc()
	if h.Analysis == nil || !h.Analysis.Ready() {
		Error(c, http.StatusServiceUnavailable, "no snapshot loaded", nil)
		return
	}
	rep := h.Analysis.Snapshot()

	var groups []models.GroupStats
	switch view := c.Param("view"); view {
	case "category":
		groups = rep.ByCategory
	case "symbol":
		groups = rep.BySymbol
	case "month":
		groups = rep.ByMonth
	default:
		Error(c, http.StatusBadRequest, fmt.Sprintf("unknown view %q", view), nil)
		return
	}
	Ok(c, report.RoundGroups(groups, h.Renderer.Places()), nil)
}

// @Summary Full analysis report
// @Tags analytics
// @Success 200 {object} apiResponse
// @Router /api/v1/report [get]
func (h *AnalyticsHandler) report(c *gin.Context) {
	metrics.APIRequests.WithLabelValues("report").Inc()
	if h.Analysis == nil || !h.Analysis.Ready() {
		Error(c, http.StatusServiceUnavailable, "no snapshot loaded", nil)
		return
	}
	Ok(c, report.RoundReport(h.Analysis.Snapshot(), h.Renderer.Places()), nil)
}
