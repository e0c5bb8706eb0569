package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterDocs(r *gin.Engine) {
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/markdown; charset=utf-8")
		c.String(http.StatusOK, `# Trade Log Analytics API

Serves summary stats, grouped views, and enriched trade records computed
from a CSV trade log. The snapshot is loaded at startup and refreshed via
POST /api/v1/reload (or the optional cron refresh).

## Routes

- GET /healthz
- GET /readyz
- GET /metrics
- GET /api/v1/summary
- GET /api/v1/records
- GET /api/v1/groups/category
- GET /api/v1/groups/symbol
- GET /api/v1/groups/month
- GET /api/v1/report
- POST /api/v1/reload

## Filters

summary and records accept symbol, side (long|short), category, and
outcome (win|loss) query parameters. records also pages with limit
(default 100) and offset.

## Conventions

Responses use the {code, message, data, meta} envelope. Monetary values
are rounded to the configured precision. A payoff ratio with no losing
trades is serialized as the string "inf".
`)
	})
}
