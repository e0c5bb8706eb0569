package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	IngestRuns     = prometheus.NewCounter(prometheus.CounterOpts{Name: "tradelog_ingest_runs_total", Help: "Completed ingest passes"})
	IngestFailures = prometheus.NewCounter(prometheus.CounterOpts{Name: "tradelog_ingest_failures_total", Help: "Ingest passes rejected by validation or I/O"})
	RecordsLoaded  = prometheus.NewGauge(prometheus.GaugeOpts{Name: "tradelog_records_loaded", Help: "Records in the current snapshot"})
	APIRequests    = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "tradelog_api_requests_total", Help: "API requests by route"}, []string{"route"})
)

func init() {
	prometheus.MustRegister(IngestRuns, IngestFailures, RecordsLoaded, APIRequests)
}
