package http

import (
	"github.com/VictoriaMetrics/metrics"
	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Transport metrics
// --------------------------------------------------------------------------

// inflightRequests counts exchanges the dispatch side has picked up but not
// yet resolved
var inflightRequests = xsync.NewCounter()

var (
	requestsTotal         = metrics.NewCounter("transport_requests_total")
	httpErrorsTotal       = metrics.NewCounter("transport_http_errors_total")
	droppedResponsesTotal = metrics.NewCounter("transport_dropped_responses_total")

	_ = metrics.NewGauge("transport_inflight_requests", func() float64 {
		return float64(inflightRequests.Value())
	})
)
