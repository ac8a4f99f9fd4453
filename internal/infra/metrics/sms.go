package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(smsDispatchTotal, smsGatewayLatencyMs, auditWriteFailuresTotal)
}

var (
	smsDispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sms_dispatch_total",
			Help: "SMS dispatch attempts by outcome.",
		},
		[]string{"status"}, // 'sent', 'failed', 'invalid', 'not_configured'
	)

	smsGatewayLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sms_gateway_latency_ms",
			Help:    "SMS gateway round trip in milliseconds.",
			Buckets: []float64{25, 50, 100, 200, 400, 800, 1600, 3000, 5000, 10000},
		},
		[]string{"gateway", "success"},
	)

	auditWriteFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sms_audit_write_failures_total",
			Help: "SMS attempts whose audit record could not be written.",
		},
	)
)

func IncSMSDispatch(status string) {
	smsDispatchTotal.WithLabelValues(norm(status)).Inc()
}

func ObserveGateway(gateway string, elapsed time.Duration, success bool) {
	smsGatewayLatencyMs.WithLabelValues(norm(gateway), strconv.FormatBool(success)).
		Observe(float64(elapsed.Milliseconds()))
}

func IncAuditWriteFailure() {
	auditWriteFailuresTotal.Inc()
}
