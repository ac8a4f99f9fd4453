package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(telegramBroadcastSendsTotal, telegramBroadcastsTotal) }

// The event category is caller-supplied, so it stays out of the label set.
var (
	telegramBroadcastSendsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_broadcast_sends_total",
			Help: "Per-subscriber Telegram sends, labeled by result.",
		},
		[]string{"result"}, // sent|failed
	)

	telegramBroadcastsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "telegram_broadcasts_total",
			Help: "Telegram broadcasts that reached the fan-out stage.",
		},
	)
)

func ObserveBroadcast(sent, failed int) {
	telegramBroadcastsTotal.Inc()
	telegramBroadcastSendsTotal.WithLabelValues("sent").Add(float64(sent))
	telegramBroadcastSendsTotal.WithLabelValues("failed").Add(float64(failed))
}
