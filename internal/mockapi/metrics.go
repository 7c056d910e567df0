package mockapi

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 記錄 Adapter 的請求數與耗時。nil 的 *Metrics 可安全使用。
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics 建立並註冊 collectors
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mockapi",
				Name:      "requests_total",
				Help:      "Total number of mock API requests by route and status.",
			},
			[]string{"route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "mockapi",
				Name:      "request_duration_seconds",
				Help:      "Duration of mock API requests.",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12), // 0.1ms to ~200ms
			},
			[]string{"route"},
		),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

func (m *Metrics) observe(route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}
