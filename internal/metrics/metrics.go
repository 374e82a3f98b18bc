// Package metrics holds the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resiq"

// Metrics groups the collectors registered for one server.
type Metrics struct {
	RPCRequests     *prometheus.CounterVec
	RPCDuration     *prometheus.HistogramVec
	SettlementMarks *prometheus.CounterVec
	PayoutRequests  *prometheus.CounterVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RPCRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		SettlementMarks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_marks_total",
			Help:      "Settlements marked completed, by settlement type.",
		}, []string{"settlement_type"}),
		PayoutRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payout_requests_total",
			Help:      "Payout requests by outcome.",
		}, []string{"outcome"}),
	}
}

// ObserveMark counts a successful settlement mark.
func (m *Metrics) ObserveMark(settlementType string) {
	if m == nil {
		return
	}
	m.SettlementMarks.WithLabelValues(settlementType).Inc()
}

// ObservePayout counts a payout request outcome such as "created" or "rejected".
func (m *Metrics) ObservePayout(outcome string) {
	if m == nil {
		return
	}
	m.PayoutRequests.WithLabelValues(outcome).Inc()
}
