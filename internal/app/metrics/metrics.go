package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics of the ledger. A nil *Metrics is valid and records nothing.
type Metrics struct {
	HTTPLatency         *prometheus.HistogramVec
	TransactionsCreated *prometheus.CounterVec
	Resolutions         *prometheus.CounterVec
	Refunds             prometheus.Counter
	Conflicts           *prometheus.CounterVec
}

// New creates metrics and registers them in reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_requests_latency_seconds",
				Help:    "Latency of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		TransactionsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_created_total",
				Help: "Total created transactions",
			},
			[]string{"type"}, // direct|transfer
		),
		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_resolutions_total",
				Help: "Total recorded resolutions",
			},
			[]string{"status"},
		),
		Refunds: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_refunds_total",
				Help: "Total refunded transactions",
			},
		),
		Conflicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_conflicts_total",
				Help: "Total writes rejected by a uniqueness constraint",
			},
			[]string{"operation"}, // resolve|refund
		),
	}

	reg.MustRegister(m.HTTPLatency, m.TransactionsCreated, m.Resolutions, m.Refunds, m.Conflicts)

	return m
}

func (m *Metrics) TransactionCreated(transfer bool) {
	if m == nil {
		return
	}
	kind := "direct"
	if transfer {
		kind = "transfer"
	}
	m.TransactionsCreated.WithLabelValues(kind).Inc()
}

func (m *Metrics) Resolved(status string) {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(status).Inc()
}

func (m *Metrics) Refunded() {
	if m == nil {
		return
	}
	m.Refunds.Inc()
}

func (m *Metrics) Conflict(operation string) {
	if m == nil {
		return
	}
	m.Conflicts.WithLabelValues(operation).Inc()
}
