package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Rejection reasons for TransactionsRejected.
const (
	ReasonUnbalanced  = "unbalanced"
	ReasonAccountPath = "account_path"
	ReasonOther       = "other"
)

// Tip accrual actions for TipAccruals.
const (
	ActionAccrued  = "accrued"
	ActionReversed = "reversed"
	ActionSkipped  = "skipped"
)

var (
	TransactionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vestat",
		Subsystem: "ledger",
		Name:      "transactions_created_total",
		Help:      "Ledger transactions persisted.",
	})

	TransactionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vestat",
		Subsystem: "ledger",
		Name:      "transactions_rejected_total",
		Help:      "Ledger transactions rejected by validation.",
	}, []string{"reason"})

	TransactionsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vestat",
		Subsystem: "ledger",
		Name:      "transactions_deleted_total",
		Help:      "Ledger transactions removed.",
	})

	TipAccruals = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vestat",
		Subsystem: "tip",
		Name:      "accruals_total",
		Help:      "Tip accrual transitions by action.",
	}, []string{"action"})

	EventsPublishFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vestat",
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Ledger events that could not be published.",
	})
)

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
