package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the checkout lifecycle. LogWriteFailures is the
// operator-visible signal for payments that succeeded but could not be
// recorded to the transaction log.
var (
	CheckoutsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "zebra_checkouts_started_total",
		Help: "Payment intents created via /api/begin_payment.",
	})

	WebhooksReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zebra_webhooks_received_total",
		Help: "Webhook deliveries by event type.",
	}, []string{"event_type"})

	WebhooksRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "zebra_webhooks_rejected_total",
		Help: "Webhook deliveries rejected for bad signature or malformed payload.",
	})

	TransactionsFinalized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "zebra_transactions_finalized_total",
		Help: "Completed payments appended to the transaction log.",
	})

	PendingExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "zebra_pending_expired_total",
		Help: "Abandoned checkouts evicted by the expiry sweep.",
	})

	LogWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "zebra_log_write_failures_total",
		Help: "Transaction log appends that failed after a confirmed payment.",
	})
)
