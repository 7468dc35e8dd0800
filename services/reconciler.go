package services

import (
	"encoding/json"
	"fmt"

	"github.com/jakaplan/zebra/metrics"
	"github.com/jakaplan/zebra/repository"

	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

// Reconciler correlates inbound webhook events against the pending store and
// finalizes at most one transaction log entry per successful payment. It
// tolerates duplicate and out-of-order delivery: any event for an intent that
// is unknown, expired, or already finalized is acknowledged as a no-op.
type Reconciler struct {
	parser EventParser
	store  repository.PendingStore
	log    repository.TransactionLog
	logger *zap.Logger
}

func NewReconciler(
	parser EventParser,
	store repository.PendingStore,
	log repository.TransactionLog,
	logger *zap.Logger,
) *Reconciler {
	return &Reconciler{
		parser: parser,
		store:  store,
		log:    log,
		logger: logger,
	}
}

// HandleEvent processes one raw webhook delivery. A non-nil error means the
// delivery was structurally invalid (ErrSignatureInvalid or
// ErrMalformedPayload) and no state was mutated; everything else, including
// no-ops, returns nil so the HTTP boundary acknowledges receipt and stops
// upstream retries.
func (r *Reconciler) HandleEvent(payload []byte, sigHeader string) error {
	event, err := r.parser.Parse(payload, sigHeader)
	if err != nil {
		metrics.WebhooksRejected.Inc()
		return err
	}

	metrics.WebhooksReceived.WithLabelValues(string(event.Type)).Inc()

	if event.Type != "payment_intent.succeeded" {
		// Forward-compatible: unrecognized types are acknowledged untouched.
		r.logger.Info("Ignoring webhook event", zap.String("event_type", string(event.Type)))
		return nil
	}

	if event.Data == nil {
		return fmt.Errorf("%w: event has no data object", ErrMalformedPayload)
	}

	// The data object of a payment_intent event carries the same id the
	// intent was created with.
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if pi.ID == "" {
		return fmt.Errorf("%w: event data object has no id", ErrMalformedPayload)
	}

	rec, ok := r.store.Take(pi.ID)
	if !ok {
		// Already finalized, expired, or never ours. Expected under
		// duplicate delivery, so acknowledge without complaint.
		r.logger.Warn("Unexpected transaction received", zap.String("intent_id", pi.ID))
		return nil
	}

	if err := r.log.Append(rec); err != nil {
		// The payment did succeed; losing the record is a known gap.
		// Surface it to operators, but still acknowledge the delivery.
		metrics.LogWriteFailures.Inc()
		r.logger.Error("Failed to record completed transaction",
			zap.String("intent_id", pi.ID),
			zap.Error(err),
		)
		return nil
	}

	metrics.TransactionsFinalized.Inc()
	r.logger.Info("Transaction successfully completed", zap.String("intent_id", pi.ID))
	return nil
}
