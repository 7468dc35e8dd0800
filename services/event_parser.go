package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/webhook"
)

var (
	// ErrSignatureInvalid means the webhook body failed signature
	// verification and must not be trusted.
	ErrSignatureInvalid = errors.New("webhook signature invalid")
	// ErrMalformedPayload means the webhook body could not be parsed as an
	// event.
	ErrMalformedPayload = errors.New("webhook payload malformed")
)

// EventParser turns a raw webhook delivery into a Stripe event. The two
// implementations are chosen once at startup: signature verification when an
// endpoint secret is configured, plain JSON parsing otherwise.
type EventParser interface {
	Parse(payload []byte, sigHeader string) (stripe.Event, error)
}

type verifiedParser struct {
	secret string
}

// NewVerifiedParser returns an EventParser that rejects any delivery whose
// Stripe-Signature header does not match the endpoint secret.
func NewVerifiedParser(secret string) EventParser {
	return &verifiedParser{secret: secret}
}

func (p *verifiedParser) Parse(payload []byte, sigHeader string) (stripe.Event, error) {
	if sigHeader == "" {
		return stripe.Event{}, fmt.Errorf("%w: stripe-signature header missing", ErrSignatureInvalid)
	}
	event, err := webhook.ConstructEvent(payload, sigHeader, p.secret)
	if err != nil {
		return stripe.Event{}, fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}
	return event, nil
}

type unverifiedParser struct{}

// NewUnverifiedParser returns an EventParser that trusts the payload without
// an authenticity check. For local development only.
func NewUnverifiedParser() EventParser {
	return &unverifiedParser{}
}

func (p *unverifiedParser) Parse(payload []byte, _ string) (stripe.Event, error) {
	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return stripe.Event{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return event, nil
}
