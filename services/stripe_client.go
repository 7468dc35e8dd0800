package services

import (
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
)

// PaymentGateway creates payment intents with the upstream processor.
type PaymentGateway interface {
	CreatePaymentIntent(amount int64, currency string) (id, clientSecret string, err error)
}

type StripeService struct {
	SecretKey string
}

func NewStripeService(secretKey string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{SecretKey: secretKey}
}

// CreatePaymentIntent opens an intent for the given amount and returns the
// gateway-assigned id plus the client secret the browser needs to finish the
// card confirmation flow.
func (s *StripeService) CreatePaymentIntent(amount int64, currency string) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", "", err
	}
	return pi.ID, pi.ClientSecret, nil
}
