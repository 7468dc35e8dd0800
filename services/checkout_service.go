package services

import (
	"context"
	"net/http"
	"time"

	"github.com/jakaplan/zebra/metrics"
	"github.com/jakaplan/zebra/models"
	"github.com/jakaplan/zebra/repository"

	"go.uber.org/zap"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// CheckoutService defines the buyer-facing business logic.
type CheckoutService interface {
	Deal() models.Deal
	BeginPayment(ctx context.Context, req *models.BeginPaymentRequest) (clientSecret string, svcErr *ServiceError)
}

type checkoutServiceImpl struct {
	gateway PaymentGateway
	store   repository.PendingStore
	deal    models.Deal
	logger  *zap.Logger
}

// NewCheckoutService creates a CheckoutService selling the given deal.
func NewCheckoutService(
	gateway PaymentGateway,
	store repository.PendingStore,
	deal models.Deal,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		gateway: gateway,
		store:   store,
		deal:    deal,
		logger:  logger,
	}
}

func (s *checkoutServiceImpl) Deal() models.Deal {
	return s.deal
}

// BeginPayment opens a payment intent for the deal and caches the buyer's
// details keyed by the new intent id. The pending record is only written
// after the gateway call succeeds, so a gateway failure leaves the store
// untouched and the client can safely retry.
func (s *checkoutServiceImpl) BeginPayment(ctx context.Context, req *models.BeginPaymentRequest) (string, *ServiceError) {
	intentID, clientSecret, err := s.gateway.CreatePaymentIntent(s.deal.Price, s.deal.Currency)
	if err != nil {
		s.logger.Error("Failed to create payment intent", zap.Error(err))
		return "", &ServiceError{StatusCode: http.StatusBadGateway, Message: "Failed to begin payment with gateway"}
	}

	s.store.Put(intentID, models.TransactionRecord{
		IntentID:  intentID,
		CreatedAt: time.Now(),
		Product:   s.deal.Name,
		Price:     s.deal.Price,
		Name:      req.Name,
		Email:     req.Email,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
	})

	metrics.CheckoutsStarted.Inc()
	s.logger.Info("Client has begun payment flow", zap.String("intent_id", intentID))

	return clientSecret, nil
}
