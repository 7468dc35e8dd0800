package models

import "time"

// TransactionRecord holds the buyer and order details for a single checkout.
// It is created when a payment intent is opened and is immutable afterwards;
// on webhook confirmation it becomes the row appended to the transaction log.
type TransactionRecord struct {
	IntentID  string    `json:"intent_id"`
	CreatedAt time.Time `json:"created_at"`
	Product   string    `json:"product"`
	Price     int64     `json:"price"` // smallest currency unit
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
}

// BeginPaymentRequest is the billing info the client submits before the
// card-entry step. Card details never reach this service.
type BeginPaymentRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
}
