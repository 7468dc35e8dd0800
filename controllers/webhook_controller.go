package controllers

import (
	"fmt"
	"net/http"

	"github.com/jakaplan/zebra/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookController receives asynchronous payment events from the gateway.
type WebhookController struct {
	reconciler *services.Reconciler
	logger     *zap.Logger
}

func NewWebhookController(reconciler *services.Reconciler, logger *zap.Logger) *WebhookController {
	return &WebhookController{reconciler: reconciler, logger: logger}
}

// HandleWebhook handles POST /hooks. Structurally valid events are always
// acknowledged with 200 so the gateway stops retrying; only signature or
// parse failures get a 400.
func (wc *WebhookController) HandleWebhook(ctx *gin.Context) {
	payload, err := ctx.GetRawData()
	if err != nil {
		ctx.String(http.StatusBadRequest, fmt.Sprintf("Webhook Error: %v", err))
		return
	}

	if err := wc.reconciler.HandleEvent(payload, ctx.GetHeader("Stripe-Signature")); err != nil {
		wc.logger.Warn("Rejected webhook delivery", zap.Error(err))
		ctx.String(http.StatusBadRequest, fmt.Sprintf("Webhook Error: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"received": true})
}
