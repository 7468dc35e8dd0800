package controllers

import (
	"net/http"

	"github.com/jakaplan/zebra/models"
	"github.com/jakaplan/zebra/services"

	"github.com/gin-gonic/gin"
)

// CheckoutController handles the buyer-facing HTTP endpoints.
type CheckoutController struct {
	checkoutService services.CheckoutService
}

func NewCheckoutController(svc services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkoutService: svc}
}

// GetDeal handles GET /api/dotd
func (cc *CheckoutController) GetDeal(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, cc.checkoutService.Deal())
}

// BeginPayment handles POST /api/begin_payment
func (cc *CheckoutController) BeginPayment(ctx *gin.Context) {
	var req models.BeginPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	clientSecret, svcErr := cc.checkoutService.BeginPayment(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"client_secret": clientSecret})
}
