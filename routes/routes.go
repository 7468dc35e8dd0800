package routes

import (
	"github.com/jakaplan/zebra/controllers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up the checkout API and the webhook endpoint.
func RegisterRoutes(r *gin.Engine, cc *controllers.CheckoutController, wc *controllers.WebhookController) {
	api := r.Group("/api")
	api.GET("/dotd", cc.GetDeal)
	api.POST("/begin_payment", cc.BeginPayment)

	// Gateway-facing webhook (raw body, no auth)
	r.POST("/hooks", wc.HandleWebhook)

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
