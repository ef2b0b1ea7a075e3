package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/HA2345567/buttonhaus/middleware"
)

// SetupPaymentRoutes registers the hosted-payment endpoints. Only mounted
// when the service runs in hosted payment mode.
func SetupPaymentRoutes(r *gin.Engine, d Deps) {
	paymentGroup := r.Group("/payment")
	{
		paymentGroup.POST("/create-order", d.Payment.CreateOrderHandler()) // POST /payment/create-order

		// checkout needs the signed-in user's cart
		paymentGroup.POST("/checkout", middleware.ValidateToken(d.Config.JWTSecret), d.Payment.Checkout())

		// provider callback, signature-checked outside sandbox mode
		paymentGroup.POST("/callback",
			middleware.PaymentWebhookAuth(d.Config.PaymentWebhookSecret, d.Config.PaymentSandbox),
			d.Payment.Callback())
	}
}
