// Package routes wires every HTTP endpoint to its handler. Each surface
// gets its own Setup function, mirrored by file.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/HA2345567/buttonhaus/catalog"
	"github.com/HA2345567/buttonhaus/config"
	checkoutControllers "github.com/HA2345567/buttonhaus/controllers/checkout"
	orderControllers "github.com/HA2345567/buttonhaus/controllers/order"
	paymentControllers "github.com/HA2345567/buttonhaus/controllers/payment"
	"github.com/HA2345567/buttonhaus/pricing"
	"github.com/HA2345567/buttonhaus/store"
)

// Deps bundles everything the route tree needs. main builds one of these
// and hands it over.
type Deps struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Carts    *store.CartStore
	Wishlist *store.WishlistStore
	Orders   *store.OrderStore
	Sessions *store.AuthStore
	Policy   pricing.Policy
	Feed     *orderControllers.OrderFeed
	Checkout *checkoutControllers.Coordinator
	Payment  *paymentControllers.Coordinator
	Log      zerolog.Logger
}

// SetupRoutes registers all endpoint groups on the engine.
func SetupRoutes(r *gin.Engine, d Deps) {
	SetupAuthRoutes(r, d)
	SetupUserRoutes(r, d)
	SetupOrderRoutes(r, d)
	if d.Config.PaymentMode == "hosted" {
		SetupPaymentRoutes(r, d)
	}
}
