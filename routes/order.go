package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/HA2345567/buttonhaus/controllers/order"
	"github.com/HA2345567/buttonhaus/middleware"
)

// SetupOrderRoutes registers the admin "/orders/*" endpoints (API key
// protected) and the public websocket order feed.
func SetupOrderRoutes(r *gin.Engine, d Deps) {
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.ValidateAPIKey(d.Config.AdminAPIKey))
	{
		orderGroup.GET("/", orderControllers.GetAllOrders(d.Orders))                     // GET /orders
		orderGroup.GET("/stats", orderControllers.GetOrderStats(d.Orders))               // GET /orders/stats
		orderGroup.GET("/export", orderControllers.ExportOrdersToExcel(d.Orders))        // GET /orders/export
		orderGroup.PUT("/:orderID/status", orderControllers.UpdateOrderStatus(d.Orders)) // PUT /orders/:orderID/status
		orderGroup.PUT("/:orderID/tracking", orderControllers.UpdateTracking(d.Orders))  // PUT /orders/:orderID/tracking
	}

	r.GET("/orders/ws", d.Feed.Handler()) // GET /orders/ws
}
