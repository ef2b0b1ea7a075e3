package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/HA2345567/buttonhaus/auth"
	cartControllers "github.com/HA2345567/buttonhaus/controllers/cart"
	orderControllers "github.com/HA2345567/buttonhaus/controllers/order"
	productControllers "github.com/HA2345567/buttonhaus/controllers/product"
	wishlistControllers "github.com/HA2345567/buttonhaus/controllers/wishlist"
	"github.com/HA2345567/buttonhaus/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(d.Config.JWTSecret))
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/me", auth.CurrentUser(d.Sessions))     // GET /user/me
		userGroup.POST("/signout", auth.SignOut(d.Sessions))   // POST /user/signout

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(d.Carts))                     // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(d.Carts, d.Catalog))     // POST /user/cart
			cartGroup.PUT("/:item_id", cartControllers.UpdateCartItem(d.Carts))      // PUT /user/cart/:item_id
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(d.Carts))   // DELETE /user/cart/:item_id
			cartGroup.DELETE("/", cartControllers.ClearCart(d.Carts))                // DELETE /user/cart
			cartGroup.GET("/summary", cartControllers.CartSummary(d.Carts, d.Policy)) // GET /user/cart/summary?promo=
		}

		// ──────────────── Wishlist ────────────────
		wishGroup := userGroup.Group("/wishlist")
		{
			wishGroup.GET("/", wishlistControllers.GetWishlist(d.Wishlist))
			wishGroup.POST("/", wishlistControllers.AddWishlistItem(d.Wishlist, d.Catalog))
			wishGroup.POST("/toggle", wishlistControllers.ToggleWishlistItem(d.Wishlist, d.Catalog))
			wishGroup.GET("/:product_id", wishlistControllers.CheckWishlistItem(d.Wishlist))
			wishGroup.DELETE("/:product_id", wishlistControllers.RemoveWishlistItem(d.Wishlist))
			wishGroup.DELETE("/", wishlistControllers.ClearWishlist(d.Wishlist))
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productControllers.GetProducts(d.Catalog))        // GET /user/products
		userGroup.GET("/products/:id", productControllers.GetProductByID(d.Catalog)) // GET /user/products/:id
		userGroup.GET("/categories", productControllers.GetAllCategoriesWithProducts(d.Catalog))

		// ──────────────── Checkout + Orders ────────────────
		if d.Config.PaymentMode == "direct" {
			userGroup.POST("/checkout/place", d.Checkout.PlaceOrder()) // POST /user/checkout/place
		}
		userGroup.GET("/orders", orderControllers.GetUserOrders(d.Orders))
		userGroup.GET("/orders/:orderID", orderControllers.GetOrderByID(d.Orders))
	}
}
