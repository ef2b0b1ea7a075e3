package wishlistControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HA2345567/buttonhaus/catalog"
	"github.com/HA2345567/buttonhaus/middleware"
	"github.com/HA2345567/buttonhaus/store"
)

type WishlistInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GET /user/wishlist
func GetWishlist(wishlist *store.WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":       wishlist.Items(userID),
			"total_items": wishlist.TotalItems(userID),
		})
	}
}

// POST /user/wishlist
func AddWishlistItem(wishlist *store.WishlistStore, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, found := cat.ByID(input.ProductID)
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		added := wishlist.Add(userID, product)
		c.JSON(http.StatusOK, gin.H{"added": added, "in_wishlist": true})
	}
}

// POST /user/wishlist/toggle
func ToggleWishlistItem(wishlist *store.WishlistStore, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, found := cat.ByID(input.ProductID)
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		inWishlist := wishlist.Toggle(userID, product)
		c.JSON(http.StatusOK, gin.H{"in_wishlist": inWishlist})
	}
}

// GET /user/wishlist/:product_id
func CheckWishlistItem(wishlist *store.WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"in_wishlist": wishlist.Contains(userID, c.Param("product_id"))})
	}
}

// DELETE /user/wishlist/:product_id
func RemoveWishlistItem(wishlist *store.WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if !wishlist.Remove(userID, c.Param("product_id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not in wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
	}
}

// DELETE /user/wishlist
func ClearWishlist(wishlist *store.WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		wishlist.Clear(userID)
		c.JSON(http.StatusOK, gin.H{"message": "Wishlist cleared"})
	}
}
