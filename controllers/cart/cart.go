package cartControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HA2345567/buttonhaus/catalog"
	"github.com/HA2345567/buttonhaus/middleware"
	"github.com/HA2345567/buttonhaus/models"
	"github.com/HA2345567/buttonhaus/pricing"
	"github.com/HA2345567/buttonhaus/store"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// POST /user/cart
func AddCartItem(carts *store.CartStore, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, found := cat.ByID(input.ProductID)
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}
		if !product.InStock {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is out of stock"})
			return
		}

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}

		line := carts.AddItem(userID, models.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     image,
			Quantity:  input.Quantity,
			Color:     input.Color,
			Size:      input.Size,
		})
		c.JSON(http.StatusCreated, line)
	}
}

// GET /user/cart
func GetCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":       carts.Items(userID),
			"total_items": carts.TotalItems(userID),
			"total_price": carts.TotalPrice(userID).StringFixed(2),
		})
	}
}

// PUT /user/cart/:item_id
func UpdateCartItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		line, found := carts.UpdateQuantity(userID, c.Param("item_id"), input.Quantity)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, line)
	}
}

// DELETE /user/cart/:item_id
func DeleteCartItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if !carts.RemoveItem(userID, c.Param("item_id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		carts.Clear(userID)
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart/summary?promo=SAVE10
// Prices the cart through the pipeline; an unknown promo code is rejected
// without applying any discount.
func CartSummary(carts *store.CartStore, policy pricing.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		promo := strings.ToUpper(strings.TrimSpace(c.Query("promo")))
		items := carts.Items(userID)

		quote, err := pricing.Compute(items, promo, policy)
		if err != nil {
			if errors.Is(err, pricing.ErrInvalidPromo) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid promo code", "valid_codes": pricing.ValidCodes()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to price cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":       items,
			"total_items": carts.TotalItems(userID),
			"summary":     quote.Display(),
		})
	}
}
