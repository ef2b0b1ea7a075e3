// Package checkoutControllers implements the direct ("cash on delivery"
// style) checkout flow: validate, price, create the order, clear the cart.
package checkoutControllers

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HA2345567/buttonhaus/middleware"
	"github.com/HA2345567/buttonhaus/models"
	"github.com/HA2345567/buttonhaus/pricing"
	"github.com/HA2345567/buttonhaus/store"
)

type PlaceOrderRequest struct {
	CustomerInfo models.CustomerInfo `json:"customer_info" binding:"required"`
	PromoCode    string              `json:"promo_code"`
}

// Coordinator runs checkouts. A per-user reentrancy guard makes sure a
// second submission while one is in flight can never create a second order.
type Coordinator struct {
	carts  *store.CartStore
	orders *store.OrderStore
	policy pricing.Policy
	delay  time.Duration

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewCoordinator(carts *store.CartStore, orders *store.OrderStore, policy pricing.Policy, delay time.Duration) *Coordinator {
	return &Coordinator{
		carts:    carts,
		orders:   orders,
		policy:   policy,
		delay:    delay,
		inFlight: make(map[string]bool),
	}
}

// begin claims the user's checkout slot. Returns false if one is in flight.
func (co *Coordinator) begin(userID string) bool {
	co.mu.Lock()
	defer co.mu.Unlock()
	if co.inFlight[userID] {
		return false
	}
	co.inFlight[userID] = true
	return true
}

func (co *Coordinator) end(userID string) {
	co.mu.Lock()
	delete(co.inFlight, userID)
	co.mu.Unlock()
}

// POST /user/checkout/place
func (co *Coordinator) PlaceOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Validation failures block everything: no order, no delay.
		if fieldErr := ValidateCustomerInfo(req.CustomerInfo); fieldErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fieldErr.Message, "field": fieldErr.Field})
			return
		}

		if !co.begin(userID) {
			c.JSON(http.StatusConflict, gin.H{"error": "Checkout already in progress"})
			return
		}
		// The guard must release on every exit path, panics included.
		defer co.end(userID)

		items := co.carts.Items(userID)
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		promo := strings.ToUpper(strings.TrimSpace(req.PromoCode))
		quote, err := pricing.Compute(items, promo, co.policy)
		if err != nil {
			if errors.Is(err, pricing.ErrInvalidPromo) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid promo code"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to price cart"})
			return
		}

		// Simulated payment-processing delay.
		time.Sleep(co.delay)

		order := co.orders.Add(userID, items, quote.Total, req.CustomerInfo)
		co.carts.Clear(userID)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"order":   order,
			"summary": quote.Display(),
		})
	}
}
