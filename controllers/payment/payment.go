// Package paymentControllers implements the hosted-payment checkout flow:
// the provider order endpoint, the checkout-options handshake and the
// webhook callback that finally places the order.
package paymentControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	checkoutControllers "github.com/HA2345567/buttonhaus/controllers/checkout"
	"github.com/HA2345567/buttonhaus/middleware"
	"github.com/HA2345567/buttonhaus/models"
	"github.com/HA2345567/buttonhaus/pricing"
	"github.com/HA2345567/buttonhaus/store"
)

// CheckoutOptions is the payload the storefront feeds to the hosted payment
// SDK. Amount is in minor units.
type CheckoutOptions struct {
	Key         string `json:"key"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OrderID     string `json:"order_id"`
	Prefill     struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Contact string `json:"contact"`
	} `json:"prefill"`
	Notes struct {
		Address string `json:"address"`
	} `json:"notes"`
	Theme struct {
		Color string `json:"color"`
	} `json:"theme"`
}

// pendingCheckout is the cart snapshot parked between the handshake and the
// provider's callback.
type pendingCheckout struct {
	userID    string
	items     []models.CartItem
	quote     pricing.Quote
	info      models.CustomerInfo
	createdAt time.Time
}

// Coordinator drives the hosted flow. A user has at most one live pending
// checkout; stale ones expire after the configured TTL so the guard can
// never stay engaged when a callback is lost.
type Coordinator struct {
	carts    *store.CartStore
	orders   *store.OrderStore
	client   *Client
	policy   pricing.Policy
	keyID    string
	currency string
	ttl      time.Duration
	log      zerolog.Logger

	mu            sync.Mutex
	pending       map[string]pendingCheckout // keyed by provider order id
	pendingByUser map[string]string
	now           func() time.Time
}

func NewCoordinator(carts *store.CartStore, orders *store.OrderStore, client *Client, policy pricing.Policy, keyID, currency string, ttl time.Duration, log zerolog.Logger) *Coordinator {
	return &Coordinator{
		carts:         carts,
		orders:        orders,
		client:        client,
		policy:        policy,
		keyID:         keyID,
		currency:      currency,
		ttl:           ttl,
		log:           log,
		pending:       make(map[string]pendingCheckout),
		pendingByUser: make(map[string]string),
		now:           time.Now,
	}
}

// purgeExpiredLocked drops pending checkouts older than the TTL.
func (co *Coordinator) purgeExpiredLocked() {
	cutoff := co.now().Add(-co.ttl)
	for id, p := range co.pending {
		if p.createdAt.Before(cutoff) {
			delete(co.pending, id)
			delete(co.pendingByUser, p.userID)
		}
	}
}

type CreateOrderRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// POST /payment/create-order
// Accepts an amount in major currency units. On provider failure the order
// is synthesized locally so the response shape never changes.
func (co *Coordinator) CreateOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}
		if !req.Amount.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
			return
		}
		currency := req.Currency
		if currency == "" {
			currency = co.currency
		}

		order, err := co.client.CreateOrder(req.Amount, currency, "")
		if err != nil {
			co.log.Warn().Err(err).Msg("provider order creation failed, synthesizing locally")
			order = SynthesizeOrder(req.Amount, currency, "")
		}
		c.JSON(http.StatusOK, order)
	}
}

type HostedCheckoutRequest struct {
	CustomerInfo models.CustomerInfo `json:"customer_info" binding:"required"`
	PromoCode    string              `json:"promo_code"`
}

// POST /payment/checkout
// Validates, prices the cart, registers a provider order and returns the
// options payload for the hosted payment UI. The cart is left untouched
// until the provider confirms payment.
func (co *Coordinator) Checkout() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req HostedCheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if fieldErr := checkoutControllers.ValidateCustomerInfo(req.CustomerInfo); fieldErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fieldErr.Message, "field": fieldErr.Field})
			return
		}

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

		co.mu.Lock()
		co.purgeExpiredLocked()
		if _, busy := co.pendingByUser[userID]; busy {
			co.mu.Unlock()
			c.JSON(http.StatusConflict, gin.H{"error": "Checkout already in progress"})
			return
		}
		co.mu.Unlock()

		order, err := co.client.CreateOrder(quote.Total, co.currency, "")
		if err != nil {
			co.log.Warn().Err(err).Msg("provider order creation failed, synthesizing locally")
			order = SynthesizeOrder(quote.Total, co.currency, "")
		}

		co.mu.Lock()
		// re-check: a parallel request may have won the slot meanwhile
		if _, busy := co.pendingByUser[userID]; busy {
			co.mu.Unlock()
			c.JSON(http.StatusConflict, gin.H{"error": "Checkout already in progress"})
			return
		}
		co.pending[order.ID] = pendingCheckout{
			userID:    userID,
			items:     items,
			quote:     quote,
			info:      req.CustomerInfo,
			createdAt: co.now(),
		}
		co.pendingByUser[userID] = order.ID
		co.mu.Unlock()

		totalItems := 0
		for _, item := range items {
			totalItems += item.Quantity
		}

		opts := CheckoutOptions{
			Key:         co.keyID,
			Amount:      order.Amount,
			Currency:    order.Currency,
			Name:        "ButtonHaus",
			Description: fmt.Sprintf("Payment for %d items", totalItems),
			OrderID:     order.ID,
		}
		opts.Prefill.Name = req.CustomerInfo.Name
		opts.Prefill.Email = req.CustomerInfo.Email
		opts.Prefill.Contact = checkoutControllers.NormalizePhone(req.CustomerInfo.Phone)
		opts.Notes.Address = req.CustomerInfo.Address
		opts.Theme.Color = "#000000"

		c.JSON(http.StatusOK, gin.H{"checkout": opts, "summary": quote.Display()})
	}
}

type CallbackRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	Event     string `json:"event" binding:"required"` // payment.success | payment.failed | payment.dismissed
	PaymentID string `json:"payment_id"`
}

// POST /payment/callback
// The provider reports the payment outcome here. Success places the order
// and clears the cart; failure and user dismissal release the pending
// checkout without touching cart or order state.
func (co *Coordinator) Callback() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CallbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}

		switch req.Event {
		case "payment.success", "payment.failed", "payment.dismissed":
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown event: " + req.Event})
			return
		}

		co.mu.Lock()
		co.purgeExpiredLocked()
		pending, found := co.pending[req.OrderID]
		if found {
			delete(co.pending, req.OrderID)
			delete(co.pendingByUser, pending.userID)
		}
		co.mu.Unlock()

		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown or expired checkout"})
			return
		}

		switch req.Event {
		case "payment.success":
			order := co.orders.Add(pending.userID, pending.items, pending.quote.Total, pending.info)
			co.carts.Clear(pending.userID)
			c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "order": order})

		case "payment.failed":
			co.log.Info().Str("order_id", req.OrderID).Msg("payment failed, checkout released")
			c.JSON(http.StatusOK, gin.H{"message": "Payment not successful", "status": "failed"})

		case "payment.dismissed":
			// user closed the payment UI; informational, not an error
			c.JSON(http.StatusOK, gin.H{"message": "Payment cancelled by user", "status": "cancelled"})
		}
	}
}
