package paymentControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HA2345567/buttonhaus/models"
	"github.com/HA2345567/buttonhaus/pricing"
	"github.com/HA2345567/buttonhaus/store"
)

func testPolicy() pricing.Policy {
	return pricing.Policy{
		FreeShippingThreshold: decimal.RequireFromString("50"),
		ShippingFlatFee:       decimal.RequireFromString("5.99"),
		TaxRate:               decimal.RequireFromString("0.18"),
	}
}

// unreachableClient forces the synthesized-order fallback.
func unreachableClient() *Client {
	return NewClient("http://127.0.0.1:1/orders", "rzp_test_key", "secret")
}

func testCoordinator(carts *store.CartStore, orders *store.OrderStore) *Coordinator {
	return NewCoordinator(carts, orders, unreachableClient(), testPolicy(),
		"rzp_test_key", "INR", 15*time.Minute, zerolog.Nop())
}

func testRouter(co *Coordinator, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	withUser := func(c *gin.Context) { c.Set("user_id", userID) }
	r.POST("/payment/create-order", co.CreateOrderHandler())
	r.POST("/payment/checkout", withUser, co.Checkout())
	r.POST("/payment/callback", co.Callback())
	return r
}

func post(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validCustomer() models.CustomerInfo {
	return models.CustomerInfo{
		Name:    "Asha Verma",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Address: "12 Tailor Lane",
		City:    "Pune",
		Pincode: "411001",
	}
}

func seedCart(carts *store.CartStore, userID string) {
	carts.AddItem(userID, models.CartItem{
		ProductID: "prod-1",
		Name:      "Classic Metal Button Set",
		Price:     decimal.RequireFromString("12.99"),
		Quantity:  2,
	})
}

func TestCreateOrderSynthesizedFallback(t *testing.T) {
	co := testCoordinator(store.NewCartStore(), store.NewOrderStore(true))
	r := testRouter(co, "u1")

	w := post(t, r, "/payment/create-order", CreateOrderRequest{Amount: decimal.RequireFromString("36.65")})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var order ProviderOrder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Regexp(t, `^order_\d+_[0-9a-z]{9}$`, order.ID)
	assert.Equal(t, int64(3665), order.Amount, "amount converts to minor units")
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "created", order.Status)
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	co := testCoordinator(store.NewCartStore(), store.NewOrderStore(true))
	r := testRouter(co, "u1")

	w := post(t, r, "/payment/create-order", CreateOrderRequest{Amount: decimal.Zero})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(t, r, "/payment/create-order", CreateOrderRequest{Amount: decimal.RequireFromString("-5")})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHostedCheckoutHandshake(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore(true)
	seedCart(carts, "u1")
	co := testCoordinator(carts, orders)
	r := testRouter(co, "u1")

	w := post(t, r, "/payment/checkout", HostedCheckoutRequest{CustomerInfo: validCustomer()})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Checkout CheckoutOptions      `json:"checkout"`
		Summary  pricing.DisplayQuote `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "rzp_test_key", resp.Checkout.Key)
	assert.Equal(t, "ButtonHaus", resp.Checkout.Name)
	assert.Equal(t, "Payment for 2 items", resp.Checkout.Description)
	assert.Equal(t, int64(3665), resp.Checkout.Amount)
	assert.NotEmpty(t, resp.Checkout.OrderID)
	assert.Equal(t, "asha@example.com", resp.Checkout.Prefill.Email)
	assert.Equal(t, "36.65", resp.Summary.Total)

	// the cart stays intact until the provider confirms payment
	assert.Len(t, carts.Items("u1"), 1)
	assert.Equal(t, 0, orders.Total())
}

func TestHostedCheckoutValidationBlocksPending(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore(true)
	seedCart(carts, "u1")
	co := testCoordinator(carts, orders)
	r := testRouter(co, "u1")

	info := validCustomer()
	info.Email = "nope"
	w := post(t, r, "/payment/checkout", HostedCheckoutRequest{CustomerInfo: info})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// no pending entry was registered, a valid retry goes straight through
	w = post(t, r, "/payment/checkout", HostedCheckoutRequest{CustomerInfo: validCustomer()})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestHostedCheckoutRejectsSecondAttempt(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore(true)
	seedCart(carts, "u1")
	co := testCoordinator(carts, orders)
	r := testRouter(co, "u1")

	w := post(t, r, "/payment/checkout", HostedCheckoutRequest{CustomerInfo: validCustomer()})
	require.Equal(t, http.StatusOK, w.Code)

	w = post(t, r, "/payment/checkout", HostedCheckoutRequest{CustomerInfo: validCustomer()})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHostedCheckoutEmptyCart(t *testing.T) {
	co := testCoordinator(store.NewCartStore(), store.NewOrderStore(true))
	r := testRouter(co, "u1")

	w := post(t, r, "/payment/checkout", HostedCheckoutRequest{CustomerInfo: validCustomer()})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cart is empty")
}

func checkoutOrderID(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := post(t, r, "/payment/checkout", HostedCheckoutRequest{CustomerInfo: validCustomer()})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Checkout CheckoutOptions `json:"checkout"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Checkout.OrderID
}

func TestCallbackSuccessPlacesOrder(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore(true)
	seedCart(carts, "u1")
	co := testCoordinator(carts, orders)
	r := testRouter(co, "u1")

	orderID := checkoutOrderID(t, r)
	w := post(t, r, "/payment/callback", CallbackRequest{
		OrderID:   orderID,
		Event:     "payment.success",
		PaymentID: "pay_123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, 1, orders.Total())
	assert.Empty(t, carts.Items("u1"), "cart clears on confirmed payment")

	placed := orders.All()[0]
	assert.Equal(t, "u1", placed.UserID)
	assert.Equal(t, models.OrderStatusProcessing, placed.Status)
}

func TestCallbackDismissedReleasesCheckout(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore(true)
	seedCart(carts, "u1")
	co := testCoordinator(carts, orders)
	r := testRouter(co, "u1")

	orderID := checkoutOrderID(t, r)
	w := post(t, r, "/payment/callback", CallbackRequest{OrderID: orderID, Event: "payment.dismissed"})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 0, orders.Total(), "no order on dismissal")
	assert.Len(t, carts.Items("u1"), 1, "cart survives dismissal")

	// the guard released, checkout can start over
	w = post(t, r, "/payment/checkout", HostedCheckoutRequest{CustomerInfo: validCustomer()})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCallbackUnknownOrder(t *testing.T) {
	co := testCoordinator(store.NewCartStore(), store.NewOrderStore(true))
	r := testRouter(co, "u1")

	w := post(t, r, "/payment/callback", CallbackRequest{OrderID: "order_0_aaaaaaaaa", Event: "payment.success"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCallbackUnknownEventKeepsPending(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore(true)
	seedCart(carts, "u1")
	co := testCoordinator(carts, orders)
	r := testRouter(co, "u1")

	orderID := checkoutOrderID(t, r)
	w := post(t, r, "/payment/callback", CallbackRequest{OrderID: orderID, Event: "payment.exploded"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// the live checkout was not consumed, success still lands
	w = post(t, r, "/payment/callback", CallbackRequest{OrderID: orderID, Event: "payment.success"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, orders.Total())
}

func TestPendingCheckoutExpires(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore(true)
	seedCart(carts, "u1")
	co := testCoordinator(carts, orders)
	r := testRouter(co, "u1")

	orderID := checkoutOrderID(t, r)

	// jump the clock past the TTL
	co.now = func() time.Time { return time.Now().Add(16 * time.Minute) }

	w := post(t, r, "/payment/callback", CallbackRequest{OrderID: orderID, Event: "payment.success"})
	assert.Equal(t, http.StatusNotFound, w.Code, "expired checkout cannot be completed")
	assert.Equal(t, 0, orders.Total())

	// the user slot freed up with the expiry
	w = post(t, r, "/payment/checkout", HostedCheckoutRequest{CustomerInfo: validCustomer()})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(3665), toMinorUnits(decimal.RequireFromString("36.65")))
	assert.Equal(t, int64(3665), toMinorUnits(decimal.RequireFromString("36.6464")))
	assert.Equal(t, int64(100), toMinorUnits(decimal.NewFromInt(1)))
}
