package checkoutControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
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

func testRouter(co *Coordinator, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/user/checkout/place", func(c *gin.Context) {
		c.Set("user_id", userID)
	}, co.PlaceOrder())
	return r
}

func placeOrder(t *testing.T, r *gin.Engine, body PlaceOrderRequest) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/user/checkout/place", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validCustomer() models.CustomerInfo {
	return models.CustomerInfo{
		Name:    "Asha Verma",
		Email:   "asha@example.com",
		Phone:   "(987) 654-3210",
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

func TestPlaceOrderSuccess(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore(true)
	seedCart(carts, "u1")

	co := NewCoordinator(carts, orders, testPolicy(), 0)
	r := testRouter(co, "u1")

	w := placeOrder(t, r, PlaceOrderRequest{CustomerInfo: validCustomer()})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Order   models.Order         `json:"order"`
		Summary pricing.DisplayQuote `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "u1", resp.Order.UserID)
	assert.Equal(t, models.OrderStatusProcessing, resp.Order.Status)
	assert.Equal(t, "36.65", resp.Summary.Total)

	assert.Empty(t, carts.Items("u1"), "cart clears after checkout")
	assert.Equal(t, 1, orders.Total())
}

func TestPlaceOrderValidationBlocksEverything(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore(true)
	seedCart(carts, "u1")

	co := NewCoordinator(carts, orders, testPolicy(), 0)
	r := testRouter(co, "u1")

	info := validCustomer()
	info.Phone = "12345"
	w := placeOrder(t, r, PlaceOrderRequest{CustomerInfo: info})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Phone number must be 10 digits")
	assert.Equal(t, 0, orders.Total(), "no order on validation failure")
	assert.Len(t, carts.Items("u1"), 1, "cart untouched on validation failure")
}

func TestPlaceOrderFieldMessages(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore(true)
	co := NewCoordinator(carts, orders, testPolicy(), 0)
	r := testRouter(co, "u1")

	cases := []struct {
		mutate  func(*models.CustomerInfo)
		message string
	}{
		{func(i *models.CustomerInfo) { i.Name = "" }, "Name is required"},
		{func(i *models.CustomerInfo) { i.Email = "not-an-email" }, "Enter a valid email address"},
		{func(i *models.CustomerInfo) { i.City = "" }, "City is required"},
		{func(i *models.CustomerInfo) { i.Pincode = "" }, "Pincode is required"},
	}
	for _, tc := range cases {
		info := validCustomer()
		tc.mutate(&info)
		w := placeOrder(t, r, PlaceOrderRequest{CustomerInfo: info})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), tc.message)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore(true)
	co := NewCoordinator(carts, orders, testPolicy(), 0)
	r := testRouter(co, "u1")

	w := placeOrder(t, r, PlaceOrderRequest{CustomerInfo: validCustomer()})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cart is empty")
}

func TestPlaceOrderInvalidPromo(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore(true)
	seedCart(carts, "u1")
	co := NewCoordinator(carts, orders, testPolicy(), 0)
	r := testRouter(co, "u1")

	w := placeOrder(t, r, PlaceOrderRequest{CustomerInfo: validCustomer(), PromoCode: "BOGUS"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid promo code")
	assert.Equal(t, 0, orders.Total())
	assert.Len(t, carts.Items("u1"), 1)
}

func TestPlaceOrderPromoCaseInsensitive(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore(true)
	seedCart(carts, "u1")
	co := NewCoordinator(carts, orders, testPolicy(), 0)
	r := testRouter(co, "u1")

	w := placeOrder(t, r, PlaceOrderRequest{CustomerInfo: validCustomer(), PromoCode: "  save10 "})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Summary pricing.DisplayQuote `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SAVE10", resp.Summary.PromoCode)
	assert.Equal(t, "2.60", resp.Summary.Discount)
}

func TestPlaceOrderReentrancyGuard(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore(true)
	seedCart(carts, "u1")

	// processing delay long enough for the second request to overlap
	co := NewCoordinator(carts, orders, testPolicy(), 150*time.Millisecond)
	r := testRouter(co, "u1")

	codes := make([]int, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func(i int) {
			defer wg.Done()
			w := placeOrder(t, r, PlaceOrderRequest{CustomerInfo: validCustomer()})
			codes[i] = w.Code
		}(i)
		time.Sleep(20 * time.Millisecond)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, codes)
	assert.Equal(t, 1, orders.Total(), "exactly one order despite double submit")
	assert.Empty(t, carts.Items("u1"))
}

func TestPlaceOrderGuardReleasesAfterCompletion(t *testing.T) {
	carts := store.NewCartStore()
	orders := store.NewOrderStore(true)
	co := NewCoordinator(carts, orders, testPolicy(), 0)
	r := testRouter(co, "u1")

	seedCart(carts, "u1")
	w := placeOrder(t, r, PlaceOrderRequest{CustomerInfo: validCustomer()})
	require.Equal(t, http.StatusCreated, w.Code)

	// a second, fresh checkout must go through
	seedCart(carts, "u1")
	w = placeOrder(t, r, PlaceOrderRequest{CustomerInfo: validCustomer()})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 2, orders.Total())
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "9876543210", NormalizePhone("(987) 654-3210"))
	assert.Equal(t, "9876543210", NormalizePhone("987-654-3210"))
	assert.Equal(t, "", NormalizePhone("abc"))
}
