package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HA2345567/buttonhaus/models"
)

func testPolicy() Policy {
	return Policy{
		FreeShippingThreshold: decimal.RequireFromString("50"),
		ShippingFlatFee:       decimal.RequireFromString("5.99"),
		TaxRate:               decimal.RequireFromString("0.18"),
	}
}

func line(price string, qty int) models.CartItem {
	return models.CartItem{
		ID:        "line-1",
		ProductID: "prod-1",
		Name:      "Brass Shank Button",
		Price:     decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestComputeBaseline(t *testing.T) {
	// two units at 12.99: below the free shipping threshold, no promo
	quote, err := Compute([]models.CartItem{line("12.99", 2)}, "", testPolicy())
	require.NoError(t, err)

	assert.True(t, quote.Subtotal.Equal(decimal.RequireFromString("25.98")), "subtotal %s", quote.Subtotal)
	assert.True(t, quote.Discount.IsZero())
	assert.True(t, quote.ShippingCost.Equal(decimal.RequireFromString("5.99")))
	assert.True(t, quote.Tax.Equal(decimal.RequireFromString("4.6764")), "tax %s", quote.Tax)
	assert.True(t, quote.Total.Equal(decimal.RequireFromString("36.6464")), "total %s", quote.Total)

	// rounding happens only at display time
	display := quote.Display()
	assert.Equal(t, "25.98", display.Subtotal)
	assert.Equal(t, "4.68", display.Tax)
	assert.Equal(t, "36.65", display.Total)
}

func TestComputePromoAppliesBeforeTax(t *testing.T) {
	quote, err := Compute([]models.CartItem{line("100", 1)}, "SAVE10", testPolicy())
	require.NoError(t, err)

	assert.True(t, quote.Discount.Equal(decimal.RequireFromString("10")))
	assert.True(t, quote.ShippingCost.IsZero(), "subtotal over threshold ships free")
	// tax is charged on the discounted subtotal
	assert.True(t, quote.Tax.Equal(decimal.RequireFromString("16.2")), "tax %s", quote.Tax)
	assert.True(t, quote.Total.Equal(decimal.RequireFromString("106.2")), "total %s", quote.Total)
	assert.Equal(t, "SAVE10", quote.PromoCode)
}

func TestComputeShippingThreshold(t *testing.T) {
	p := testPolicy()

	over, err := Compute([]models.CartItem{line("60", 1)}, "", p)
	require.NoError(t, err)
	assert.True(t, over.ShippingCost.IsZero())

	under, err := Compute([]models.CartItem{line("40", 1)}, "", p)
	require.NoError(t, err)
	assert.True(t, under.ShippingCost.Equal(decimal.RequireFromString("5.99")))

	// exactly at the threshold still pays shipping
	at, err := Compute([]models.CartItem{line("50", 1)}, "", p)
	require.NoError(t, err)
	assert.True(t, at.ShippingCost.Equal(decimal.RequireFromString("5.99")))
}

func TestComputeInvalidPromo(t *testing.T) {
	_, err := Compute([]models.CartItem{line("10", 1)}, "BOGUS50", testPolicy())
	assert.ErrorIs(t, err, ErrInvalidPromo)
}

func TestComputeEmptyCart(t *testing.T) {
	quote, err := Compute(nil, "", testPolicy())
	require.NoError(t, err)
	assert.True(t, quote.Subtotal.IsZero())
	// flat fee still applies; callers reject empty carts before pricing
	assert.True(t, quote.ShippingCost.Equal(decimal.RequireFromString("5.99")))
}

func TestValidCodes(t *testing.T) {
	assert.ElementsMatch(t, []string{"SAVE10", "WELCOME20", "FIRST15"}, ValidCodes())
}
