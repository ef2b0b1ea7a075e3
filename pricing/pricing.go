// Package pricing computes order totals from cart lines. Everything here is
// pure: no store access, no clock, no I/O.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/HA2345567/buttonhaus/models"
)

// ErrInvalidPromo signals a promo code that is not in the table. The caller
// surfaces it to the user; no discount is applied.
var ErrInvalidPromo = errors.New("invalid promo code")

// promoTable is the closed set of demo promo codes and the discount fraction
// each grants. Lookup is exact-match on the uppercased code.
var promoTable = map[string]decimal.Decimal{
	"SAVE10":    decimal.NewFromFloat(0.10),
	"WELCOME20": decimal.NewFromFloat(0.20),
	"FIRST15":   decimal.NewFromFloat(0.15),
}

// Policy holds the fixed pricing constants, injected from config.
type Policy struct {
	FreeShippingThreshold decimal.Decimal
	ShippingFlatFee       decimal.Decimal
	TaxRate               decimal.Decimal
}

// Quote is the result of pricing a cart. All values are kept at full
// precision; rounding happens only in Display.
type Quote struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	PromoCode    string          `json:"promo_code,omitempty"`
}

// DisplayQuote is a Quote formatted for presentation, each amount rounded to
// two decimal places.
type DisplayQuote struct {
	Subtotal     string `json:"subtotal"`
	Discount     string `json:"discount"`
	ShippingCost string `json:"shipping_cost"`
	Tax          string `json:"tax"`
	Total        string `json:"total"`
	PromoCode    string `json:"promo_code,omitempty"`
}

func (q Quote) Display() DisplayQuote {
	return DisplayQuote{
		Subtotal:     q.Subtotal.StringFixed(2),
		Discount:     q.Discount.StringFixed(2),
		ShippingCost: q.ShippingCost.StringFixed(2),
		Tax:          q.Tax.StringFixed(2),
		Total:        q.Total.StringFixed(2),
		PromoCode:    q.PromoCode,
	}
}

// Subtotal sums price x quantity over all lines.
func Subtotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Compute prices a cart. The computation order is authoritative:
// subtotal, then discount, then shipping, then tax on the discounted
// subtotal, then total. An empty promoCode means no promo; an unknown one
// returns ErrInvalidPromo.
func Compute(items []models.CartItem, promoCode string, p Policy) (Quote, error) {
	subtotal := Subtotal(items)

	discount := decimal.Zero
	if promoCode != "" {
		fraction, ok := promoTable[promoCode]
		if !ok {
			return Quote{}, ErrInvalidPromo
		}
		discount = subtotal.Mul(fraction)
	}

	shipping := p.ShippingFlatFee
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Sub(discount).Mul(p.TaxRate)
	total := subtotal.Sub(discount).Add(shipping).Add(tax)

	return Quote{
		Subtotal:     subtotal,
		Discount:     discount,
		ShippingCost: shipping,
		Tax:          tax,
		Total:        total,
		PromoCode:    promoCode,
	}, nil
}

// ValidCodes lists the accepted promo codes, for the storefront hint text.
func ValidCodes() []string {
	return []string{"SAVE10", "WELCOME20", "FIRST15"}
}
