package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line in a user's cart. Price and image are snapshots taken
// at add-time so later catalog changes do not rewrite existing carts.
type CartItem struct {
	ID        string          `json:"id"` // line id, distinct from ProductID
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
	Color     string          `json:"color,omitempty"`
	Size      string          `json:"size,omitempty"`
	AddedAt   time.Time       `json:"addedAt"`
}

// SameVariant reports whether two lines refer to the same product variant.
// Lines matching on (productId, color, size) are merged, never duplicated.
func (i CartItem) SameVariant(other CartItem) bool {
	return i.ProductID == other.ProductID && i.Color == other.Color && i.Size == other.Size
}

// LineTotal is price x quantity at full precision.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
