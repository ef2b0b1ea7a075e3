package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing" // order placed, being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // customer received the items
	OrderStatusCancelled  OrderStatus = "cancelled"  // cancelled before delivery
)

var ErrInvalidStatus = errors.New("invalid order status")

// ParseOrderStatus maps a request string onto a known status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(s) {
	case string(OrderStatusProcessing):
		return OrderStatusProcessing, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

// CustomerInfo is the contact/shipping block captured at checkout.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// Order is an immutable snapshot of a checked-out cart. Only Status and
// TrackingNumber may change after creation.
type Order struct {
	ID                string          `json:"id"`
	UserID            string          `json:"userId"`
	Items             []CartItem      `json:"items"`
	Total             decimal.Decimal `json:"total"`
	CustomerInfo      CustomerInfo    `json:"customerInfo"`
	Status            OrderStatus     `json:"status"`
	OrderDate         time.Time       `json:"orderDate"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
	TrackingNumber    string          `json:"trackingNumber,omitempty"`
}
