package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/HA2345567/buttonhaus/models"
)

const ordersNamespace = "buttonhaus-orders"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// OrderStore keeps the full order history, most-recent-first. Orders are
// immutable after creation except for status and tracking number.
type OrderStore struct {
	mu      sync.RWMutex
	orders  []models.Order
	enforce bool
	notify  func()
	subs    []func(models.Order)
	now     func() time.Time
}

// NewOrderStore builds an order store. When enforceTransitions is set,
// status updates must follow processing -> shipped -> delivered, with
// cancelled reachable from processing or shipped.
func NewOrderStore(enforceTransitions bool) *OrderStore {
	return &OrderStore{enforce: enforceTransitions, now: time.Now}
}

func (s *OrderStore) OnChange(fn func()) { s.notify = fn }

// Subscribe registers a listener for created and updated orders. Must be
// called during wiring, before the store serves requests.
func (s *OrderStore) Subscribe(fn func(models.Order)) {
	s.subs = append(s.subs, fn)
}

func (s *OrderStore) changed() {
	if s.notify != nil {
		s.notify()
	}
}

func (s *OrderStore) publish(order models.Order) {
	for _, fn := range s.subs {
		fn(order)
	}
}

// newOrderID generates ids of the form ORD-<epoch-ms>-<6 base36 chars>.
func newOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), randBase36(6))
}

func randBase36(n int) string {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		for i := range b {
			b[i] = '0'
		}
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b)
}

// Add creates an order from a cart snapshot: generated id, status
// processing, estimated delivery five days out, prepended to the history.
func (s *OrderStore) Add(userID string, items []models.CartItem, total decimal.Decimal, info models.CustomerInfo) models.Order {
	now := s.now()
	order := models.Order{
		ID:                newOrderID(now),
		UserID:            userID,
		Items:             append([]models.CartItem(nil), items...),
		Total:             total,
		CustomerInfo:      info,
		Status:            models.OrderStatusProcessing,
		OrderDate:         now,
		EstimatedDelivery: now.Add(5 * 24 * time.Hour),
	}

	s.mu.Lock()
	s.orders = append([]models.Order{order}, s.orders...)
	s.mu.Unlock()

	s.changed()
	s.publish(order)
	return order
}

// ByID is a linear lookup over the history.
func (s *OrderStore) ByID(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// ForUser returns the user's orders, newest first.
func (s *OrderStore) ForUser(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// All returns every order, newest first.
func (s *OrderStore) All() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order(nil), s.orders...)
}

// Total is the order count across all users.
func (s *OrderStore) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// canTransition encodes the status graph used in enforcing mode.
func canTransition(from, to models.OrderStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case models.OrderStatusProcessing:
		return to == models.OrderStatusShipped || to == models.OrderStatusCancelled
	case models.OrderStatusShipped:
		return to == models.OrderStatusDelivered || to == models.OrderStatusCancelled
	default:
		// delivered and cancelled are terminal
		return false
	}
}

// UpdateStatus overwrites the status of the matching order. In enforcing
// mode a transition outside the graph returns ErrInvalidTransition and
// leaves the order untouched.
func (s *OrderStore) UpdateStatus(id string, status models.OrderStatus) (models.Order, error) {
	s.mu.Lock()
	var updated models.Order
	var err error = ErrOrderNotFound
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if s.enforce && !canTransition(s.orders[i].Status, status) {
			err = fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.orders[i].Status, status)
			break
		}
		s.orders[i].Status = status
		updated = s.orders[i]
		err = nil
		break
	}
	s.mu.Unlock()

	if err != nil {
		return models.Order{}, err
	}
	s.changed()
	s.publish(updated)
	return updated, nil
}

// SetTracking attaches a tracking number to the matching order.
func (s *OrderStore) SetTracking(id, trackingNumber string) (models.Order, error) {
	s.mu.Lock()
	var updated models.Order
	found := false
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].TrackingNumber = trackingNumber
			updated = s.orders[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return models.Order{}, ErrOrderNotFound
	}
	s.changed()
	s.publish(updated)
	return updated, nil
}

func (s *OrderStore) Namespace() string { return ordersNamespace }

func (s *OrderStore) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.orders)
}

func (s *OrderStore) Restore(data []byte) error {
	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return err
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}
