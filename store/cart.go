package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/HA2345567/buttonhaus/models"
)

const cartNamespace = "buttonhaus-cart"

// CartStore holds one cart per user. Adding a line that matches an existing
// (productId, color, size) increments that line's quantity instead of
// creating a duplicate. Quantities never drop below 1.
type CartStore struct {
	mu     sync.RWMutex
	carts  map[string][]models.CartItem
	notify func()
	now    func() time.Time
}

func NewCartStore() *CartStore {
	return &CartStore{
		carts: make(map[string][]models.CartItem),
		now:   time.Now,
	}
}

// OnChange registers the persistence hook, fired after every mutation.
func (s *CartStore) OnChange(fn func()) { s.notify = fn }

func (s *CartStore) changed() {
	if s.notify != nil {
		s.notify()
	}
}

// AddItem merges into an existing variant line or appends a new line with a
// fresh id. It always succeeds and returns the resulting line.
func (s *CartStore) AddItem(userID string, item models.CartItem) models.CartItem {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	items := s.carts[userID]
	merged := false
	for i := range items {
		if items[i].SameVariant(item) {
			items[i].Quantity += item.Quantity
			item = items[i]
			merged = true
			break
		}
	}
	if !merged {
		item.ID = uuid.NewString()
		item.AddedAt = s.now()
		items = append(items, item)
	}
	s.carts[userID] = items
	s.mu.Unlock()

	s.changed()
	return item
}

// RemoveItem deletes the line with the given id. No-op if absent.
func (s *CartStore) RemoveItem(userID, lineID string) bool {
	s.mu.Lock()
	items := s.carts[userID]
	removed := false
	for i := range items {
		if items[i].ID == lineID {
			s.carts[userID] = append(items[:i], items[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.changed()
	}
	return removed
}

// UpdateQuantity sets a line's quantity, clamped to a minimum of 1. Returns
// the updated line and whether the line existed.
func (s *CartStore) UpdateQuantity(userID, lineID string, quantity int) (models.CartItem, bool) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	items := s.carts[userID]
	var updated models.CartItem
	found := false
	for i := range items {
		if items[i].ID == lineID {
			items[i].Quantity = quantity
			updated = items[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if found {
		s.changed()
	}
	return updated, found
}

// Clear empties the user's cart.
func (s *CartStore) Clear(userID string) {
	s.mu.Lock()
	delete(s.carts, userID)
	s.mu.Unlock()
	s.changed()
}

// Items returns a copy of the user's cart lines.
func (s *CartStore) Items(userID string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CartItem(nil), s.carts[userID]...)
}

// TotalItems sums quantities across all lines.
func (s *CartStore) TotalItems(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, item := range s.carts[userID] {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums price x quantity across all lines at full precision.
func (s *CartStore) TotalPrice(userID string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, item := range s.carts[userID] {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (s *CartStore) Namespace() string { return cartNamespace }

func (s *CartStore) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.carts)
}

func (s *CartStore) Restore(data []byte) error {
	carts := make(map[string][]models.CartItem)
	if err := json.Unmarshal(data, &carts); err != nil {
		return err
	}
	s.mu.Lock()
	s.carts = carts
	s.mu.Unlock()
	return nil
}
