package store

import (
	"encoding/json"
	"sync"

	"github.com/HA2345567/buttonhaus/models"
)

const wishlistNamespace = "buttonhaus-wishlist"

// WishlistStore holds one liked-product set per user, keyed by product id.
// Set semantics: adding an already-present product is a no-op.
type WishlistStore struct {
	mu     sync.RWMutex
	lists  map[string][]models.Product
	notify func()
}

func NewWishlistStore() *WishlistStore {
	return &WishlistStore{lists: make(map[string][]models.Product)}
}

func (s *WishlistStore) OnChange(fn func()) { s.notify = fn }

func (s *WishlistStore) changed() {
	if s.notify != nil {
		s.notify()
	}
}

// Add inserts the product iff no entry with the same id exists. Reports
// whether an insert happened.
func (s *WishlistStore) Add(userID string, product models.Product) bool {
	s.mu.Lock()
	added := s.addLocked(userID, product)
	s.mu.Unlock()

	if added {
		s.changed()
	}
	return added
}

func (s *WishlistStore) addLocked(userID string, product models.Product) bool {
	for _, p := range s.lists[userID] {
		if p.ID == product.ID {
			return false
		}
	}
	s.lists[userID] = append(s.lists[userID], product)
	return true
}

// Remove deletes the matching entry. No-op if absent.
func (s *WishlistStore) Remove(userID, productID string) bool {
	s.mu.Lock()
	removed := s.removeLocked(userID, productID)
	s.mu.Unlock()

	if removed {
		s.changed()
	}
	return removed
}

func (s *WishlistStore) removeLocked(userID, productID string) bool {
	list := s.lists[userID]
	for i := range list {
		if list[i].ID == productID {
			s.lists[userID] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Toggle removes the product if present, otherwise adds it. Reports whether
// the product is in the wishlist afterwards.
func (s *WishlistStore) Toggle(userID string, product models.Product) bool {
	s.mu.Lock()
	inList := false
	if !s.removeLocked(userID, product.ID) {
		s.addLocked(userID, product)
		inList = true
	}
	s.mu.Unlock()

	s.changed()
	return inList
}

// Contains is a membership test by product id.
func (s *WishlistStore) Contains(userID, productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.lists[userID] {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the user's wishlist.
func (s *WishlistStore) Items(userID string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.lists[userID]...)
}

// Clear empties the user's wishlist.
func (s *WishlistStore) Clear(userID string) {
	s.mu.Lock()
	delete(s.lists, userID)
	s.mu.Unlock()
	s.changed()
}

// TotalItems is the number of liked products.
func (s *WishlistStore) TotalItems(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lists[userID])
}

func (s *WishlistStore) Namespace() string { return wishlistNamespace }

func (s *WishlistStore) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.lists)
}

func (s *WishlistStore) Restore(data []byte) error {
	lists := make(map[string][]models.Product)
	if err := json.Unmarshal(data, &lists); err != nil {
		return err
	}
	s.mu.Lock()
	s.lists = lists
	s.mu.Unlock()
	return nil
}
