package cart

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

// Store owns the cart for the active customer session. Every mutation
// persists the full state synchronously; a persistence failure is
// logged and swallowed, the store keeps working in memory.
//
// UpdateQuantity deliberately keeps zero-quantity rows: pruning is the
// caller's responsibility via RemoveItem. The checkout view relies on
// that split to route non-positive quantity edits to RemoveItem itself.
type Store struct {
	mu      sync.Mutex
	items   []Item
	tableNo *int
	storage Storage
}

// NewStore rehydrates the cart from storage when a persisted state
// exists, otherwise starts empty. A nil storage gives a purely
// in-memory cart.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}
	if storage == nil {
		return s
	}

	st, err := storage.Load()
	if err != nil {
		if !errors.Is(err, ErrNoState) {
			log.Warn().Err(err).Msg("cart: failed to rehydrate, starting empty")
		}
		return s
	}

	s.items = append([]Item(nil), st.Items...)
	s.tableNo = st.TableNumber
	return s
}

// AddItem merges the quantity into an existing line with the same ID,
// or appends a new line. Callers are expected to filter out
// non-positive quantities before calling (the menu view disables the
// action at quantity zero).
func (s *Store) AddItem(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += item.Quantity
			s.persistLocked()
			return
		}
	}

	s.items = append(s.items, item)
	s.persistLocked()
}

// RemoveItem deletes the line with the given ID. Removing an unknown ID
// is a no-op, not an error.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// UpdateQuantity sets the line's quantity to max(0, quantity). It never
// removes the line, even at zero; see the Store doc comment.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = max(0, quantity)
			s.persistLocked()
			return
		}
	}
}

// SetTableNumber replaces the table number unconditionally. Range
// validation belongs to the view layer.
func (s *Store) SetTableNumber(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tableNo = &n
	s.persistLocked()
}

// ClearCart resets the cart to empty with no table selected.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.tableNo = nil
	s.persistLocked()
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Item(nil), s.items...)
}

// TableNumber reports the selected table, if any.
func (s *Store) TableNumber() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tableNo == nil {
		return 0, false
	}
	return *s.tableNo, true
}

// TotalAmount is the sum of price*quantity over all lines.
func (s *Store) TotalAmount() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, it := range s.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (s *Store) persistLocked() {
	if s.storage == nil {
		return
	}

	st := State{
		Items:       append([]Item(nil), s.items...),
		TableNumber: s.tableNo,
	}
	if err := s.storage.Save(st); err != nil {
		log.Warn().Err(err).Msg("cart: failed to persist state")
	}
}
