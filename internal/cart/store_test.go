package cart_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/cart"
)

func TestStore_AddItem(t *testing.T) {
	tests := []struct {
		name     string
		adds     []cart.Item
		wantRows []cart.Item
	}{
		{
			name: "repeated_id_sums_quantities",
			adds: []cart.Item{
				{ID: "a", Name: "Pizza", Price: 9.5, Quantity: 3},
				{ID: "a", Name: "Pizza", Price: 9.5, Quantity: 2},
			},
			wantRows: []cart.Item{
				{ID: "a", Name: "Pizza", Price: 9.5, Quantity: 5},
			},
		},
		{
			name: "distinct_ids_keep_insertion_order",
			adds: []cart.Item{
				{ID: "b", Name: "Chai", Price: 2, Quantity: 1},
				{ID: "a", Name: "Pizza", Price: 9.5, Quantity: 1},
				{ID: "b", Name: "Chai", Price: 2, Quantity: 4},
			},
			wantRows: []cart.Item{
				{ID: "b", Name: "Chai", Price: 2, Quantity: 5},
				{ID: "a", Name: "Pizza", Price: 9.5, Quantity: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := cart.NewStore(cart.NewMemoryStorage())
			for _, it := range tt.adds {
				store.AddItem(it)
			}
			assert.Equal(t, tt.wantRows, store.Items())
		})
	}
}

func TestStore_TotalAmount(t *testing.T) {
	store := cart.NewStore(nil)

	store.AddItem(cart.Item{ID: "a", Name: "Pizza", Price: 9.5, Quantity: 3})
	assert.Equal(t, 28.5, store.TotalAmount())

	store.AddItem(cart.Item{ID: "a", Name: "Pizza", Price: 9.5, Quantity: 2})
	assert.Equal(t, 47.5, store.TotalAmount())
}

func TestStore_RemoveItem_UnknownIDIsNoop(t *testing.T) {
	store := cart.NewStore(nil)
	store.AddItem(cart.Item{ID: "a", Name: "Pizza", Price: 9.5, Quantity: 1})

	before := store.Items()
	store.RemoveItem("does-not-exist")

	assert.Equal(t, before, store.Items())
}

func TestStore_UpdateQuantity_ZeroKeepsRowUntilRemoved(t *testing.T) {
	store := cart.NewStore(nil)
	store.AddItem(cart.Item{ID: "a", Name: "Pizza", Price: 9.5, Quantity: 2})

	store.UpdateQuantity("a", 0)

	rows := store.Items()
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Quantity)
	assert.Equal(t, 0.0, store.TotalAmount())

	// Pruning is the caller's job.
	store.RemoveItem("a")
	assert.Empty(t, store.Items())
}

func TestStore_UpdateQuantity_ClampsNegativeToZero(t *testing.T) {
	store := cart.NewStore(nil)
	store.AddItem(cart.Item{ID: "a", Name: "Pizza", Price: 9.5, Quantity: 2})

	store.UpdateQuantity("a", -3)

	rows := store.Items()
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].Quantity)
}

func TestStore_UpdateQuantity_UnknownIDIsNoop(t *testing.T) {
	store := cart.NewStore(nil)
	store.UpdateQuantity("ghost", 4)
	assert.Empty(t, store.Items())
}

func TestStore_ClearCart(t *testing.T) {
	store := cart.NewStore(cart.NewMemoryStorage())
	store.AddItem(cart.Item{ID: "a", Name: "Pizza", Price: 9.5, Quantity: 2})
	store.SetTableNumber(5)

	store.ClearCart()

	assert.Empty(t, store.Items())
	assert.Equal(t, 0.0, store.TotalAmount())
	_, ok := store.TableNumber()
	assert.False(t, ok)
}

func TestStore_RehydratesFromStorage(t *testing.T) {
	storage := cart.NewMemoryStorage()

	first := cart.NewStore(storage)
	first.AddItem(cart.Item{ID: "a", Name: "Pizza", Price: 9.5, Quantity: 2})
	first.SetTableNumber(5)

	second := cart.NewStore(storage)
	assert.Equal(t, first.Items(), second.Items())

	tableNo, ok := second.TableNumber()
	require.True(t, ok)
	assert.Equal(t, 5, tableNo)
}

type failingStorage struct{}

func (failingStorage) Load() (*cart.State, error) { return nil, cart.ErrNoState }
func (failingStorage) Save(cart.State) error      { return errors.New("quota exceeded") }

func TestStore_KeepsWorkingWhenPersistenceFails(t *testing.T) {
	store := cart.NewStore(failingStorage{})

	store.AddItem(cart.Item{ID: "a", Name: "Pizza", Price: 9.5, Quantity: 1})
	store.SetTableNumber(3)

	assert.Len(t, store.Items(), 1)
	assert.Equal(t, 9.5, store.TotalAmount())
	tableNo, ok := store.TableNumber()
	require.True(t, ok)
	assert.Equal(t, 3, tableNo)
}
