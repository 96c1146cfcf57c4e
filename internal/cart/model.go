package cart

// Item is one cart line. Identity is ID: adding an item with an
// existing ID merges quantities instead of appending a duplicate row.
type Item struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// State is the persisted shape of the cart. TableNumber is nil until a
// table has been chosen. Items keep insertion order.
type State struct {
	Items       []Item `json:"items"`
	TableNumber *int   `json:"tableNumber"`
}
