package api

import "time"

// User is the session's account as returned by the auth endpoints.
type User struct {
	ID      string `json:"_id"`
	Email   string `json:"email"`
	IsStaff bool   `json:"isStaff"`
}

// MenuItem is one entry of the restaurant menu.
type MenuItem struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// OrderItem is one line of a submitted order.
type OrderItem struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is owned by the remote system; the client only holds a
// read/mutate-by-request view of it.
type Order struct {
	ID          string      `json:"_id"`
	TableNumber int         `json:"tableNumber"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	Email       string      `json:"email"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Credentials is the payload of the login/register endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateOrderRequest is the payload of POST /order/api/orders.
type CreateOrderRequest struct {
	TableNumber int         `json:"tableNumber"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Email       string      `json:"email"`
}

// UpdateStatusRequest is the payload of PUT /order/api/orders/{id}/status.
type UpdateStatusRequest struct {
	Status OrderStatus `json:"status"`
}
