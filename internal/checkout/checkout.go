package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/api"
	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/cart"
	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/session"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrNoTableNumber = errors.New("no table number selected")
	ErrNotSignedIn   = errors.New("sign in to place an order")
)

// OrderAPI is the slice of the remote client checkout needs.
type OrderAPI interface {
	CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*api.Order, error)
}

// Service drives the checkout view: quantity edits on cart lines plus
// order submission.
type Service struct {
	cart    *cart.Store
	session *session.Store
	orders  OrderAPI
}

func NewService(cartStore *cart.Store, sessionStore *session.Store, orders OrderAPI) *Service {
	return &Service{
		cart:    cartStore,
		session: sessionStore,
		orders:  orders,
	}
}

// Result is what the view acts on after a successful submission.
type Result struct {
	Order *api.Order
}

// SetQuantity applies a quantity edit from the checkout view. Positive
// targets update the line in place; zero and below remove it. The cart
// store itself never prunes zero-quantity rows, that is this caller's
// contract.
func (s *Service) SetQuantity(id string, quantity int) {
	if quantity > 0 {
		s.cart.UpdateQuantity(id, quantity)
		return
	}
	s.cart.RemoveItem(id)
}

// Confirm checks the submission preconditions in order (non-empty cart,
// table selected, signed-in user), posts the order and clears the cart
// on success. On any failure the cart is left unchanged so the customer
// can retry.
func (s *Service) Confirm(ctx context.Context) (*Result, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	tableNo, ok := s.cart.TableNumber()
	if !ok {
		return nil, ErrNoTableNumber
	}

	user, ok := s.session.Current()
	if !ok || user.Email == "" {
		return nil, ErrNotSignedIn
	}

	req := api.CreateOrderRequest{
		TableNumber: tableNo,
		Items:       make([]api.OrderItem, 0, len(items)),
		TotalAmount: s.cart.TotalAmount(),
		Email:       user.Email,
	}
	for _, it := range items {
		req.Items = append(req.Items, api.OrderItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	order, err := s.orders.CreateOrder(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.cart.ClearCart()
	log.Info().Str("order_id", order.ID).Int("table", tableNo).Msg("checkout: order placed")

	return &Result{Order: order}, nil
}
