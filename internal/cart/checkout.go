package cart

import (
	"context"
	"errors"
	"strings"

	"storefront-gateway/internal/domain"
)

var (
	// ErrEmptyCart blocks checkout before an order draft is ever built.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrAddressRequired rejects a blank shipping address.
	ErrAddressRequired = errors.New("shipping address required")
)

type orderSubmitter interface {
	SubmitOrder(ctx context.Context, token string, draft domain.OrderDraft) (*domain.Order, error)
}

// Checkout converts a session's cart into one order submission.
type Checkout struct {
	carts  *Manager
	orders orderSubmitter
}

func NewCheckout(carts *Manager, orders orderSubmitter) *Checkout {
	return &Checkout{carts: carts, orders: orders}
}

// Submit validates the preconditions, builds the order draft from the cart
// lines one-to-one, and hands it to the orders collaborator. On success the
// cart is cleared; on any rejection the cart is left untouched so the user
// can adjust and retry. No retry happens here.
func (s *Checkout) Submit(ctx context.Context, token, sessionID, shippingAddress string) (*domain.Order, error) {
	snapshot := s.carts.Snapshot(sessionID)
	if snapshot.Empty() {
		return nil, ErrEmptyCart
	}
	if strings.TrimSpace(shippingAddress) == "" {
		return nil, ErrAddressRequired
	}

	order, err := s.orders.SubmitOrder(ctx, token, snapshot.Draft(shippingAddress))
	if err != nil {
		return nil, err
	}
	s.carts.Drop(sessionID)
	return order, nil
}
