package backend

import (
	"context"
	"net/http"

	"storefront-gateway/internal/domain"
)

// SubmitOrder hands a complete order draft to the orders collaborator.
// The draft is sent as one atomic unit; there is no partial submission.
func (c *Client) SubmitOrder(ctx context.Context, token string, draft domain.OrderDraft) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, token, http.MethodPost, "/orders", nil, draft, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// MyOrders lists the authenticated customer's own orders.
func (c *Client) MyOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, token, http.MethodGet, "/orders/me/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
