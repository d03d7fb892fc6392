package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"opticart/internal/domain"
)

type CheckoutRequest struct {
	Items    []domain.OrderItem  `json:"items"`
	Shipping domain.ShippingInfo `json:"shipping"`

	// IdempotencyKey travels as a header, not in the body, so a resubmitted
	// checkout after a client crash cannot create a second order.
	IdempotencyKey string `json:"-"`
}

func (c *Client) CreateOrder(ctx context.Context, req CheckoutRequest) (domain.Order, error) {
	var headers map[string]string
	if req.IdempotencyKey != "" {
		headers = map[string]string{"Idempotency-Key": req.IdempotencyKey}
	}
	var ord domain.Order
	if err := c.doHeaders(ctx, "POST", "/orders/checkout", nil, headers, req, &ord); err != nil {
		return domain.Order{}, err
	}
	return ord, nil
}

func (c *Client) ConfirmOrder(ctx context.Context, orderID int) error {
	return c.do(ctx, "POST", "/orders/confirm", nil, map[string]int{"orderId": orderID}, nil)
}

func (c *Client) ListOrders(ctx context.Context, pageNum, limit int) ([]domain.Order, domain.Pagination, error) {
	q := url.Values{"page": {strconv.Itoa(pageNum)}, "limit": {strconv.Itoa(limit)}}
	return getList[domain.Order](ctx, c, "/orders", q)
}

func (c *Client) GetOrder(ctx context.Context, orderID int) (domain.Order, error) {
	var ord domain.Order
	if err := c.do(ctx, "GET", fmt.Sprintf("/orders/%d", orderID), nil, nil, &ord); err != nil {
		return domain.Order{}, err
	}
	return ord, nil
}

func (c *Client) CancelOrder(ctx context.Context, orderID int) error {
	return c.do(ctx, "PATCH", fmt.Sprintf("/orders/%d/cancel", orderID), nil, nil, nil)
}
