package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"opticart/internal/domain"
)

// cartPayload tolerates both response shapes the cart endpoint is known to
// return: a bare array and an {items:[...]} envelope.
type cartPayload struct {
	Items []domain.CartItem
}

func (p *cartPayload) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		return json.Unmarshal(b, &p.Items)
	}
	var env struct {
		Items []domain.CartItem `json:"items"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	p.Items = env.Items
	return nil
}

func (c *Client) FetchCart(ctx context.Context) ([]domain.CartItem, error) {
	var p cartPayload
	if err := c.do(ctx, "GET", "/cart", nil, nil, &p); err != nil {
		return nil, err
	}
	return p.Items, nil
}

func (c *Client) AddCartItem(ctx context.Context, productID, quantity int) error {
	body := map[string]int{"productId": productID, "quantity": quantity}
	return c.do(ctx, "POST", "/cart", nil, body, nil)
}

func (c *Client) UpdateCartItem(ctx context.Context, cartItemID, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.do(ctx, "PUT", fmt.Sprintf("/cart/%d", cartItemID), nil, body, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, cartItemID int) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/cart/%d", cartItemID), nil, nil, nil)
}
