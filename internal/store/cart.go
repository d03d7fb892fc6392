package store

import (
	"context"
	"slices"
	"sync"

	"opticart/internal/domain"
	applog "opticart/internal/log"
	"opticart/internal/state"
)

// CartGateway is the slice of the backend client the cart store needs.
type CartGateway interface {
	FetchCart(ctx context.Context) ([]domain.CartItem, error)
	AddCartItem(ctx context.Context, productID, quantity int) error
	UpdateCartItem(ctx context.Context, cartItemID, quantity int) error
	RemoveCartItem(ctx context.Context, cartItemID int) error
}

// Cart owns the local copy of the cart lines. Mutations are optimistic:
// the local list changes before the server call and is restored wholesale
// when the call fails.
type Cart struct {
	mu      sync.RWMutex
	items   []domain.CartItem
	api     CartGateway
	persist Persister
}

func NewCart(api CartGateway, p Persister) *Cart {
	c := &Cart{api: api, persist: p}
	if p != nil {
		_, _ = p.Get(state.CartKey, &c.items)
	}
	return c
}

func (c *Cart) snapshot() []domain.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

func (c *Cart) replace(items []domain.CartItem) {
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	if c.persist != nil {
		_ = c.persist.Put(state.CartKey, items)
	}
}

// Items returns a copy of the current lines; callers must not mutate store
// state directly.
func (c *Cart) Items() []domain.CartItem { return c.snapshot() }

// Fetch replaces the local list with the server's snapshot. On failure the
// stale local list stays usable, so fetch errors are logged, not returned.
func (c *Cart) Fetch(ctx context.Context) {
	items, err := c.api.FetchCart(ctx)
	if err != nil {
		applog.Backend("cart.fetch.fail", err, nil)
		return
	}
	c.replace(items)
}

// Add creates the line server-side, then refetches: the server assigns the
// line id, so there is nothing to insert optimistically. The error is
// returned so the caller can show it.
func (c *Cart) Add(ctx context.Context, productID, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	if err := c.api.AddCartItem(ctx, productID, quantity); err != nil {
		applog.Backend("cart.add.fail", err, map[string]any{"product": productID})
		return err
	}
	c.Fetch(ctx)
	return nil
}

// UpdateQuantity rejects quantities below 1 as a no-op, then applies the new
// quantity locally before the server call and rolls the whole list back if
// the call fails.
func (c *Cart) UpdateQuantity(ctx context.Context, cartItemID, quantity int) error {
	if quantity < 1 {
		return nil
	}
	next := c.snapshot()
	found := false
	for i := range next {
		if next[i].ID == cartItemID {
			next[i].Quantity = quantity
			found = true
		}
	}
	if !found {
		return nil
	}
	err := optimistic(c.snapshot, c.replace, next, func() error {
		return c.api.UpdateCartItem(ctx, cartItemID, quantity)
	})
	if err != nil {
		applog.Backend("cart.update.fail", err, map[string]any{"line": cartItemID})
	}
	return err
}

// Remove filters the line out locally before the server call, with the same
// rollback discipline as UpdateQuantity.
func (c *Cart) Remove(ctx context.Context, cartItemID int) error {
	next := slices.DeleteFunc(c.snapshot(), func(it domain.CartItem) bool {
		return it.ID == cartItemID
	})
	err := optimistic(c.snapshot, c.replace, next, func() error {
		return c.api.RemoveCartItem(ctx, cartItemID)
	})
	if err != nil {
		applog.Backend("cart.remove.fail", err, map[string]any{"line": cartItemID})
	}
	return err
}

// Clear resets local state only. The checkout flow drains the server cart
// line by line before calling this.
func (c *Cart) Clear() {
	c.replace(nil)
}

func (c *Cart) TotalCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// TotalPrice treats missing price or quantity as zero so a partially loaded
// product row cannot poison the sum.
func (c *Cart) TotalPrice() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0
	for _, it := range c.items {
		if it.Product.Price <= 0 || it.Quantity <= 0 {
			continue
		}
		total += it.Product.Price * it.Quantity
	}
	return total
}
