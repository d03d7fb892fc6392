package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opticart/internal/domain"
)

func twoLineCart() []domain.CartItem {
	return []domain.CartItem{
		{ID: 1, ProductID: 10, Quantity: 2, Product: domain.ProductSummary{Name: "Aviator Gold", Price: 1000}},
		{ID: 2, ProductID: 20, Quantity: 1, Product: domain.ProductSummary{Name: "Round Tortoise", Price: 500}},
	}
}

func TestCartTotals(t *testing.T) {
	cart := NewCart(&mockCartAPI{}, nil)
	cart.replace(twoLineCart())

	assert.Equal(t, 3, cart.TotalCount())
	assert.Equal(t, 2500, cart.TotalPrice())
}

func TestCartTotalsTolerateMissingPrice(t *testing.T) {
	cart := NewCart(&mockCartAPI{}, nil)
	cart.replace([]domain.CartItem{
		{ID: 1, Quantity: 2, Product: domain.ProductSummary{Price: 1000}},
		{ID: 2, Quantity: 3}, // price never loaded
	})

	assert.Equal(t, 5, cart.TotalCount())
	assert.Equal(t, 2000, cart.TotalPrice())
}

func TestCartFetchReplacesAll(t *testing.T) {
	api := &mockCartAPI{serverCart: twoLineCart()}
	cart := NewCart(api, nil)
	cart.replace([]domain.CartItem{{ID: 99, Quantity: 9}})

	cart.Fetch(context.Background())

	require.Len(t, cart.Items(), 2)
	assert.Equal(t, 1, cart.Items()[0].ID)
}

func TestCartFetchFailureKeepsStaleState(t *testing.T) {
	api := &mockCartAPI{failFetch: true}
	cart := NewCart(api, nil)
	cart.replace(twoLineCart())

	cart.Fetch(context.Background())

	assert.Len(t, cart.Items(), 2, "stale-but-available beats empty")
}

func TestCartAddResyncsFromServer(t *testing.T) {
	api := &mockCartAPI{}
	cart := NewCart(api, nil)

	require.NoError(t, cart.Add(context.Background(), 10, 2))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 10, items[0].ProductID)
	assert.NotZero(t, items[0].ID, "line id comes from the server")
}

func TestCartAddFailurePropagates(t *testing.T) {
	api := &mockCartAPI{failAdd: true}
	cart := NewCart(api, nil)

	err := cart.Add(context.Background(), 10, 1)

	require.Error(t, err)
	assert.Empty(t, cart.Items())
}

func TestUpdateQuantityOptimisticThenConfirmed(t *testing.T) {
	api := &mockCartAPI{serverCart: twoLineCart()}
	cart := NewCart(api, nil)
	cart.Fetch(context.Background())

	require.NoError(t, cart.UpdateQuantity(context.Background(), 1, 5))

	assert.Equal(t, 5, cart.Items()[0].Quantity)
	assert.Equal(t, 1, api.updateCalls)
}

func TestUpdateQuantityRollbackOnFailure(t *testing.T) {
	api := &mockCartAPI{serverCart: twoLineCart(), failUpdate: true}
	cart := NewCart(api, nil)
	cart.Fetch(context.Background())
	before := cart.Items()

	err := cart.UpdateQuantity(context.Background(), 1, 5)

	require.Error(t, err)
	assert.Equal(t, before, cart.Items(), "list must be restored exactly")
}

func TestUpdateQuantityBelowOneIsNoOp(t *testing.T) {
	api := &mockCartAPI{serverCart: twoLineCart()}
	cart := NewCart(api, nil)
	cart.Fetch(context.Background())

	require.NoError(t, cart.UpdateQuantity(context.Background(), 1, 0))

	assert.Equal(t, 2, cart.Items()[0].Quantity)
	assert.Zero(t, api.updateCalls, "no network call for rejected quantity")
}

func TestRemoveOptimisticThenConfirmed(t *testing.T) {
	api := &mockCartAPI{serverCart: twoLineCart()}
	cart := NewCart(api, nil)
	cart.Fetch(context.Background())

	require.NoError(t, cart.Remove(context.Background(), 1))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)
}

func TestRemoveRollbackOnFailure(t *testing.T) {
	api := &mockCartAPI{serverCart: twoLineCart(), failRemove: true}
	cart := NewCart(api, nil)
	cart.Fetch(context.Background())
	before := cart.Items()

	err := cart.Remove(context.Background(), 1)

	require.Error(t, err)
	assert.Equal(t, before, cart.Items())
}

func TestClearIsLocalOnly(t *testing.T) {
	api := &mockCartAPI{serverCart: twoLineCart()}
	cart := NewCart(api, nil)
	cart.Fetch(context.Background())

	cart.Clear()

	assert.Empty(t, cart.Items())
	assert.Zero(t, api.removeCalls, "clear never touches the server")
	assert.Len(t, api.serverCart, 2)
}

func TestCartPersistsAcrossRestart(t *testing.T) {
	p := newMemPersister()
	cart := NewCart(&mockCartAPI{}, p)
	cart.replace(twoLineCart())

	revived := NewCart(&mockCartAPI{}, p)

	assert.Equal(t, cart.Items(), revived.Items())
}
