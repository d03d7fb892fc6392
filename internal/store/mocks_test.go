package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"sync"

	"opticart/internal/backend"
	"opticart/internal/domain"
)

func notFoundErr() error {
	return &backend.APIError{Status: http.StatusNotFound, Message: "bookmark not found"}
}

// mockCartAPI implements CartGateway with scripted failures.
type mockCartAPI struct {
	mu         sync.Mutex
	serverCart []domain.CartItem

	failFetch  bool
	failAdd    bool
	failUpdate bool
	failRemove bool

	updateCalls int
	removeCalls int
}

var errBoom = errors.New("backend unavailable")

func (m *mockCartAPI) FetchCart(context.Context) ([]domain.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failFetch {
		return nil, errBoom
	}
	return slices.Clone(m.serverCart), nil
}

func (m *mockCartAPI) AddCartItem(_ context.Context, productID, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAdd {
		return errBoom
	}
	m.serverCart = append(m.serverCart, domain.CartItem{
		ID:        1000 + len(m.serverCart),
		ProductID: productID,
		Quantity:  quantity,
	})
	return nil
}

func (m *mockCartAPI) UpdateCartItem(_ context.Context, cartItemID, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls++
	if m.failUpdate {
		return errBoom
	}
	for i := range m.serverCart {
		if m.serverCart[i].ID == cartItemID {
			m.serverCart[i].Quantity = quantity
		}
	}
	return nil
}

func (m *mockCartAPI) RemoveCartItem(_ context.Context, cartItemID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeCalls++
	if m.failRemove {
		return errBoom
	}
	m.serverCart = slices.DeleteFunc(m.serverCart, func(it domain.CartItem) bool {
		return it.ID == cartItemID
	})
	return nil
}

// mockBookmarkAPI implements BookmarkGateway over an id-keyed record set.
type mockBookmarkAPI struct {
	mu      sync.Mutex
	records map[int]domain.Bookmark // by product id
	names   map[int]string          // product catalog: id -> display name

	failList    bool
	failAddID   int // AddBookmark fails for this product id
	listCalls   int
	addCalls    []int
	removeCalls []int
}

func newMockBookmarkAPI() *mockBookmarkAPI {
	return &mockBookmarkAPI{
		records: map[int]domain.Bookmark{},
		names:   map[int]string{},
	}
}

// catalog registers a product so AddBookmark can resolve its display name.
func (m *mockBookmarkAPI) catalog(productID int, name string) {
	m.names[productID] = name
}

func (m *mockBookmarkAPI) seed(productID int, name string) {
	m.catalog(productID, name)
	m.records[productID] = domain.Bookmark{
		ID:        productID,
		ProductID: productID,
		Product:   domain.ProductSummary{Name: name},
	}
}

func (m *mockBookmarkAPI) ListBookmarks(_ context.Context, page int) ([]domain.Bookmark, domain.Pagination, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.failList {
		return nil, domain.Pagination{}, errBoom
	}
	out := make([]domain.Bookmark, 0, len(m.records))
	for _, b := range m.records {
		out = append(out, b)
	}
	return out, domain.Pagination{Total: len(out), CurrentPage: page}, nil
}

func (m *mockBookmarkAPI) AddBookmark(_ context.Context, productID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addCalls = append(m.addCalls, productID)
	if m.failAddID != 0 && productID == m.failAddID {
		return errBoom
	}
	m.records[productID] = domain.Bookmark{
		ID:        productID,
		ProductID: productID,
		Product:   domain.ProductSummary{Name: m.names[productID]},
	}
	return nil
}

func (m *mockBookmarkAPI) RemoveBookmark(_ context.Context, productID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeCalls = append(m.removeCalls, productID)
	if _, ok := m.records[productID]; !ok {
		return notFoundErr()
	}
	delete(m.records, productID)
	return nil
}

// memPersister is an in-memory Persister for tests.
type memPersister struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemPersister() *memPersister {
	return &memPersister{data: map[string][]byte{}}
}

func (p *memPersister) Put(name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.data[name] = b
	p.mu.Unlock()
	return nil
}

func (p *memPersister) Get(name string, v any) (bool, error) {
	p.mu.Lock()
	b, ok := p.data[name]
	p.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, v)
}

func (p *memPersister) Delete(name string) error {
	p.mu.Lock()
	delete(p.data, name)
	p.mu.Unlock()
	return nil
}
