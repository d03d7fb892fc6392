package store

import (
	"sync"

	"opticart/internal/domain"
	"opticart/internal/state"
)

// Orders holds the order draft bridging checkout submission and the
// success page. Persisted under order-storage; cleared when the success
// page consumes it or the user cancels.
type Orders struct {
	mu      sync.Mutex
	draft   *domain.OrderDraft
	persist Persister
}

func NewOrders(p Persister) *Orders {
	s := &Orders{persist: p}
	if p != nil {
		var d domain.OrderDraft
		if ok, _ := p.Get(state.OrderKey, &d); ok {
			s.draft = &d
		}
	}
	return s
}

func (s *Orders) SetDraft(d domain.OrderDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = &d
	if s.persist == nil {
		return nil
	}
	return s.persist.Put(state.OrderKey, d)
}

func (s *Orders) Draft() (domain.OrderDraft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return domain.OrderDraft{}, false
	}
	return *s.draft, true
}

func (s *Orders) ClearDraft() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
	if s.persist == nil {
		return nil
	}
	return s.persist.Delete(state.OrderKey)
}
