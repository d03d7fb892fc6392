// Package checkout sequences order placement: validate the shipping form,
// create the order from the at-submission cart snapshot, drain the server
// cart best-effort, then hand the draft to the success page.
package checkout

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"opticart/internal/backend"
	"opticart/internal/domain"
	applog "opticart/internal/log"
	"opticart/internal/store"
)

type Status int

const (
	Idle Status = iota
	Validating
	Submitting
	AwaitingCartDrain
	Done
	Failed
)

func (s Status) String() string {
	switch s {
	case Validating:
		return "validating"
	case Submitting:
		return "submitting"
	case AwaitingCartDrain:
		return "draining-cart"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Gateway is the slice of the backend client the orchestrator needs.
type Gateway interface {
	CreateOrder(ctx context.Context, req backend.CheckoutRequest) (domain.Order, error)
	RemoveCartItem(ctx context.Context, cartItemID int) error
}

type Form struct {
	Recipient string
	Address1  string
	Address2  string
	Zip       string
	Phone     string
	Memo      string
}

// ValidationError names the offending field so the form can mark it inline.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (f Form) validate() error {
	switch {
	case f.Recipient == "":
		return &ValidationError{Field: "recipient", Message: "recipient name is required"}
	case f.Address1 == "":
		return &ValidationError{Field: "address1", Message: "please select an address"}
	case f.Address2 == "":
		return &ValidationError{Field: "address2", Message: "detailed address is required"}
	case f.Phone == "":
		return &ValidationError{Field: "phone", Message: "phone number is required"}
	}
	return nil
}

var ErrEmptyCart = errors.New("cart is empty")

type Orchestrator struct {
	api    Gateway
	cart   *store.Cart
	orders *store.Orders

	mu      sync.Mutex
	status  Status
	idemKey string
}

func New(api Gateway, cart *store.Cart, orders *store.Orders) *Orchestrator {
	return &Orchestrator{api: api, cart: cart, orders: orders}
}

func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

func (o *Orchestrator) setStatus(s Status) {
	o.mu.Lock()
	o.status = s
	o.mu.Unlock()
}

// Place runs the full sequence. Ordering guarantees:
//   - no network call happens until every form check passes
//   - a CreateOrder failure aborts before any drain, leaving the local cart
//     untouched for a retry
//   - the idempotency key survives a failed or interrupted run and is only
//     rotated after Done, so retrying cannot create a duplicate order
//   - the drain is best-effort and parallel; failures are logged, never
//     retried, and never block progression; the order already exists
func (o *Orchestrator) Place(ctx context.Context, form Form) (domain.OrderDraft, error) {
	o.setStatus(Validating)
	if err := form.validate(); err != nil {
		o.setStatus(Idle)
		return domain.OrderDraft{}, err
	}

	items := o.cart.Items() // snapshot at submission time
	if len(items) == 0 {
		o.setStatus(Idle)
		return domain.OrderDraft{}, ErrEmptyCart
	}

	o.setStatus(Submitting)
	o.mu.Lock()
	if o.idemKey == "" {
		o.idemKey = uuid.NewString()
	}
	key := o.idemKey
	o.mu.Unlock()

	lines := make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, domain.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	ord, err := o.api.CreateOrder(ctx, backend.CheckoutRequest{
		Items: lines,
		Shipping: domain.ShippingInfo{
			Recipient: form.Recipient,
			Address1:  form.Address1,
			Address2:  form.Address2,
			Zip:       form.Zip,
			Phone:     form.Phone,
			Memo:      form.Memo,
		},
		IdempotencyKey: key,
	})
	if err != nil {
		o.setStatus(Failed)
		applog.Backend("checkout.submit.fail", err, nil)
		return domain.OrderDraft{}, err
	}

	o.setStatus(AwaitingCartDrain)
	var wg sync.WaitGroup
	for _, it := range items {
		wg.Add(1)
		go func(lineID int) {
			defer wg.Done()
			if derr := o.api.RemoveCartItem(ctx, lineID); derr != nil {
				// stale line stays until the next cart fetch
				applog.Backend("checkout.drain.fail", derr, map[string]any{"line": lineID})
			}
		}(it.ID)
	}
	wg.Wait()

	draft := domain.OrderDraft{
		OrderID:     strconv.Itoa(ord.ID),
		OrderNumber: ord.OrderNumber,
		TotalAmount: ord.TotalAmount,
	}
	if serr := o.orders.SetDraft(draft); serr != nil {
		applog.Backend("checkout.draft.persist.fail", serr, nil)
	}
	o.cart.Clear()

	o.mu.Lock()
	o.idemKey = ""
	o.status = Done
	o.mu.Unlock()
	return draft, nil
}
