package handlers_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"opticart/internal/domain"
	"opticart/internal/http/handlers"
	"opticart/internal/store"
)

func draftedOrders(t *testing.T) *store.Orders {
	t.Helper()
	orders := store.NewOrders(nil)
	if err := orders.SetDraft(domain.OrderDraft{OrderID: "42", OrderNumber: "ORD-42", TotalAmount: 15000}); err != nil {
		t.Fatal(err)
	}
	return orders
}

func TestOrderSuccessClearsDraftAfterRender(t *testing.T) {
	orders := draftedOrders(t)
	engine := html.New("../../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	h := &handlers.OrderHandler{Orders: orders}
	app.Get("/order/success", h.Success)

	resp, err := app.Test(httptest.NewRequest("GET", "/order/success", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "ORD-42") {
		t.Fatalf("order number missing from confirmation; body=%s", body)
	}
	if _, ok := orders.Draft(); ok {
		t.Fatal("draft must be consumed after a successful render")
	}
}

func TestOrderSuccessKeepsDraftWhenRenderFails(t *testing.T) {
	orders := draftedOrders(t)
	// engine with no templates: the render fails, the confirmation must survive
	engine := html.New(t.TempDir(), ".html")
	app := fiber.New(fiber.Config{Views: engine})
	h := &handlers.OrderHandler{Orders: orders}
	app.Get("/order/success", h.Success)

	resp, err := app.Test(httptest.NewRequest("GET", "/order/success", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode == 200 {
		t.Fatal("render against an empty template set should not succeed")
	}
	if _, ok := orders.Draft(); !ok {
		t.Fatal("failed render must not consume the draft")
	}
}

func TestOrderSuccessWithoutDraftRedirects(t *testing.T) {
	app := fiber.New()
	h := &handlers.OrderHandler{Orders: store.NewOrders(nil)}
	app.Get("/order/success", h.Success)

	resp, err := app.Test(httptest.NewRequest("GET", "/order/success", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/orders" {
		t.Fatalf("expected redirect to /orders, got %q", loc)
	}
}
