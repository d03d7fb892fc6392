package handlers

import (
	"errors"

	"opticart/internal/backend"
	"opticart/internal/checkout"
	applog "opticart/internal/log"
	"opticart/internal/store"
	"opticart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	API    *backend.Client
	Cart   *store.Cart
	Orders *store.Orders
	Flow   *checkout.Orchestrator
}

func (h *OrderHandler) CheckoutForm(c *fiber.Ctx) error {
	h.Cart.Fetch(c.Context())
	items := h.Cart.Items()
	if len(items) == 0 {
		return c.Redirect("/cart")
	}
	return render(c, "checkout", fiber.Map{
		"Items": items,
		"Total": h.Cart.TotalPrice(),
	})
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	form := checkout.Form{
		Recipient: c.FormValue("recipient"),
		Address1:  c.FormValue("address1"),
		Address2:  c.FormValue("address2"),
		Zip:       c.FormValue("zip"),
		Phone:     c.FormValue("phone"),
		Memo:      c.FormValue("memo"),
	}

	draft, err := h.Flow.Place(c.Context(), form)
	if err != nil {
		var ve *checkout.ValidationError
		if errors.As(err, &ve) {
			applog.Security(c, "validation.fail", map[string]any{"field": ve.Field})
			return c.Status(fiber.StatusBadRequest).Render("checkout", fiber.Map{
				"Items": h.Cart.Items(), "Total": h.Cart.TotalPrice(),
				"Err": ve.Message, "ErrField": ve.Field, "Form": form,
			})
		}
		if errors.Is(err, checkout.ErrEmptyCart) {
			return c.Redirect("/cart")
		}
		applog.Error(c, "order.place.fail", err, nil)
		return c.Status(fiber.StatusBadGateway).Render("checkout", fiber.Map{
			"Items": h.Cart.Items(), "Total": h.Cart.TotalPrice(),
			"Err": "Could not place your order. Nothing was charged, please try again.", "Form": form,
		})
	}

	applog.Audit(c, "order.place", map[string]any{"order_id": draft.OrderID, "total": draft.TotalAmount})
	return c.Redirect("/order/success?orderId=" + draft.OrderID)
}

// Success consumes the order draft: rendered once, then cleared. The clear
// happens only after the render returns, so a failed render keeps the
// confirmation available for a reload.
func (h *OrderHandler) Success(c *fiber.Ctx) error {
	draft, ok := h.Orders.Draft()
	if !ok {
		return c.Redirect("/orders")
	}
	if err := render(c, "order_success", fiber.Map{"Draft": draft}); err != nil {
		return err
	}
	if err := h.Orders.ClearDraft(); err != nil {
		applog.Error(c, "order.draft.clear.fail", err, nil)
	}
	return nil
}

func (h *OrderHandler) History(c *fiber.Ctx) error {
	orders, pg, err := h.API.ListOrders(c.Context(), validate.Page(c.Query("page")), 100)
	if err != nil {
		applog.Error(c, "orders.history.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	return render(c, "order_history", fiber.Map{"Orders": orders, "Page": pg})
}

func (h *OrderHandler) View(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	ord, err := h.API.GetOrder(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	return render(c, "order", fiber.Map{"Order": ord})
}

func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.API.CancelOrder(c.Context(), id); err != nil {
		applog.Error(c, "order.cancel.fail", err, map[string]any{"order_id": id})
		return c.Status(400).SendString("could not cancel order")
	}
	_ = h.Orders.ClearDraft()
	applog.Audit(c, "order.cancel", map[string]any{"order_id": id})
	return c.Redirect("/orders")
}

// Confirm finalizes payment for a pending order. One opaque call; the
// payment provider details live server-side.
func (h *OrderHandler) Confirm(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("orderId"))
	if !ok {
		return c.Status(400).SendString("missing orderId")
	}
	if err := h.API.ConfirmOrder(c.Context(), id); err != nil {
		applog.Error(c, "order.confirm.fail", err, map[string]any{"order_id": id})
		return c.Status(400).SendString("could not confirm payment")
	}
	applog.Audit(c, "order.confirm", map[string]any{"order_id": id})
	return c.Redirect("/orders")
}
