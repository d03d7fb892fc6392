package handlers

import (
	applog "opticart/internal/log"
	"opticart/internal/store"
	"opticart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart   *store.Cart
	Notify *store.Notifier
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	h.Cart.Fetch(c.Context())
	return render(c, "cart", fiber.Map{
		"Items": h.Cart.Items(),
		"Count": h.Cart.TotalCount(),
		"Total": h.Cart.TotalPrice(),
	})
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))
	name := c.FormValue("name")
	if err := h.Cart.Add(c.Context(), pid, qty); err != nil {
		return c.Status(500).SendString("Could not add to cart")
	}
	h.Notify.Show("Added to cart", name)
	applog.Audit(c, "cart.add", map[string]any{"product": pid, "qty": qty})
	back := c.Get("Referer")
	if back == "" {
		back = "/cart"
	}
	return c.Redirect(back)
}

func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	lineID, ok := validate.ID(c.FormValue("itemId"))
	if !ok {
		return c.Status(400).SendString("missing itemId")
	}
	qty := validate.Qty(c.FormValue("qty"))
	if err := h.Cart.UpdateQuantity(c.Context(), lineID, qty); err != nil {
		h.Notify.Show("Could not update quantity", nil)
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	lineID, ok := validate.ID(c.FormValue("itemId"))
	if !ok {
		return c.Status(400).SendString("missing itemId")
	}
	if err := h.Cart.Remove(c.Context(), lineID); err != nil {
		h.Notify.Show("Could not remove item", nil)
	} else {
		applog.Audit(c, "cart.remove", map[string]any{"line": lineID})
	}
	return c.Redirect("/cart")
}
