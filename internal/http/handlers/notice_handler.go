package handlers

import (
	"opticart/internal/store"

	"github.com/gofiber/fiber/v2"
)

type NoticeHandler struct {
	Notify *store.Notifier
}

// State lets the page poll the notification slot without a reload.
func (h *NoticeHandler) State(c *fiber.Ctx) error {
	n := h.Notify.Snapshot()
	return c.JSON(fiber.Map{"open": n.Open, "message": n.Message, "item": n.Item})
}

// Dismiss closes the slot before the auto-hide fires.
func (h *NoticeHandler) Dismiss(c *fiber.Ctx) error {
	h.Notify.Hide()
	back := c.Get("Referer")
	if back == "" {
		back = "/"
	}
	return c.Redirect(back)
}
