package handlers

import (
	"strings"

	applog "opticart/internal/log"
	"opticart/internal/store"
	"opticart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type WishlistHandler struct {
	Marks  *store.Bookmarks
	Notify *store.Notifier
}

func (h *WishlistHandler) List(c *fiber.Ctx) error {
	h.Marks.Fetch(c.Context())
	return render(c, "wishlist", fiber.Map{"Items": h.Marks.Records()})
}

// Toggle flips the bookmark state of one product name. The form carries the
// variant ids the page knew about; the store unions them with the ids it
// remembers server-side.
func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return c.Status(400).SendString("missing name")
	}
	var ids []int
	for _, raw := range strings.Split(c.FormValue("productIds"), ",") {
		if id, ok := validate.ID(raw); ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return c.Status(400).SendString("missing productIds")
	}

	added, err := h.Marks.ToggleByName(c.Context(), name, ids)
	if err != nil {
		applog.Error(c, "wishlist.toggle.fail", err, map[string]any{"name": name})
		h.Notify.Show("Could not update wishlist", name)
	} else if added {
		applog.Audit(c, "wishlist.save", map[string]any{"name": name})
		h.Notify.Show("Saved to wishlist", name)
	} else {
		applog.Audit(c, "wishlist.unsave", map[string]any{"name": name})
		h.Notify.Show("Removed from wishlist", name)
	}

	back := c.Get("Referer")
	if back == "" {
		back = "/wishlist"
	}
	return c.Redirect(back)
}
