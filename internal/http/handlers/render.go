package handlers

import "github.com/gofiber/fiber/v2"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Inject user and the notification slot if present
	if u := c.Locals("user"); u != nil {
		data["User"] = u
	}
	if n := c.Locals("notice"); n != nil {
		data["Notice"] = n
	}
	if cnt := c.Locals("cartCount"); cnt != nil {
		data["CartCount"] = cnt
	}
	// Pick up the token the CSRF middleware put into Locals
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}
