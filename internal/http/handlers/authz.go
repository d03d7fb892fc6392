package handlers

import (
	applog "opticart/internal/log"
	"opticart/internal/store"

	"github.com/gofiber/fiber/v2"
)

func RequireAdmin(sess *store.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cur := sess.Current()
		if !cur.LoggedIn() {
			return c.Redirect("/login")
		}
		if !cur.IsAdmin() {
			applog.Security(c, "access.denied.admin", map[string]any{"user": cur.User.Email})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		c.Locals("user", cur.User)
		return c.Next()
	}
}

// RequireUser enforces that a user is logged in; otherwise redirect to login.
func RequireUser(sess *store.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cur := sess.Current()
		if !cur.LoggedIn() {
			return c.Redirect("/login")
		}
		c.Locals("user", cur.User)
		return c.Next()
	}
}
