package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"opticart/internal/backend"
	"opticart/internal/config"
	"opticart/internal/http/handlers"
	applog "opticart/internal/log"
	"opticart/internal/state"
	"opticart/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	persisted, err := state.Open(cfg.StateDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer persisted.Close()

	// Stores + gateway. The session store feeds the gateway its bearer token.
	sess := store.NewSession(persisted)
	api := backend.New(cfg.APIBase, cfg.APIKey, sess)
	cart := store.NewCart(api, persisted)
	marks := store.NewBookmarks(api)
	orders := store.NewOrders(persisted)
	notify := store.NewNotifier()

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard (multipart product images go to /uploads)
	app.Server().MaxRequestBodySize = 8 << 20 // 8 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Expose store snapshots to templates
	app.Use(func(c *fiber.Ctx) error {
		if cur := sess.Current(); cur.LoggedIn() {
			c.Locals("user", cur.User)
		}
		c.Locals("cartCount", cart.TotalCount())
		c.Locals("notice", notify.Snapshot())
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/media/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	mediaDir := cfg.MediaDir
	if !filepath.IsAbs(mediaDir) {
		if abs, err := filepath.Abs(mediaDir); err == nil {
			mediaDir = abs
		}
	}
	app.Static("/static", "./web/static")
	app.Static("/media", mediaDir)

	// ---------- App handlers ----------
	deps := handlers.NewDeps(api, sess, cart, marks, orders, notify)

	// Public pages
	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/search", limiter.New(limiter.Config{Max: 20, Expiration: time.Minute}), deps.CatalogHandler.Search)
	app.Get("/category/:path", deps.CatalogHandler.Category)

	// Product pages
	app.Get("/product", func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	})
	app.Get("/product/:id", deps.CatalogHandler.Detail)

	// Notification slot
	app.Get("/api/v1/notice", deps.NoticeHandler.State)
	app.Post("/notice/dismiss", deps.NoticeHandler.Dismiss)

	// Cart
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/update", deps.CartHandler.UpdateQuantity)
	app.Post("/cart/delete", deps.CartHandler.Remove)

	// Checkout & orders
	app.Get("/checkout", handlers.RequireUser(sess), deps.OrderHandler.CheckoutForm)
	app.Post("/orders", handlers.RequireUser(sess), deps.OrderHandler.Place)
	app.Get("/order/success", handlers.RequireUser(sess), deps.OrderHandler.Success)
	app.Get("/order/:id", handlers.RequireUser(sess), deps.OrderHandler.View)
	app.Post("/order/:id/cancel", handlers.RequireUser(sess), deps.OrderHandler.Cancel)
	app.Post("/orders/confirm", handlers.RequireUser(sess), deps.OrderHandler.Confirm)
	app.Get("/orders", handlers.RequireUser(sess), deps.OrderHandler.History)

	// Wishlist
	app.Get("/wishlist", deps.WishlistHandler.List)
	app.Post("/wishlist/toggle", deps.WishlistHandler.Toggle)

	// Auth routes (login throttled)
	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), deps.AuthHandler.Login)
	app.Get("/register", deps.AuthHandler.RegisterForm)
	app.Post("/register", deps.AuthHandler.Register)
	app.Post("/logout", deps.AuthHandler.Logout)
	app.Get("/profile", handlers.RequireUser(sess), deps.AuthHandler.ProfileForm)
	app.Post("/profile", handlers.RequireUser(sess), deps.AuthHandler.UpdateProfile)

	// Admin console
	admin := app.Group("/admin", handlers.RequireAdmin(sess))
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Get("/users", deps.AdminHandler.Users)
	admin.Post("/users/:id/delete", deps.AdminHandler.DeleteUser)
	admin.Get("/categories", deps.AdminHandler.Categories)
	admin.Post("/categories", deps.AdminHandler.SaveCategory)
	admin.Post("/categories/:id/delete", deps.AdminHandler.DeleteCategory)
	admin.Get("/products", deps.AdminHandler.Products)
	admin.Post("/products", deps.AdminHandler.SaveProduct)
	admin.Post("/products/:id/delete", deps.AdminHandler.DeleteProduct)
	admin.Get("/inquiries", deps.AdminHandler.Inquiries)
	admin.Post("/inquiries/:id/answer", deps.AdminHandler.AnswerInquiry)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
