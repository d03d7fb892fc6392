package handlers

import (
	"errors"

	"opticart/internal/backend"
	applog "opticart/internal/log"
	"opticart/internal/store"
	"opticart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	API     *backend.Client
	Session *store.Session
	Cart    *store.Cart
	Marks   *store.Bookmarks
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password"})
	}
	pass := c.FormValue("password")

	token, user, err := h.API.Login(c.Context(), email, pass)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		msg := "Invalid email or password"
		var ae *backend.APIError
		if errors.As(err, &ae) && ae.Status >= 500 {
			msg = "Login is temporarily unavailable. Please try again."
		}
		return c.Status(401).Render("login", fiber.Map{"Err": msg})
	}
	if err := h.Session.Login(token, user); err != nil {
		applog.Error(c, "auth.session.persist.fail", err, nil)
	}

	// warm the per-user stores now that the token is in place
	h.Cart.Fetch(c.Context())
	h.Marks.Fetch(c.Context())

	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	email, okE := validate.Email(c.FormValue("email"))
	name, okN := validate.Name(c.FormValue("name"))
	phone, okP := validate.Phone(c.FormValue("phone"))
	pass := c.FormValue("password")
	if !okE || !okN || !okP || !validate.Password(pass) {
		return c.Status(400).Render("register", fiber.Map{"Err": "Please check the highlighted fields"})
	}
	err := h.API.Register(c.Context(), backend.RegisterRequest{
		Email: email, Password: pass, Name: name, Phone: phone,
	})
	if err != nil {
		applog.Error(c, "auth.register.fail", err, map[string]any{"email": email})
		var ae *backend.APIError
		if errors.As(err, &ae) {
			return c.Status(ae.Status).Render("register", fiber.Map{"Err": ae.Message})
		}
		return c.Status(500).Render("register", fiber.Map{"Err": "Could not create your account. Please try again."})
	}
	applog.Audit(c, "auth.register", map[string]any{"email": email})
	return c.Redirect("/login")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	_ = h.Session.Logout()
	h.Cart.Clear()
	applog.Audit(c, "auth.logout", nil)
	return c.Redirect("/")
}

func (h *AuthHandler) ProfileForm(c *fiber.Ctx) error {
	return render(c, "profile", fiber.Map{"Err": ""})
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	name, okN := validate.Name(c.FormValue("name"))
	phone, okP := validate.Phone(c.FormValue("phone"))
	if !okN || !okP {
		return c.Status(400).Render("profile", fiber.Map{"Err": "Please check the highlighted fields"})
	}
	u, err := h.API.UpdateProfile(c.Context(), backend.ProfileUpdate{Name: name, Phone: phone})
	if err != nil {
		applog.Error(c, "profile.update.fail", err, nil)
		return c.Status(400).Render("profile", fiber.Map{"Err": "Could not update your profile"})
	}
	if err := h.Session.SetUser(u); err != nil {
		applog.Error(c, "auth.session.persist.fail", err, nil)
	}
	applog.Audit(c, "profile.update", nil)
	return c.Redirect("/profile")
}
