package handlers

import (
	"strconv"
	"strings"

	"opticart/internal/backend"
	applog "opticart/internal/log"
	"opticart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	API *backend.Client
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	return render(c, "admin_dashboard", fiber.Map{})
}

// GET /admin/users
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	users, pg, err := h.API.AdminListUsers(c.Context(), validate.Page(c.Query("page")))
	if err != nil {
		applog.Error(c, "admin.users.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load users"})
	}
	return render(c, "admin_users", fiber.Map{"Users": users, "Page": pg})
}

// POST /admin/users/:id/delete
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.API.AdminDeleteUser(c.Context(), id); err != nil {
		applog.Error(c, "admin.users.delete.fail", err, map[string]any{"user_id": id})
		return c.Status(400).SendString("could not delete user")
	}
	applog.Audit(c, "admin.users.delete", map[string]any{"user_id": id})
	return c.Redirect("/admin/users")
}

// GET /admin/categories
func (h *AdminHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.API.ListCategories(c.Context())
	if err != nil {
		applog.Error(c, "admin.categories.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load categories"})
	}
	return render(c, "admin_categories", fiber.Map{"Categories": cats})
}

// POST /admin/categories
func (h *AdminHandler) SaveCategory(c *fiber.Ctx) error {
	name, okN := validate.Name(c.FormValue("name"))
	path, okP := validate.CategoryPath(c.FormValue("path"))
	if !okN || !okP {
		return c.Status(400).SendString("invalid input")
	}
	in := backend.CategoryInput{Name: name, Path: path}
	var err error
	if raw := c.FormValue("id"); raw != "" {
		var id int
		if id, _ = validate.ID(raw); id == 0 {
			return c.Status(400).SendString("invalid id")
		}
		err = h.API.AdminUpdateCategory(c.Context(), id, in)
	} else {
		err = h.API.AdminCreateCategory(c.Context(), in)
	}
	if err != nil {
		applog.Error(c, "admin.categories.save.fail", err, map[string]any{"path": path})
		return c.Status(400).SendString("could not save category")
	}
	applog.Audit(c, "admin.categories.save", map[string]any{"path": path})
	return c.Redirect("/admin/categories")
}

// POST /admin/categories/:id/delete
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.API.AdminDeleteCategory(c.Context(), id); err != nil {
		applog.Error(c, "admin.categories.delete.fail", err, map[string]any{"category": id})
		return c.Status(400).SendString("could not delete category")
	}
	applog.Audit(c, "admin.categories.delete", map[string]any{"category": id})
	return c.Redirect("/admin/categories")
}

// GET /admin/products
func (h *AdminHandler) Products(c *fiber.Ctx) error {
	products, pg, err := h.API.ListProducts(c.Context(), backend.ProductQuery{
		Page: validate.Page(c.Query("page")), Limit: 20,
	})
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load products"})
	}
	return render(c, "admin_products", fiber.Map{"Products": products, "Page": pg})
}

// POST /admin/products. Multipart form with optional image files.
func (h *AdminHandler) SaveProduct(c *fiber.Ctx) error {
	name, okN := validate.Name(c.FormValue("name"))
	price, perr := strconv.Atoi(c.FormValue("price"))
	stock, serr := strconv.Atoi(c.FormValue("stock"))
	catPath, okC := validate.CategoryPath(c.FormValue("category"))
	if !okN || !okC || perr != nil || price < 0 || serr != nil || stock < 0 {
		return c.Status(400).SendString("invalid input")
	}

	images := []string{}
	if existing := strings.TrimSpace(c.FormValue("images")); existing != "" {
		images = strings.Split(existing, ",")
	}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["images"] {
			f, err := fh.Open()
			if err != nil {
				continue
			}
			url, uerr := h.API.Upload(c.Context(), fh.Filename, f)
			f.Close()
			if uerr != nil {
				applog.Error(c, "admin.products.upload.fail", uerr, map[string]any{"file": fh.Filename})
				return c.Status(400).SendString("could not upload image")
			}
			images = append(images, url)
		}
	}

	in := backend.ProductInput{
		Name:        name,
		Description: c.FormValue("description"),
		Price:       price,
		Color:       c.FormValue("color"),
		Material:    c.FormValue("material"),
		Category:    catPath,
		Images:      images,
		Stock:       stock,
	}
	var err error
	if raw := c.FormValue("id"); raw != "" {
		var id int
		if id, _ = validate.ID(raw); id == 0 {
			return c.Status(400).SendString("invalid id")
		}
		err = h.API.AdminUpdateProduct(c.Context(), id, in)
	} else {
		err = h.API.AdminCreateProduct(c.Context(), in)
	}
	if err != nil {
		applog.Error(c, "admin.products.save.fail", err, map[string]any{"name": name})
		return c.Status(400).SendString("could not save product")
	}
	applog.Audit(c, "admin.products.save", map[string]any{"name": name})
	return c.Redirect("/admin/products")
}

// POST /admin/products/:id/delete
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.API.AdminDeleteProduct(c.Context(), id); err != nil {
		applog.Error(c, "admin.products.delete.fail", err, map[string]any{"product": id})
		return c.Status(400).SendString("could not delete product")
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"product": id})
	return c.Redirect("/admin/products")
}

// GET /admin/inquiries
func (h *AdminHandler) Inquiries(c *fiber.Ctx) error {
	inqs, pg, err := h.API.AdminListInquiries(c.Context(), validate.Page(c.Query("page")))
	if err != nil {
		applog.Error(c, "admin.inquiries.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load inquiries"})
	}
	return render(c, "admin_inquiries", fiber.Map{"Inquiries": inqs, "Page": pg})
}

// POST /admin/inquiries/:id/answer
func (h *AdminHandler) AnswerInquiry(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	answer := strings.TrimSpace(c.FormValue("answer"))
	if !ok || answer == "" {
		return c.Status(400).SendString("missing id or answer")
	}
	if err := h.API.AdminAnswerInquiry(c.Context(), id, answer); err != nil {
		applog.Error(c, "admin.inquiries.answer.fail", err, map[string]any{"inquiry": id})
		return c.Status(400).SendString("could not save answer")
	}
	applog.Audit(c, "admin.inquiries.answer", map[string]any{"inquiry": id})
	return c.Redirect("/admin/inquiries")
}
