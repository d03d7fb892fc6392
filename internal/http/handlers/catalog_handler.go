package handlers

import (
	"strings"

	"opticart/internal/backend"
	applog "opticart/internal/log"
	"opticart/internal/store"
	"opticart/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	API   *backend.Client
	Marks *store.Bookmarks
}

func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	cats, err := h.API.ListCategories(c.Context())
	if err != nil {
		applog.Error(c, "home.categories.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load the store. Please retry."})
	}
	products, _, err := h.API.ListProducts(c.Context(), backend.ProductQuery{Page: 1, Limit: 12, Sort: "newest"})
	if err != nil {
		applog.Error(c, "home.products.fail", err, nil)
	}
	return render(c, "home", fiber.Map{"Categories": cats, "Products": products})
}

func (h *CatalogHandler) Category(c *fiber.Ctx) error {
	path, ok := validate.CategoryPath(c.Params("path"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Category not found"})
	}
	pageNum := validate.Page(c.Query("page"))
	products, pg, err := h.API.CategoryProducts(c.Context(), path, pageNum)
	if err != nil {
		applog.Error(c, "category.list.fail", err, map[string]any{"path": path})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Category not found"})
	}
	return render(c, "category", fiber.Map{"Path": path, "Products": products, "Page": pg})
}

func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, err := h.API.GetProduct(c.Context(), id)
	if err != nil || p.ID == 0 {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	// variants share the display name; the wishlist toggle needs all their ids
	variants, _, verr := h.API.ListProducts(c.Context(), backend.ProductQuery{Keyword: p.Name, Limit: 20})
	if verr != nil {
		applog.Error(c, "product.variants.fail", verr, map[string]any{"product": id})
	}
	variantIDs := make([]int, 0, len(variants))
	for _, v := range variants {
		if v.Name == p.Name {
			variantIDs = append(variantIDs, v.ID)
		}
	}
	return render(c, "product", fiber.Map{
		"P":          p,
		"Variants":   variants,
		"VariantIDs": variantIDs,
		"Bookmarked": h.Marks.IsBookmarked(p.Name),
	})
}

func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if strings.TrimSpace(rawQ) == "" {
		// Initial page load: show empty search without errors
		return render(c, "search", fiber.Map{"Q": "", "Products": []any{}, "Count": 0})
	}
	q, ok := validate.Q(rawQ)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		return c.Status(fiber.StatusBadRequest).Render("search", fiber.Map{
			"Q": "", "Products": []any{}, "Count": 0, "Err": "Enter a valid keyword (letters/numbers only)",
		})
	}
	sort := strings.TrimSpace(c.Query("sort"))
	category := strings.TrimSpace(c.Query("category"))
	products, pg, err := h.API.ListProducts(c.Context(), backend.ProductQuery{
		Page: validate.Page(c.Query("page")), Limit: 20,
		Category: category, Sort: sort, Keyword: q,
	})
	if err != nil {
		applog.Error(c, "search.error", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load results. Please retry."})
	}
	return render(c, "search", fiber.Map{
		"Q": q, "Category": category, "Sort": sort,
		"Products": products, "Count": len(products), "Page": pg,
	})
}
