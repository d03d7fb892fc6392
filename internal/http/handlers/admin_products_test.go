package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"

	"opticart/internal/backend"
	"opticart/internal/http/handlers"
)

func saveProductApp(t *testing.T) (*atomic.Int32, *fiber.App) {
	t.Helper()
	var saves atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /admin/products", func(w http.ResponseWriter, r *http.Request) {
		saves.Add(1)
		w.Write([]byte(`{}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	app := fiber.New()
	h := &handlers.AdminHandler{API: backend.New(srv.URL, "test-key", nil)}
	app.Post("/admin/products", h.SaveProduct)
	return &saves, app
}

func postForm(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", "/admin/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestSaveProductRejectsMalformedStock(t *testing.T) {
	saves, app := saveProductApp(t)

	resp := postForm(t, app, "name=Aviator+Gold&price=1000&category=sunglasses&stock=abc")

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if saves.Load() != 0 {
		t.Fatal("malformed stock must not reach the backend")
	}
}

func TestSaveProductRejectsNegativeStock(t *testing.T) {
	saves, app := saveProductApp(t)

	resp := postForm(t, app, "name=Aviator+Gold&price=1000&category=sunglasses&stock=-1")

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if saves.Load() != 0 {
		t.Fatal("negative stock must not reach the backend")
	}
}

func TestSaveProductAcceptsValidStock(t *testing.T) {
	saves, app := saveProductApp(t)

	resp := postForm(t, app, "name=Aviator+Gold&price=1000&category=sunglasses&stock=12")

	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if saves.Load() != 1 {
		t.Fatalf("expected 1 save call, got %d", saves.Load())
	}
}
