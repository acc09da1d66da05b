package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	return resp.StatusCode
}

func TestHandleAnalyze_Validation(t *testing.T) {
	app := fiber.New()
	app.Post("/analyze", HandleAnalyze)

	// Missing fields are rejected before the prediction core is invoked.
	if code := postJSON(t, app, "/analyze", `{}`); code != 400 {
		t.Fatalf("expected 400 for empty body, got %d", code)
	}
	if code := postJSON(t, app, "/analyze", `{"product":"Milk 1L","season":"Summer"}`); code != 400 {
		t.Fatalf("expected 400 for missing stock, got %d", code)
	}
	if code := postJSON(t, app, "/analyze", `{"product":"Milk 1L","stock":10}`); code != 400 {
		t.Fatalf("expected 400 for missing season, got %d", code)
	}
	if code := postJSON(t, app, "/analyze", `{"season":"Summer","stock":10}`); code != 400 {
		t.Fatalf("expected 400 for missing product, got %d", code)
	}

	// Negative and non-integer stock are caller-side validation errors.
	if code := postJSON(t, app, "/analyze", `{"product":"Milk 1L","season":"Summer","stock":-1}`); code != 400 {
		t.Fatalf("expected 400 for negative stock, got %d", code)
	}
	if code := postJSON(t, app, "/analyze", `{"product":"Milk 1L","season":"Summer","stock":"ten"}`); code != 400 {
		t.Fatalf("expected 400 for non-integer stock, got %d", code)
	}
}

func TestHandleChat_Validation(t *testing.T) {
	app := fiber.New()
	app.Post("/chat", HandleChat)

	if code := postJSON(t, app, "/chat", `{"message":""}`); code != 400 {
		t.Fatalf("expected 400 for empty message, got %d", code)
	}
	if code := postJSON(t, app, "/chat", `{"message":"   "}`); code != 400 {
		t.Fatalf("expected 400 for whitespace-only message, got %d", code)
	}
}
