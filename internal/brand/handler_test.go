package brand

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func ptrString(s string) *string { return &s }

func makeTestApp() *fiber.App {
	repo := NewInMemoryRepository([]Brand{
		{ID: "b1", Name: "BBS", Description: ptrString("Premium German wheel manufacturer")},
		{ID: "b2", Name: "Enkei"},
	})
	app := fiber.New()
	NewHandler(NewService(repo)).RegisterPublicRoutes(app)
	return app
}

func TestGetBrands(t *testing.T) {
	app := makeTestApp()

	req := httptest.NewRequest("GET", "/api/brands", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "BBS") || !strings.Contains(string(body), "Enkei") {
		t.Fatalf("unexpected body: %s", string(body))
	}
}

func TestGetBrand_NotFound(t *testing.T) {
	app := makeTestApp()

	req := httptest.NewRequest("GET", "/api/brands/missing", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestCreateBrand_RequiresName(t *testing.T) {
	app := makeTestApp()

	req := httptest.NewRequest("POST", "/api/brands", strings.NewReader(`{"description":"no name"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "name") {
		t.Fatalf("expected error naming the name field, got %s", string(body))
	}
}

func TestCreateBrand_OK(t *testing.T) {
	app := makeTestApp()

	req := httptest.NewRequest("POST", "/api/brands", strings.NewReader(`{"name":"Rays"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), `"id":`) {
		t.Fatalf("expected generated id in response, got %s", string(body))
	}
}
