package gallery

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func ptrString(s string) *string { return &s }

func makeTestApp() *fiber.App {
	repo := NewInMemoryRepository([]Image{
		{ID: "g1", Vehicle: "BMW M3 Competition", WheelInfo: ptrString("BBS CH-R II 19x9.5"), URL: "/gallery/m3.jpg", Category: "sports"},
		{ID: "g2", Vehicle: "Mercedes-Benz S-Class", URL: "/gallery/s-class.jpg", Category: "luxury"},
		{ID: "g3", Vehicle: "Porsche 911 GT3", URL: "/gallery/gt3.jpg", Category: "sports"},
	})
	app := fiber.New()
	NewHandler(NewService(repo)).RegisterPublicRoutes(app)
	return app
}

func TestGetGallery_All(t *testing.T) {
	app := makeTestApp()

	for _, url := range []string{"/api/gallery", "/api/gallery?category=all"} {
		req := httptest.NewRequest("GET", url, nil)
		res, _ := app.Test(req)
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("%s: expected 200, got %d", url, res.StatusCode)
		}
		body, _ := io.ReadAll(res.Body)
		if !strings.Contains(string(body), "g1") || !strings.Contains(string(body), "g2") || !strings.Contains(string(body), "g3") {
			t.Fatalf("%s: expected all images, got %s", url, string(body))
		}
	}
}

func TestGetGallery_CategoryFilter(t *testing.T) {
	app := makeTestApp()

	req := httptest.NewRequest("GET", "/api/gallery?category=sports", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if strings.Contains(string(body), "S-Class") {
		t.Fatalf("luxury image leaked into sports filter: %s", string(body))
	}
	if !strings.Contains(string(body), "GT3") {
		t.Fatalf("expected GT3 in sports category, got %s", string(body))
	}
}

func TestCreateImage_Validation(t *testing.T) {
	app := makeTestApp()

	req := httptest.NewRequest("POST", "/api/gallery", strings.NewReader(`{"category":"sports"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "vehicle") || !strings.Contains(string(body), "image") {
		t.Fatalf("expected errors naming vehicle and image, got %s", string(body))
	}
}
