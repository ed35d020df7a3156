package contact

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeTestApp() *fiber.App {
	app := fiber.New()
	NewHandler().RegisterPublicRoutes(app)
	return app
}

func TestSubmitContact_Validation(t *testing.T) {
	app := makeTestApp()

	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	for _, field := range []string{"firstName", "lastName", "email", "message"} {
		if !strings.Contains(string(body), field) {
			t.Fatalf("expected validation error naming %q, got %s", field, string(body))
		}
	}
}

func TestSubmitContact_OK(t *testing.T) {
	app := makeTestApp()

	payload := `{"firstName":"James","lastName":"Mitchell","email":"james@example.com","vehicle":"BMW M3","message":"Looking for 19s"}`
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), `"success":true`) {
		t.Fatalf("expected success acknowledgement, got %s", string(body))
	}
}

func TestNewsletter(t *testing.T) {
	app := makeTestApp()

	req := httptest.NewRequest("POST", "/api/newsletter", strings.NewReader(`{"email":"bogus"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("POST", "/api/newsletter", strings.NewReader(`{"email":"sarah@example.com"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	body, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(body), "subscribed") {
		t.Fatalf("expected subscription acknowledgement, got %s", string(body))
	}
}
