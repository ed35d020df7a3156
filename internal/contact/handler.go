package contact

import (
	"log"
	"net/mail"

	"github.com/gofiber/fiber/v2"
)

// Handler validates and acknowledges contact-form and newsletter submissions.
// Nothing is persisted; submissions are logged for the back office to pick up.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/contact", h.submitContact)
	app.Post("/api/newsletter", h.subscribeNewsletter)
}

type contactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Vehicle   string `json:"vehicle"`
	Message   string `json:"message"`
}

func (h *Handler) submitContact(c *fiber.Ctx) error {
	payload := new(contactRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ves := map[string]string{}
	if payload.FirstName == "" {
		ves["firstName"] = "firstName is required"
	}
	if payload.LastName == "" {
		ves["lastName"] = "lastName is required"
	}
	if !validEmail(payload.Email) {
		ves["email"] = "a valid email is required"
	}
	if payload.Message == "" {
		ves["message"] = "message is required"
	}
	if len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	log.Printf("contact form submission from %s %s <%s> (vehicle: %q)",
		payload.FirstName, payload.LastName, payload.Email, payload.Vehicle)

	return c.JSON(fiber.Map{"success": true, "message": "Your message has been sent successfully!"})
}

type newsletterRequest struct {
	Email string `json:"email"`
}

func (h *Handler) subscribeNewsletter(c *fiber.Ctx) error {
	payload := new(newsletterRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if !validEmail(payload.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": map[string]string{"email": "a valid email is required"}})
	}

	log.Printf("newsletter subscription: %s", payload.Email)

	return c.JSON(fiber.Map{"success": true, "message": "Successfully subscribed to newsletter!"})
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}
