package testimonial

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/testimonials", h.getTestimonials)
	app.Post("/api/testimonials", h.createTestimonial)
}

func (h *Handler) getTestimonials(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

type createRequest struct {
	Name     string  `json:"name"`
	Location *string `json:"location"`
	Rating   *int    `json:"rating"`
	Comment  string  `json:"comment"`
	Avatar   *string `json:"avatar"`
	Vehicle  *string `json:"vehicle"`
}

func (h *Handler) createTestimonial(c *fiber.Ctx) error {
	payload := new(createRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ves := map[string]string{}
	if payload.Name == "" {
		ves["name"] = "name is required"
	}
	if payload.Comment == "" {
		ves["comment"] = "comment is required"
	}
	if payload.Rating != nil && (*payload.Rating < 0 || *payload.Rating > 5) {
		ves["rating"] = "rating must be between 0 and 5"
	}
	if len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	// an omitted rating defaults to 5, matching the seeded reviews
	rating := 5
	if payload.Rating != nil {
		rating = *payload.Rating
	}

	created, err := h.service.Create(Testimonial{
		Name:     payload.Name,
		Location: payload.Location,
		Rating:   rating,
		Comment:  payload.Comment,
		Avatar:   payload.Avatar,
		Vehicle:  payload.Vehicle,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
