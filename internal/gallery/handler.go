package gallery

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
	app.Get("/api/gallery", h.getGallery)
	app.Post("/api/gallery", h.createImage)
}

func (h *Handler) getGallery(c *fiber.Ctx) error {
	return c.JSON(h.service.List(c.Query("category")))
}

func (h *Handler) createImage(c *fiber.Ctx) error {
	img := new(Image)
	if err := c.BodyParser(img); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ves := map[string]string{}
	if img.Vehicle == "" {
		ves["vehicle"] = "vehicle is required"
	}
	if img.URL == "" {
		ves["image"] = "image is required"
	}
	if len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	if img.Category == "" {
		img.Category = "all"
	}

	created, err := h.service.Create(*img)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
