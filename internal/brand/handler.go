package brand

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
	app.Get("/api/brands", h.getBrands)
	app.Get("/api/brands/:id", h.getBrand)
	app.Post("/api/brands", h.createBrand)
}

func (h *Handler) getBrands(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getBrand(c *fiber.Ctx) error {
	b, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "brand not found"})
	}
	return c.JSON(b)
}

func (h *Handler) createBrand(c *fiber.Ctx) error {
	b := new(Brand)
	if err := c.BodyParser(b); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if b.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": map[string]string{"name": "name is required"}})
	}

	created, err := h.service.Create(*b)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
