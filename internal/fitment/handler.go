package fitment

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/velocitywheels/wheel-shop-backend/internal/wheel"
)

// Handler delegates fitment operations to the fitment service.
// It also needs the wheel service to classify compatibility for a wheel id.
type Handler struct {
	service      *Service
	wheelService wheel.ServiceInterface
}

func NewHandler(s *Service, ws wheel.ServiceInterface) *Handler {
	return &Handler{service: s, wheelService: ws}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/fitments", h.getFitments)
	app.Get("/api/fitments/check", h.checkFitment)
	app.Post("/api/fitments", h.createFitment)
	app.Get("/api/vehicles/makes", h.getMakes)
	app.Get("/api/vehicles/:make/models", h.getModels)
	app.Get("/api/vehicles/:make/:model/years", h.getYears)
}

func (h *Handler) getFitments(c *fiber.Ctx) error {
	make := c.Query("make")
	if make == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": map[string]string{"make": "make is required"}})
	}

	year, ves := parseYear(c.Query("year"))
	if len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	return c.JSON(h.service.Search(make, c.Query("model"), year))
}

// checkFitment classifies a wheel against the selected vehicle and responds
// with {"fit": "direct"|"spacers"|"unknown"}.
func (h *Handler) checkFitment(c *fiber.Ctx) error {
	ves := map[string]string{}
	make := c.Query("make")
	if make == "" {
		ves["make"] = "make is required"
	}
	wheelID := c.Query("wheelId")
	if wheelID == "" {
		ves["wheelId"] = "wheelId is required"
	}
	year, yves := parseYear(c.Query("year"))
	for k, v := range yves {
		ves[k] = v
	}
	if len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	w, err := h.wheelService.GetByID(wheelID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "wheel not found"})
	}

	fit := h.service.Classify(make, c.Query("model"), year, w.PCD)
	return c.JSON(fiber.Map{"fit": fit})
}

func (h *Handler) createFitment(c *fiber.Ctx) error {
	f := new(Fitment)
	if err := c.BodyParser(f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ves := map[string]string{}
	if f.Make == "" {
		ves["make"] = "make is required"
	}
	if f.Model == "" {
		ves["model"] = "model is required"
	}
	if f.Year <= 0 {
		ves["year"] = "year must be positive"
	}
	if len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(*f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) getMakes(c *fiber.Ctx) error {
	return c.JSON(h.service.Makes())
}

func (h *Handler) getModels(c *fiber.Ctx) error {
	return c.JSON(h.service.Models(c.Params("make")))
}

func (h *Handler) getYears(c *fiber.Ctx) error {
	return c.JSON(h.service.Years(c.Params("make"), c.Params("model")))
}

func parseYear(v string) (*int, map[string]string) {
	if v == "" {
		return nil, nil
	}
	y, err := strconv.Atoi(v)
	if err != nil {
		return nil, map[string]string{"year": "year must be an integer"}
	}
	return &y, nil
}
