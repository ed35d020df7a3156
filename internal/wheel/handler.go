package wheel

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/wheels", h.getWheels)
	app.Get("/api/wheels/:id", h.getWheel)
	app.Post("/api/wheels", h.createWheel)
}

func (h *Handler) getWheels(c *fiber.Ctx) error {
	f, ves := parseFilter(c)
	if len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}
	return c.JSON(h.service.List(f))
}

func (h *Handler) getWheel(c *fiber.Ctx) error {
	w, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "wheel not found"})
	}
	return c.JSON(w)
}

func (h *Handler) createWheel(c *fiber.Ctx) error {
	w := new(Wheel)
	if err := c.BodyParser(w); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if ves := validateWheelPayload(w); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	created, err := h.service.Create(*w)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// parseFilter decodes the query-string filter spec. Absent params impose no
// constraint; malformed numeric params are validation errors, not silent
// no-ops.
func parseFilter(c *fiber.Ctx) (Filter, map[string]string) {
	ves := map[string]string{}
	f := Filter{
		SortBy:      c.Query("sortBy"),
		InStockOnly: c.Query("inStockOnly") == "true",
	}

	if v := c.Query("brandIds"); v != "" {
		f.BrandIDs = strings.Split(v, ",")
	}
	if v := c.Query("sizes"); v != "" {
		f.Sizes = strings.Split(v, ",")
	}
	if v := c.Query("finishes"); v != "" {
		f.Finishes = strings.Split(v, ",")
	}
	if v := c.Query("minPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			ves["minPrice"] = "minPrice must be a number"
		} else {
			f.MinPrice = &p
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			ves["maxPrice"] = "maxPrice must be a number"
		} else {
			f.MaxPrice = &p
		}
	}
	return f, ves
}

func validateWheelPayload(w *Wheel) map[string]string {
	errs := map[string]string{}
	if w.Name == "" {
		errs["name"] = "name is required"
	}
	if w.BrandID == "" {
		errs["brandId"] = "brandId is required"
	}
	if w.Price < 0 {
		errs["price"] = "price must be >= 0"
	}
	if w.Stock < 0 {
		errs["stock"] = "stock must be >= 0"
	}
	if w.Rating < 0 || w.Rating > 5 {
		errs["rating"] = "rating must be between 0 and 5"
	}
	return errs
}
