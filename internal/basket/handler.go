package basket

import (
	"github.com/gofiber/fiber/v2"
)

// Handler delegates basket operations to the basket service. The server-side
// basket is the single authoritative store; clients only hold the session id.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/basket/:sessionId", h.getBasket)
	app.Get("/api/basket/:sessionId/summary", h.getSummary)
	app.Post("/api/basket", h.addItem)
	app.Patch("/api/basket/:id", h.setQuantity)
	app.Delete("/api/basket/session/:sessionId", h.clearBasket)
	app.Delete("/api/basket/:id", h.removeItem)
}

type addRequest struct {
	SessionID string  `json:"sessionId"`
	WheelID   string  `json:"wheelId"`
	Size      string  `json:"selectedSize"`
	Finish    string  `json:"selectedFinish"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

func (h *Handler) getBasket(c *fiber.Ctx) error {
	return c.JSON(h.service.Items(c.Params("sessionId")))
}

func (h *Handler) getSummary(c *fiber.Ctx) error {
	return c.JSON(h.service.Summary(c.Params("sessionId")))
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if ves := validateAddPayload(payload); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	item, err := h.service.Add(payload.SessionID, payload.WheelID, payload.Size, payload.Finish, payload.Quantity, payload.UnitPrice)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(item)
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) setQuantity(c *fiber.Ctx) error {
	payload := new(quantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if payload.Quantity <= 0 {
		if err := h.service.Remove(c.Params("id")); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}

	item, err := h.service.SetQuantity(c.Params("id"), payload.Quantity)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "basket item not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(item)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	if err := h.service.Remove(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) clearBasket(c *fiber.Ctx) error {
	if err := h.service.Clear(c.Params("sessionId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func validateAddPayload(p *addRequest) map[string]string {
	errs := map[string]string{}
	if p.SessionID == "" {
		errs["sessionId"] = "sessionId is required"
	}
	if p.WheelID == "" {
		errs["wheelId"] = "wheelId is required"
	}
	if p.Size == "" {
		errs["selectedSize"] = "selectedSize is required"
	}
	if p.Finish == "" {
		errs["selectedFinish"] = "selectedFinish is required"
	}
	if p.Quantity < 1 {
		errs["quantity"] = "quantity must be >= 1"
	}
	if p.UnitPrice < 0 {
		errs["unitPrice"] = "unitPrice must be >= 0"
	}
	return errs
}
