package transaction

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/willson-financial/internal/auth"
)

type Handler struct {
	service *Service
}

type transactionRequest struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/clients/:id<int>/transactions", h.getStatement)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/clients/:id<int>/transactions", auth.Require, h.recordTransaction)
}

func (h *Handler) getStatement(c *fiber.Ctx) error {
	clientID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid client id"})
	}
	st, err := h.service.Statement(c.UserContext(), clientID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(st)
}

func (h *Handler) recordTransaction(c *fiber.Ctx) error {
	clientID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid client id"})
	}
	payload := new(transactionRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	in := Transaction{Amount: payload.Amount, Type: payload.Type}
	if payload.Date != "" {
		d, err := time.Parse("2006-01-02", payload.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "date must be YYYY-MM-DD"})
		}
		in.Date = d
	}

	created, err := h.service.Record(c.UserContext(), clientID, in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func fail(c *fiber.Ctx, err error) error {
	switch err {
	case ErrUnknownClient:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case ErrInvalidType, ErrInvalidAmount:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
