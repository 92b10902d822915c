package schema

import (
	"github.com/gofiber/fiber/v2"
)

// Handler exposes schema maintenance for development databases.
type Handler struct {
	db    txBeginner
	allow bool
}

// NewHandler returns a handler whose reset endpoint is refused unless allow is set.
func NewHandler(db txBeginner, allow bool) *Handler {
	return &Handler{db: db, allow: allow}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/dev/reset", h.reset)
}

// reset drops, recreates and reseeds the four tables.
func (h *Handler) reset(c *fiber.Ctx) error {
	if !h.allow {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "not allowed"})
	}
	if err := Initialize(c.UserContext(), h.db); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"tables": len(createStatements), "seeded": len(seedStatements)})
}
