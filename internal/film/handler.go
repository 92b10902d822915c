package film

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/films", h.getFilms)
	app.Get("/api/v1/studios", h.getStudios)
	app.Get("/api/v1/genres", h.getGenres)
}

// getFilms returns the joined film list, or the films shorter than
// ?maxRuntime= minutes when given.
func (h *Handler) getFilms(c *fiber.Ctx) error {
	if v := c.Query("maxRuntime"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid maxRuntime"})
		}
		films, err := h.repo.ShortFilms(c.UserContext(), limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		return c.JSON(films)
	}

	details, err := h.repo.Details(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(details)
}

func (h *Handler) getStudios(c *fiber.Ctx) error {
	studios, err := h.repo.Studios(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(studios)
}

func (h *Handler) getGenres(c *fiber.Ctx) error {
	genres, err := h.repo.Genres(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(genres)
}
