package client

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/willson-financial/internal/auth"
)

type Handler struct {
	service *Service
}

type clientRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	CreatedDate string `json:"createdDate"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/clients", h.getClients)
	app.Get("/api/v1/clients/:id<int>", h.getClient)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/clients", auth.Require, h.createClient)
	app.Put("/api/v1/clients/:id<int>", auth.Require, h.updateClient)
	app.Delete("/api/v1/clients/:id<int>", auth.Require, h.deleteClient)
}

func (h *Handler) getClients(c *fiber.Ctx) error {
	clients, err := h.service.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(clients)
}

func (h *Handler) getClient(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid client id"})
	}

	cl, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(cl)
}

func (h *Handler) createClient(c *fiber.Ctx) error {
	payload := new(clientRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	in := Client{FirstName: payload.FirstName, LastName: payload.LastName, Email: payload.Email}
	if payload.CreatedDate != "" {
		d, err := time.Parse("2006-01-02", payload.CreatedDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "createdDate must be YYYY-MM-DD"})
		}
		in.CreatedDate = d
	}

	created, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateClient(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid client id"})
	}
	payload := new(clientRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(c.UserContext(), id, Client{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) deleteClient(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid client id"})
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "client not found"})
	case ErrEmailExists:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "email already exists"})
	case ErrMissingFields:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
