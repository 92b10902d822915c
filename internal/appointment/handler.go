package appointment

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/willson-financial/internal/auth"
)

const dateLayout = "2006-01-02 15:04:05"

type Handler struct {
	service *Service
}

type appointmentRequest struct {
	Date       string `json:"date"`
	ClientID   int    `json:"clientId"`
	EmployeeID int    `json:"employeeId"`
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/appointments", h.getAppointments)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/appointments", auth.Require, h.bookAppointment)
}

// getAppointments lists every appointment, or one client's with ?clientId=.
func (h *Handler) getAppointments(c *fiber.Ctx) error {
	var (
		appts []Appointment
		err   error
	)
	if v := c.Query("clientId"); v != "" {
		id, convErr := strconv.Atoi(v)
		if convErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid clientId"})
		}
		appts, err = h.service.ListByClient(c.UserContext(), id)
	} else {
		appts, err = h.service.List(c.UserContext())
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(appts)
}

func (h *Handler) bookAppointment(c *fiber.Ctx) error {
	payload := new(appointmentRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	in := Appointment{ClientID: payload.ClientID, EmployeeID: payload.EmployeeID}
	if payload.Date != "" {
		d, err := time.Parse(dateLayout, payload.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "date must be YYYY-MM-DD HH:MM:SS"})
		}
		in.Date = d
	}

	created, err := h.service.Book(c.UserContext(), in)
	if err != nil {
		switch err {
		case ErrMissingDate:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case ErrUnknownClient, ErrUnknownStaff:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
