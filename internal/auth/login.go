package auth

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long issued operator tokens stay valid.
const TokenTTL = 72 * time.Hour

var ErrInvalidCredentials = errors.New("invalid credentials")

// EmployeeChecker confirms the employee a token is requested for exists.
type EmployeeChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// HashPassword returns the bcrypt hash stored as OPERATOR_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// LoginHandler trades the shared operator password for an employee token.
type LoginHandler struct {
	secret       string
	passwordHash string
	employees    EmployeeChecker
}

type loginRequest struct {
	EmployeeID int    `json:"employeeId"`
	Password   string `json:"password"`
}

func NewLoginHandler(secret, passwordHash string, employees EmployeeChecker) *LoginHandler {
	return &LoginHandler{secret: secret, passwordHash: passwordHash, employees: employees}
}

func (h *LoginHandler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/login", h.login)
}

// Authenticate checks password and the employee, then signs a token.
func (h *LoginHandler) Authenticate(ctx context.Context, employeeID int, password string) (string, error) {
	if h.passwordHash == "" {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	ok, err := h.employees.Exists(ctx, employeeID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidCredentials
	}
	return IssueToken(employeeID, h.secret, TokenTTL)
}

func (h *LoginHandler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	token, err := h.Authenticate(c.UserContext(), payload.EmployeeID, payload.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"token": token})
}
