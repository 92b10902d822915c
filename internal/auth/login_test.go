package auth

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type employees map[int]bool

func (e employees) Exists(ctx context.Context, id int) (bool, error) {
	return e[id], nil
}

func TestLogin(t *testing.T) {
	hash, err := HashPassword("operator-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	app := fiber.New()
	NewLoginHandler(secret, hash, employees{1: true, 4: true}).RegisterPublicRoutes(app)

	login := func(body string) (int, map[string]string) {
		req := httptest.NewRequest("POST", "/api/v1/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		out := map[string]string{}
		json.NewDecoder(res.Body).Decode(&out)
		return res.StatusCode, out
	}

	code, body := login(`{"employeeId":4,"password":"operator-pass"}`)
	if code != fiber.StatusOK || body["token"] == "" {
		t.Fatalf("expected token, got %d %v", code, body)
	}

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+body["token"])
	res, err := protectedApp().Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("issued token rejected: %d", res.StatusCode)
	}

	if code, _ := login(`{"employeeId":4,"password":"wrong"}`); code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", code)
	}
	if code, _ := login(`{"employeeId":9,"password":"operator-pass"}`); code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown employee, got %d", code)
	}
}

func TestLoginDisabledWithoutHash(t *testing.T) {
	h := NewLoginHandler(secret, "", employees{1: true})
	if _, err := h.Authenticate(context.Background(), 1, ""); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
