package client

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// makeApp injects a jwt.Token into locals when X-Employee-ID is set, so the
// protected routes can be exercised without signing tokens.
func makeApp(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-Employee-ID"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"employee_id": id}})
			}
		}
		return c.Next()
	})
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app
}

func seedClients() []Client {
	return []Client{
		{ID: 1, FirstName: "Ava", LastName: "Martinez", Email: "ava.martinez@email.com", CreatedDate: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 2, FirstName: "Mason", LastName: "Reed", Email: "mason.reed@email.com", CreatedDate: time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)},
	}
}

func TestClientRoutes(t *testing.T) {
	app := makeApp(NewHandler(NewService(NewInMemoryRepository(seedClients()))))

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/clients", nil))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var list []Client
	json.NewDecoder(res.Body).Decode(&list)
	if len(list) != 2 || list[0].Email != "ava.martinez@email.com" {
		t.Fatalf("unexpected list %+v", list)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/clients/2", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/clients/99", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestCreateClientRequiresAuth(t *testing.T) {
	app := makeApp(NewHandler(NewService(NewInMemoryRepository(nil))))

	body := `{"firstName":"Noah","lastName":"Parker","email":"noah.parker@email.com"}`
	req := httptest.NewRequest("POST", "/api/v1/clients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
}

func TestCreateUpdateDeleteClient(t *testing.T) {
	app := makeApp(NewHandler(NewService(NewInMemoryRepository(seedClients()))))

	send := func(method, path, body string) *httptestResponse {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Employee-ID", "1")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s %s: %v", method, path, err)
		}
		b, _ := io.ReadAll(res.Body)
		return &httptestResponse{status: res.StatusCode, body: string(b)}
	}

	created := send("POST", "/api/v1/clients", `{"firstName":" Noah ","lastName":"Parker","email":"Noah.Parker@Email.com","createdDate":"2026-02-01"}`)
	if created.status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", created.status, created.body)
	}
	if !strings.Contains(created.body, `"clientId":3`) || !strings.Contains(created.body, `"email":"noah.parker@email.com"`) {
		t.Fatalf("unexpected created body %s", created.body)
	}

	dup := send("POST", "/api/v1/clients", `{"firstName":"Ava","lastName":"M","email":"ava.martinez@email.com"}`)
	if dup.status != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", dup.status)
	}

	missing := send("POST", "/api/v1/clients", `{"firstName":"Ava"}`)
	if missing.status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", missing.status)
	}

	badDate := send("POST", "/api/v1/clients", `{"firstName":"A","lastName":"B","email":"a@b.com","createdDate":"02/01/2026"}`)
	if badDate.status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad date, got %d", badDate.status)
	}

	updated := send("PUT", "/api/v1/clients/3", `{"lastName":"Parker-Reed"}`)
	if updated.status != fiber.StatusOK || !strings.Contains(updated.body, "Parker-Reed") || !strings.Contains(updated.body, `"firstName":"Noah"`) {
		t.Fatalf("unexpected update %d: %s", updated.status, updated.body)
	}

	deleted := send("DELETE", "/api/v1/clients/3", "")
	if deleted.status != fiber.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", deleted.status)
	}
	again := send("DELETE", "/api/v1/clients/3", "")
	if again.status != fiber.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", again.status)
	}
}

type httptestResponse struct {
	status int
	body   string
}
