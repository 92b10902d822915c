package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/wichananm65/willson-financial/internal/appointment"
	"github.com/wichananm65/willson-financial/internal/auth"
	"github.com/wichananm65/willson-financial/internal/client"
	"github.com/wichananm65/willson-financial/internal/config"
	"github.com/wichananm65/willson-financial/internal/database"
	"github.com/wichananm65/willson-financial/internal/employee"
	"github.com/wichananm65/willson-financial/internal/film"
	"github.com/wichananm65/willson-financial/internal/report"
	"github.com/wichananm65/willson-financial/internal/schema"
	"github.com/wichananm65/willson-financial/internal/transaction"
)

func main() {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatalf("config: %v", auth.ErrMissingSecret)
	}

	ctx := context.Background()
	db, err := database.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("database: %s", database.Describe(err))
	}
	defer db.Close()

	app := fiber.New()
	setupCORS(app)
	app.Use(checkMiddleware)

	clientService := client.NewService(client.NewPostgresRepository(db.DB))
	employeeService := employee.NewService(employee.NewPostgresRepository(db.DB))

	clientHandler := client.NewHandler(clientService)
	employeeHandler := employee.NewHandler(employeeService)
	transactionHandler := transaction.NewHandler(
		transaction.NewService(transaction.NewPostgresRepository(db.DB), clientService),
	)
	appointmentHandler := appointment.NewHandler(
		appointment.NewService(appointment.NewPostgresRepository(db.DB), clientService.Exists, employeeService.Exists),
	)
	reportHandler := report.NewHandler(report.NewService(db))
	schemaHandler := schema.NewHandler(db, os.Getenv("ALLOW_RESET_SCHEMA") == "1")

	clientHandler.RegisterPublicRoutes(app)
	employeeHandler.RegisterPublicRoutes(app)
	transactionHandler.RegisterPublicRoutes(app)
	appointmentHandler.RegisterPublicRoutes(app)
	reportHandler.RegisterPublicRoutes(app)
	auth.NewLoginHandler(cfg.JWTSecret, cfg.OperatorPasswordHash, employeeService).RegisterPublicRoutes(app)

	if cfg.MoviesDatabase != "" {
		movies, err := database.Open(ctx, cfg.Movies())
		if err != nil {
			log.Fatalf("movies database: %s", database.Describe(err))
		}
		defer movies.Close()
		film.NewHandler(film.NewPostgresRepository(movies)).RegisterPublicRoutes(app)
	}

	app.Use(auth.Middleware(cfg.JWTSecret))

	clientHandler.RegisterProtectedRoutes(app)
	transactionHandler.RegisterProtectedRoutes(app)
	appointmentHandler.RegisterProtectedRoutes(app)
	schemaHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func checkMiddleware(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Printf("%s %s %d %v", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}
