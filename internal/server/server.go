// Package server assembles the Fiber application: middleware, product
// routes, health, metrics and API docs.
package server

import (
	"errors"
	"log"
	"time"

	"produtos/internal/docs"
	"produtos/internal/handlers"
	"produtos/internal/metrics"
	"produtos/internal/middleware"
	"produtos/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Options configures NewApp.
type Options struct {
	ProductService *services.ProductService
	// Ping reports whether the database is reachable. Used by /health.
	Ping         func() error
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// DisableAccessLog turns off the per-request logger, mostly for tests.
	DisableAccessLog bool
}

// NewApp builds the Fiber app serving the product API.
func NewApp(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "produtos",
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		ErrorHandler: errorHandler,
	})

	m := metrics.New()

	// --- Middleware ---
	app.Use(middleware.CORS(middleware.DefaultCORSConfig))
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if !opts.DisableAccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(m.Middleware())

	// --- API Routes ---
	handlers.NewProductHandler(opts.ProductService).RegisterRoutes(app)
	docs.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", healthHandler(opts.Ping))
	app.Get("/metrics", m.Handler())

	return app
}

func healthHandler(ping func() error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, database, code := "healthy", "up", fiber.StatusOK
		if ping != nil {
			if err := ping(); err != nil {
				log.Printf("Health check failed: %v", err)
				status, database, code = "unhealthy", "down", fiber.StatusServiceUnavailable
			}
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"time":     time.Now().Format(time.RFC3339),
			"database": database,
		})
	}
}

// errorHandler renders every error that escapes a handler, including
// recovered panics and unknown routes, as a JSON body.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	} else {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
