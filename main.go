package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"produtos/internal/config"
	"produtos/internal/database"
	"produtos/internal/repositories"
	"produtos/internal/server"
	"produtos/internal/services"
	"produtos/pkg/rabbitmq"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run starts the service and blocks until a signal arrives or the server
// fails. Deferred cleanup runs on both paths.
func run() error {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// --- Storage ---
	var (
		productRepo repositories.ProductRepository
		ping        func() error
	)
	if cfg.InMemory() {
		log.Println("DB_DRIVER=memory, products are not persisted")
		productRepo = repositories.NewMemoryProductRepository()
	} else {
		db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				log.Printf("Error closing database: %v", err)
			}
		}()
		if err := database.Migrate(db); err != nil {
			return err
		}
		productRepo = repositories.NewGORMProductRepository(db)
		ping = func() error { return database.Ping(db) }
	}

	// --- Product events (optional) ---
	serviceOpts := services.Options{ValidateImageURL: cfg.ValidateImageURL}
	if cfg.EventsEnabled() {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue})
		if err != nil {
			return err
		}
		defer mqClient.Close()
		serviceOpts.Publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set, product events disabled")
	}

	// --- Service and HTTP app ---
	productService := services.NewProductService(productRepo, serviceOpts)
	app := server.NewApp(server.Options{
		ProductService: productService,
		Ping:           ping,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s (%s storage)", cfg.AppPort, cfg.DBDriver)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	return server.Run(app, cfg.AppPort, quit, cfg.ShutdownTimeout)
}
