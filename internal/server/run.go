package server

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Run serves app on addr until a signal arrives on quit or the listener
// fails. It always returns to the caller so deferred cleanup can run.
func Run(app *fiber.App, addr string, quit <-chan os.Signal, shutdownTimeout time.Duration) error {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Listen(addr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Printf("Received %s, shutting down server...", sig)
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("error during Fiber shutdown: %w", err)
	}
	log.Println("Server gracefully stopped")
	return nil
}
