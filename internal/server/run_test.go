package server_test

import (
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"produtos/internal/repositories"
	"produtos/internal/server"
	"produtos/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestApp() *fiber.App {
	return server.NewApp(server.Options{
		ProductService:   services.NewProductService(repositories.NewMemoryProductRepository(), services.Options{}),
		DisableAccessLog: true,
	})
}

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestRun_ReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	done := make(chan error, 1)
	go func() {
		done <- server.Run(newTestApp(), busy.Addr().String(), make(chan os.Signal), time.Second)
	}()

	select {
	case err := <-done:
		assert.ErrorContains(t, err, "server failed")
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the listener failed")
	}
}

func TestRun_ShutsDownOnSignal(t *testing.T) {
	addr := freeAddr(t)
	quit := make(chan os.Signal, 1)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(newTestApp(), addr, quit, time.Second)
	}()

	// Wait until the server answers before signalling.
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", addr))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	quit <- syscall.SIGTERM

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the signal")
	}
}
