package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"salespredictor/handlers"
	"salespredictor/routes"
)

func usage() {
	fmt.Println("usage: salespredictor [options]")
	flag.PrintDefaults()
}

var (
	addr      = flag.String("addr", "", "address to serve (overrides HTTP_ADDR)")
	modelPath = flag.String("model", "", "model artifact `path` (overrides MODEL_PATH)")
)

// newServer builds the Fiber app with its middleware and routes.
func newServer(h *handlers.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "salespredictor",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New())

	routes.SetupRoutes(app, h)
	return app
}

// serve runs app on addr until listening fails or a signal arrives on quit,
// then shuts it down within timeout.
func serve(app *fiber.App, addr string, quit <-chan os.Signal, timeout time.Duration) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-quit:
	}

	log.Println("Shutting down...")
	return app.ShutdownWithTimeout(timeout)
}
