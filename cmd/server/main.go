package main // Entry point package

import (
	"log" // Logging library

	"github.com/iliyamo/card-collector/internal/config" // Internal config loader
	"github.com/iliyamo/card-collector/internal/router" // Internal router setup
	"github.com/labstack/echo/v4"                       // Echo web framework
	"github.com/labstack/echo/v4/middleware"            // Echo built-in middleware
)

func main() {
	config.LoadEnvFile(".env") // Side-load optional env definitions before resolving
	cfg := config.Load()       // Resolve the immutable config snapshot

	e := echo.New()             // Create Echo instance
	e.Use(middleware.Logger())  // Request logging
	e.Use(middleware.Recover()) // Panic recovery
	router.RegisterRoutes(e)    // Register application routes

	addr := ":" + cfg.Port              // Address string with port
	log.Printf("listening on %s", addr) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
