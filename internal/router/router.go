package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/card-collector/internal/handler" // import the handlers backing each route
)

// RegisterRoutes registers the API routes on the provided Echo instance.
// At the moment it only exposes the health check; the card collection
// endpoints arrive together with the persistence layer.  Echo answers
// non-GET methods on the path with 405 out of the box.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/api/health-check" to the Health handler.
	// Monitors and load balancers poll this endpoint to verify the service
	// is up and responding.
	e.GET("/api/health-check", handler.Health)
}
