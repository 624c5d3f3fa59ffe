package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// healthResponse is the fixed body returned by the health check.
type healthResponse struct {
	Status string `json:"status"`
}

// Health is the health-check endpoint used by load balancers and monitoring
// systems to verify that the service is running.  It reads no state and
// performs no I/O: the fixed "healthy" body with a 200 status is the entire
// contract, and the absence of a response is what signals failure to the
// caller.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "healthy"})
}
