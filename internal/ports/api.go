// Package ports defines the wire contracts shared by the HTTP server and its
// clients. Server and client both depend on these shapes, never on each other.
package ports

// Route paths served by the HTTP adapter.
const (
	PathIndex    = "/"
	PathDistance = "/api/distance"
	PathHealth   = "/api/health"
)

// Query parameter names for PathDistance.
const (
	ParamX = "x"
	ParamY = "y"
	ParamZ = "z"
)

// DistanceResponse is the success body of GET /api/distance.
type DistanceResponse struct {
	Distance float64 `json:"distance"`
}

// ErrorResponse is the body of any non-200 JSON answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResult is the body of GET /api/health.
type HealthResult struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}
