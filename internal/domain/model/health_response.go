package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// HealthResponse represents the health check response of the application
type HealthResponse struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}
