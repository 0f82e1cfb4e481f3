package api

// ErrorResponse represents an error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// StatusResponse is returned by the service root
type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
