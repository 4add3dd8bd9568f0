package models

// StatusResponse body of the root endpoint
type StatusResponse struct {
	// Message greeting line
	Message string `json:"message"`

	// Branch the branch name the process was started for
	Branch string `json:"branch"`

	// Build the build number the process was started for
	Build int `json:"build"`

	// Environment the target environment derived from the branch
	Environment string `json:"environment"`

	// Timestamp the time the response was rendered, RFC 3339
	Timestamp string `json:"timestamp"`

	// Endpoints the routes this service exposes
	Endpoints []string `json:"endpoints"`
}

// HealthResponse body of the health endpoint
type HealthResponse struct {
	Status      string `json:"status"`
	Branch      string `json:"branch"`
	Environment string `json:"environment"`
}

// InfoResponse body of the info endpoint
type InfoResponse struct {
	Application string `json:"application"`
	Version     string `json:"version"`
	Branch      string `json:"branch"`
	Build       int    `json:"build"`
	Environment string `json:"environment"`
}
