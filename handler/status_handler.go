package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/branchops/branch-policy/classify"
	"github.com/branchops/branch-policy/metrics"
	"github.com/branchops/branch-policy/models"
)

const appName = "branch-policy"
const appVersion = "1.0.0"

// Endpoints the routes advertised by the root endpoint
var Endpoints = []string{"/", "/health", "/info", "/metrics", "/events/github"}

// StatusHandler Serves the static status endpoints for the branch the process
// was started with
type StatusHandler struct {
	classification classify.Classification
	build          int
}

// NewStatusHandler Constructor
func NewStatusHandler(classification classify.Classification, build int) *StatusHandler {
	return &StatusHandler{
		classification: classification,
		build:          build,
	}
}

// Root Handler for the root endpoint
func (h *StatusHandler) Root(c *gin.Context) {
	metrics.IncreaseAllCounter()
	c.JSON(http.StatusOK, models.StatusResponse{
		Message:     "Branch policy service is running",
		Branch:      h.classification.Branch,
		Build:       h.build,
		Environment: h.classification.Environment,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Endpoints:   Endpoints,
	})
}

// Health Handler for the health endpoint
func (h *StatusHandler) Health(c *gin.Context) {
	metrics.IncreaseAllCounter()
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:      "healthy",
		Branch:      h.classification.Branch,
		Environment: h.classification.Environment,
	})
}

// Info Handler for the info endpoint
func (h *StatusHandler) Info(c *gin.Context) {
	metrics.IncreaseAllCounter()
	c.JSON(http.StatusOK, models.InfoResponse{
		Application: appName,
		Version:     appVersion,
		Branch:      h.classification.Branch,
		Build:       h.build,
		Environment: h.classification.Environment,
	})
}
