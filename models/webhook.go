package models

import (
	"github.com/branchops/branch-policy/classify"
	"github.com/branchops/branch-policy/pipeline"
)

// WebhookResponse The response structure
type WebhookResponse struct {
	Ok      bool   `json:"ok"`
	Event   string `json:"event"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`

	// Classification set for push events
	Classification *classify.Classification `json:"classification,omitempty"`

	// Plan the stage plan evaluated for the pushed branch
	Plan *pipeline.Plan `json:"plan,omitempty"`
}
