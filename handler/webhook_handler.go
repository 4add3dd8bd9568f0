package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"

	"github.com/branchops/branch-policy/classify"
	"github.com/branchops/branch-policy/metrics"
	"github.com/branchops/branch-policy/models"
	"github.com/branchops/branch-policy/pipeline"
)

// WebHookHandler Classifies branches pushed through GitHub webhook events
type WebHookHandler struct {
	webhookSecret []byte
	definition    *pipeline.Definition
	notifier      pipeline.Notifier
	build         int
}

// NewWebHookHandler Constructor. An empty secret disables signature
// validation.
func NewWebHookHandler(webhookSecret []byte, definition *pipeline.Definition, notifier pipeline.Notifier, build int) *WebHookHandler {
	return &WebHookHandler{
		webhookSecret: webhookSecret,
		definition:    definition,
		notifier:      notifier,
		build:         build,
	}
}

// HandleWebhookEvents Main handler of events
func (wh *WebHookHandler) HandleWebhookEvents(c *gin.Context) {
	metrics.IncreaseAllCounter()

	req := c.Request
	logger := zerolog.Ctx(req.Context())
	event := github.WebHookType(req)

	if len(strings.TrimSpace(event)) == 0 {
		metrics.IncreaseNotGithubEventCounter()
		fail(c, http.StatusBadRequest, event, fmt.Errorf("not a github event"))
		return
	}

	payload, err := github.ValidatePayload(req, wh.webhookSecret)
	if err != nil {
		metrics.IncreaseFailedParsingCounter()
		fail(c, http.StatusBadRequest, event, fmt.Errorf("could not validate webhook payload: %w", err))
		return
	}

	parsed, err := github.ParseWebHook(event, payload)
	if err != nil {
		metrics.IncreaseFailedParsingCounter()
		fail(c, http.StatusBadRequest, event, fmt.Errorf("could not parse webhook: %w", err))
		return
	}

	switch e := parsed.(type) {
	case *github.PushEvent:
		branch := branchFromRef(e.GetRef())
		classification := classify.Classify(branch)
		if !classification.WellFormed {
			logger.Warn().Str("branch", classification.Branch).Msg("Branch name follows no recognized naming convention")
			metrics.IncreaseMalformedBranchNameCounter(classification.Branch)
		}
		metrics.IncreasePushGithubEventTypeCounter(classification.Branch, string(classification.Type), classification.Environment)
		metrics.IncreaseClassificationCounter(string(classification.Type), classification.Environment)

		plan := pipeline.Evaluate(wh.definition, classification, wh.build)
		pipeline.Announce(req.Context(), wh.notifier, plan)

		logger.Info().Str("branch", classification.Branch).Str("type", string(classification.Type)).Msg("Classified pushed branch")
		c.JSON(http.StatusOK, models.WebhookResponse{
			Ok:             true,
			Event:          event,
			Message:        plan.Summary(),
			Classification: &classification,
			Plan:           &plan,
		})

	case *github.PingEvent:
		metrics.IncreasePingGithubEventTypeCounter()
		c.JSON(http.StatusOK, models.WebhookResponse{
			Ok:      true,
			Event:   event,
			Message: "Webhook is configured correctly",
		})

	default:
		metrics.IncreaseUnsupportedGithubEventTypeCounter()
		fail(c, http.StatusBadRequest, event, fmt.Errorf("unsupported event type %s", event))
	}
}

// branchFromRef extracts the branch name from a push-event ref. Tag refs pass
// through untrimmed and classify via the default rule.
func branchFromRef(ref string) string {
	return strings.TrimPrefix(ref, "refs/heads/")
}

func fail(c *gin.Context, status int, event string, err error) {
	zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("Webhook request failed")
	c.JSON(status, models.WebhookResponse{
		Ok:    false,
		Event: event,
		Error: err.Error(),
	})
}
