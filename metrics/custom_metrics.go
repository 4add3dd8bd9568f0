package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	branchLabel      = "branch_policy_branch"
	branchTypeLabel  = "branch_policy_branch_type"
	environmentLabel = "branch_policy_environment"
)

var (
	requestAllCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "branch_policy_request_all_counter",
			Help: "Counter for all requests",
		},
	)
	notGithubEventCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "branch_policy_request_not_github_event_counter",
			Help: "Counter for not GitHub event requests",
		},
	)
	failedParsingCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "branch_policy_request_failed_parsing_counter",
			Help: "Counter for failed parsing requests",
		},
	)
	unsupportedGithubEventTypeCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "branch_policy_request_unsupported_github_event_type_counter",
			Help: "Counter for unsupported GitHub event type requests",
		},
	)
	pingEventTypeCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "branch_policy_request_ping_github_event_type_counter",
			Help: "Counter for ping GitHub event type requests",
		},
	)
	pushEventTypeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "branch_policy_request_push_github_event_type_counter",
			Help: "Counter for push GitHub event type requests",
		},
		[]string{branchLabel, branchTypeLabel, environmentLabel},
	)
	malformedBranchNameCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "branch_policy_malformed_branch_name_counter",
			Help: "Counter for classified branch names outside the recognized naming conventions",
		},
		[]string{branchLabel},
	)
	classificationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "branch_policy_classification_counter",
			Help: "Counter for branch classifications",
		},
		[]string{branchTypeLabel, environmentLabel},
	)
)

func init() {
	prometheus.MustRegister(requestAllCounter)
	prometheus.MustRegister(notGithubEventCounter)
	prometheus.MustRegister(failedParsingCounter)
	prometheus.MustRegister(unsupportedGithubEventTypeCounter)
	prometheus.MustRegister(pingEventTypeCounter)
	prometheus.MustRegister(pushEventTypeCounter)
	prometheus.MustRegister(malformedBranchNameCounter)
	prometheus.MustRegister(classificationCounter)
}

// IncreaseAllCounter increases all HTTP request counter
func IncreaseAllCounter() {
	requestAllCounter.Inc()
}

// IncreaseNotGithubEventCounter increases not GitHub event request counter
func IncreaseNotGithubEventCounter() {
	notGithubEventCounter.Inc()
}

// IncreaseFailedParsingCounter increases failed parsing request counter
func IncreaseFailedParsingCounter() {
	failedParsingCounter.Inc()
}

// IncreaseUnsupportedGithubEventTypeCounter increases unsupported GitHub event type request counter
func IncreaseUnsupportedGithubEventTypeCounter() {
	unsupportedGithubEventTypeCounter.Inc()
}

// IncreasePingGithubEventTypeCounter increases GitHub ping event type request counter
func IncreasePingGithubEventTypeCounter() {
	pingEventTypeCounter.Inc()
}

// IncreasePushGithubEventTypeCounter increases GitHub push event type request counter
func IncreasePushGithubEventTypeCounter(branch, branchType, environment string) {
	pushEventTypeCounter.With(prometheus.Labels{branchLabel: branch, branchTypeLabel: branchType, environmentLabel: environment}).Inc()
}

// IncreaseMalformedBranchNameCounter increases malformed branch name counter
func IncreaseMalformedBranchNameCounter(branch string) {
	malformedBranchNameCounter.With(prometheus.Labels{branchLabel: branch}).Inc()
}

// IncreaseClassificationCounter increases branch classification counter
func IncreaseClassificationCounter(branchType, environment string) {
	classificationCounter.With(prometheus.Labels{branchTypeLabel: branchType, environmentLabel: environment}).Inc()
}
