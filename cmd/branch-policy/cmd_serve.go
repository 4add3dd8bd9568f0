package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/branchops/branch-policy/classify"
	"github.com/branchops/branch-policy/handler"
	"github.com/branchops/branch-policy/pipeline"
	"github.com/branchops/branch-policy/router"
	"github.com/branchops/branch-policy/slack"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the demo HTTP service for the branch the process was started with",
	Long: `Starts the HTTP service. The branch name and build number are read once at
startup (BRANCH_NAME, BUILD_NUMBER) and the derived classification is immutable
for the lifetime of the process.

GITHUB_WEBHOOK_SECRET enables signature validation on /events/github.
SLACK_WEBHOOK_URL enables notification delivery. PIPELINE_FILE overrides the
built-in stage definitions.`,
	RunE: runServe,
}

func init() {
	bindServeFlags(serveCmd.Flags())
}

func bindServeFlags(fs *pflag.FlagSet) {
	fs.StringP("port", "p", defaultPort(), "The port for which we listen to events on")
}

func runServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetString("port")
	if err != nil {
		return err
	}

	branch := branchFromEnv()
	build := buildNumberFromEnv()

	classification := classify.Classify(branch)
	if !classification.WellFormed {
		log.Warn().Str("branch", classification.Branch).Msg("Branch name follows no recognized naming convention")
	}
	log.Info().
		Str("branch", classification.Branch).
		Str("type", string(classification.Type)).
		Str("environment", classification.Environment).
		Int("build", build).
		Msg("Classified startup branch")

	definition := pipeline.Default()
	if path := os.Getenv("PIPELINE_FILE"); path != "" {
		definition, err = pipeline.Load(path)
		if err != nil {
			return err
		}
	}

	var notifier pipeline.Notifier = pipeline.NopNotifier{}
	if webhookURL := os.Getenv("SLACK_WEBHOOK_URL"); webhookURL != "" {
		notifier = slack.NewNotifier(webhookURL, http.DefaultClient)
	}

	var secret []byte
	if s := os.Getenv("GITHUB_WEBHOOK_SECRET"); s != "" {
		secret = []byte(s)
	}

	statusHandler := handler.NewStatusHandler(classification, build)
	webHookHandler := handler.NewWebHookHandler(secret, definition, notifier, build)
	engine := router.New(log.Logger, statusHandler, webHookHandler)

	log.Info().Str("port", port).Msg("Listen for incoming events")
	return engine.Run(":" + port)
}
