// branch-policy is the CLI: serve (demo HTTP service), classify, plan and
// run-tests, all driven by the branch classification policy.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "branch-policy",
	Short:        "Branch classification and pipeline policy tools",
	SilenceUsage: true,
}

func init() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	rootCmd.AddCommand(serveCmd, classifyCmd, planCmd, runTestsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
