package main

import (
	"github.com/spf13/cobra"

	"github.com/branchops/branch-policy/classify"
	"github.com/branchops/branch-policy/testrunner"
)

var runTestsCmd = &cobra.Command{
	Use:   "run-tests [branch]",
	Short: "Run the scripted test suite for a branch",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRunTests,
}

func runRunTests(cmd *cobra.Command, args []string) error {
	branch := branchFromEnv()
	if len(args) == 1 {
		branch = args[0]
	}

	testrunner.Run(cmd.OutOrStdout(), classify.Classify(branch))
	return nil
}
