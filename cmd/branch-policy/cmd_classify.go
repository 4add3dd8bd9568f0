package main

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/branchops/branch-policy/classify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [branch]",
	Short: "Print the policy record derived from a branch name",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	branch := branchFromEnv()
	if len(args) == 1 {
		branch = args[0]
	}

	classification := classify.Classify(branch)
	if !classification.WellFormed {
		log.Warn().Str("branch", classification.Branch).Msg("Branch name follows no recognized naming convention")
	}

	out, err := json.MarshalIndent(classification, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
