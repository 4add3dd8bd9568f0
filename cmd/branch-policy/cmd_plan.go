package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/branchops/branch-policy/classify"
	"github.com/branchops/branch-policy/pipeline"
)

var planCmd = &cobra.Command{
	Use:   "plan [branch]",
	Short: "Evaluate the pipeline stage plan for a branch",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().IntP("build-number", "n", 0, "The run number appended to the deployment tag")
	planCmd.Flags().StringP("file", "f", "", "Pipeline definition file (defaults to the built-in definition)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	branch := branchFromEnv()
	if len(args) == 1 {
		branch = args[0]
	}

	buildNumber, err := cmd.Flags().GetInt("build-number")
	if err != nil {
		return err
	}
	if buildNumber == 0 {
		buildNumber = buildNumberFromEnv()
	}

	definition := pipeline.Default()
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		definition, err = pipeline.Load(path)
		if err != nil {
			return err
		}
	}

	plan := pipeline.Evaluate(definition, classify.Classify(branch), buildNumber)

	out, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
