package main

import (
	"os"
	"strconv"

	"github.com/branchops/branch-policy/classify"
)

// branchFromEnv reads the branch name supplied by the CI environment. An
// absent value classifies through the default rule.
func branchFromEnv() string {
	branch := os.Getenv("BRANCH_NAME")
	if branch == "" {
		return classify.DefaultBranch
	}
	return branch
}

// buildNumberFromEnv reads the run number supplied by the CI environment.
func buildNumberFromEnv() int {
	number, err := strconv.Atoi(os.Getenv("BUILD_NUMBER"))
	if err != nil || number < 0 {
		return 0
	}
	return number
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "3000"
}
