package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List the most recent commits",
	Long: `List the most recent commits on the current branch.

Examples:
  # Last ten commits (configured default)
  rhist log

  # Last 25 commits
  rhist log -n 25

  # Machine-readable output
  rhist log --format=json`,
	RunE: runLog,
}

func init() {
	logCmd.Flags().IntP("limit", "n", 0, "Max commits to show (default from configuration)")
	addFormatFlag(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	limit, _ := cmd.Flags().GetInt("limit")

	service, err := openService(ctx)
	if err != nil {
		return err
	}

	commits, err := service.RecentCommits(ctx, limit)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.Commits(os.Stdout, commits)
}
