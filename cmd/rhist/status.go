package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show branch, working tree changes, and upstream drift",
	Long: `Display the current branch, staged and unstaged changes, untracked
files, and how far the branch has drifted from its upstream.`,
	RunE: runStatus,
}

func init() {
	addFormatFlag(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	service, err := openService(ctx)
	if err != nil {
		return err
	}

	status, err := service.Status(ctx)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.Status(os.Stdout, status)
}
