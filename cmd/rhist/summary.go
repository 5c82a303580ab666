package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Rank tracked files by how often they change",
	Long: `Rank tracked files by commit count, with last-modified dates and the
authors who touched them. Scanning is capped at 100 tracked files, so
on large repositories the ranking covers a sample rather than the whole
tree.`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().IntP("limit", "n", 0, "Max files to list (default from configuration)")
	addFormatFlag(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	limit, _ := cmd.Flags().GetInt("limit")

	service, err := openService(ctx)
	if err != nil {
		return err
	}

	activities, err := service.ChangeSummary(ctx, limit)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.Activity(os.Stdout, activities)
}
