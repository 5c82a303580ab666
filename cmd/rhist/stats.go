package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show repository-wide totals and contributor rankings",
	RunE:  runStats,
}

func init() {
	addFormatFlag(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	service, err := openService(ctx)
	if err != nil {
		return err
	}

	stats, err := service.Statistics(ctx)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.Stats(os.Stdout, stats)
}
