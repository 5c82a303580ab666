package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var ownershipCmd = &cobra.Command{
	Use:   "ownership [file]",
	Short: "Show who owns a file by share of lines changed",
	Long: `Show each author's share of a file's churn, computed from lines added
plus lines deleted across its history. High concentration means a bus
factor; an even spread means shared stewardship.`,
	RunE: runOwnership,
}

func init() {
	addFormatFlag(ownershipCmd)
}

func runOwnership(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 0 {
		return fmt.Errorf("must specify a file path")
	}
	path := args[0]

	service, err := openService(ctx)
	if err != nil {
		return err
	}

	entries, err := service.CodeOwnership(ctx, path)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.Ownership(os.Stdout, path, entries)
}
