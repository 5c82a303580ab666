package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var changesCmd = &cobra.Command{
	Use:   "changes [file]",
	Short: "Show recent commits to a file together with their diffs",
	RunE:  runChanges,
}

func init() {
	changesCmd.Flags().IntP("limit", "n", 0, "Max commits to show (default from configuration)")
	addFormatFlag(changesCmd)
}

func runChanges(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 0 {
		return fmt.Errorf("must specify a file path")
	}
	path := args[0]
	limit, _ := cmd.Flags().GetInt("limit")

	service, err := openService(ctx)
	if err != nil {
		return err
	}

	changes, err := service.FileChanges(ctx, path, limit)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.Changes(os.Stdout, path, changes)
}
