package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [file]",
	Short: "Show the commit history of a file, following renames",
	Long: `Show the commit history of a single file. Renames are followed, so the
listing covers the file's whole life even if it moved. The total count
reflects the current path name only.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 0, "Max commits to show (default from configuration)")
	addFormatFlag(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
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

	history, err := service.FileHistory(ctx, path, limit)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.FileHistory(os.Stdout, history)
}
