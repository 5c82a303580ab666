package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var relatedCmd = &cobra.Command{
	Use:   "related [file]",
	Short: "Find files that historically change together with a file",
	Long: `Find files that tend to appear in the same commits as the given file.
A file that keeps changing alongside another usually shares a hidden
coupling with it, even when no import connects them.

Examples:
  # Top co-changing files for a handler
  rhist related internal/api/handler.go

  # Widen the list
  rhist related -n 15 internal/api/handler.go`,
	RunE: runRelated,
}

func init() {
	relatedCmd.Flags().IntP("limit", "n", 0, "Max related files to list (default from configuration)")
	addFormatFlag(relatedCmd)
}

func runRelated(cmd *cobra.Command, args []string) error {
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

	entries, err := service.RelatedFiles(ctx, path, limit)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.Related(os.Stdout, path, entries)
}
