package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [pattern] [path]",
	Short: "Search tracked file contents for a pattern",
	Long: `Search tracked file contents with git grep. Patterns are basic regular
expressions; an optional second argument restricts the search to one
path.

Examples:
  # Find every reference to a symbol
  rhist search ParseCommitLog

  # Restrict to a directory
  rhist search "retry" internal/git`,
	RunE: runSearch,
}

func init() {
	addFormatFlag(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 0 {
		return fmt.Errorf("must specify a search pattern")
	}
	pattern := args[0]
	path := ""
	if len(args) > 1 {
		path = args[1]
	}

	service, err := openService(ctx)
	if err != nil {
		return err
	}

	matches, err := service.Search(ctx, pattern, path)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.Matches(os.Stdout, matches)
}
