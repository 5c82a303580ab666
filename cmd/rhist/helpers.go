package main

import (
	"context"
	"fmt"
	"os"

	"github.com/repohist/repohist-go/internal/render"
	"github.com/repohist/repohist-go/internal/repo"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// openService resolves the configured repository and returns a query
// service bound to it.
func openService(ctx context.Context) (*repo.Service, error) {
	return repo.NewService(ctx, cfg)
}

// addFormatFlag registers the shared --format flag on a command.
func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String("format", "auto", "Output format: table, json, or auto")
}

// newRenderer builds a renderer from the --format flag. "auto" picks a
// table on a terminal and JSON when output is piped, so scripts get
// machine-readable results without asking for them.
func newRenderer(cmd *cobra.Command) (*render.Renderer, error) {
	format, _ := cmd.Flags().GetString("format")

	switch format {
	case "auto":
		if term.IsTerminal(int(os.Stdout.Fd())) {
			format = render.FormatTable
		} else {
			format = render.FormatJSON
		}
	case render.FormatTable, render.FormatJSON:
	default:
		return nil, fmt.Errorf("invalid format %q, must be: table, json, or auto", format)
	}

	return render.New(format), nil
}
