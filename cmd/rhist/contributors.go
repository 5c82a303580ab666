package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var contributorsCmd = &cobra.Command{
	Use:   "contributors [file]",
	Short: "List a file's contributors ranked by commit count",
	RunE:  runContributors,
}

func init() {
	addFormatFlag(contributorsCmd)
}

func runContributors(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 0 {
		return fmt.Errorf("must specify a file path")
	}
	path := args[0]

	service, err := openService(ctx)
	if err != nil {
		return err
	}

	stats, err := service.FileContributors(ctx, path)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.Contributors(os.Stdout, path, stats)
}
