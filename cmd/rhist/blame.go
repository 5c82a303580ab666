package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var blameCmd = &cobra.Command{
	Use:   "blame [file]",
	Short: "Show line-by-line authorship for a file",
	RunE:  runBlame,
}

func init() {
	addFormatFlag(blameCmd)
}

func runBlame(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 0 {
		return fmt.Errorf("must specify a file path")
	}
	path := args[0]

	service, err := openService(ctx)
	if err != nil {
		return err
	}

	lines, err := service.FileBlame(ctx, path)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.Blame(os.Stdout, path, lines)
}
