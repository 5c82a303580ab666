package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "List branches with their tip commits",
	RunE:  runBranches,
}

func init() {
	addFormatFlag(branchesCmd)
}

func runBranches(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	service, err := openService(ctx)
	if err != nil {
		return err
	}

	list, err := service.Branches(ctx)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.Branches(os.Stdout, list)
}
