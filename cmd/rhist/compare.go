package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [from] [to]",
	Short: "Compare two branches file by file",
	Long: `Compare what changed on one branch since it diverged from another. The
comparison uses the merge base, so commits shared by both sides are not
counted.

Examples:
  # What a feature branch adds on top of main
  rhist compare main feature/login

  # Review drift between release lines
  rhist compare release/1.2 release/1.3`,
	RunE: runCompare,
}

func init() {
	addFormatFlag(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) != 2 {
		return fmt.Errorf("must specify two branch names")
	}
	from, to := args[0], args[1]

	service, err := openService(ctx)
	if err != nil {
		return err
	}

	summary, err := service.CompareBranches(ctx, from, to)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.BranchDiff(os.Stdout, summary)
}
