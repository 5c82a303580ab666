package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var lifecycleCmd = &cobra.Command{
	Use:   "lifecycle [file]",
	Short: "Summarize a file's age, activity level, and significant commits",
	Long: `Summarize a file's life: when it was created, when it last changed,
how active its recent history is, and which commits introduced or
reshaped it. Activity ranges from "very active" to "inactive" based on
commit counts over the last 30, 90, and 365 days.`,
	RunE: runLifecycle,
}

func init() {
	addFormatFlag(lifecycleCmd)
}

func runLifecycle(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if len(args) == 0 {
		return fmt.Errorf("must specify a file path")
	}
	path := args[0]

	service, err := openService(ctx)
	if err != nil {
		return err
	}

	summary, err := service.FileLifecycle(ctx, path)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd)
	if err != nil {
		return err
	}
	return renderer.Lifecycle(os.Stdout, path, summary)
}
