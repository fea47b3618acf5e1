// Package main is the entry point for the Daggerheart character wizard
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "daggerheart-wizard",
	Short: "Daggerheart character creation wizard",
	Long: `Walks through Daggerheart character creation in the terminal: ancestry
(including mixed ancestry), community and class. Progress is saved after
every change and restored on the next run.`,
	SilenceUsage: true,
	RunE:         runWizard,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	registerConfigFlags(rootCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(draftCmd)
}
