package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/daggerheart-wizard/internal/browse"
	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
)

var searchTerm string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the catalog content",
}

var listAncestriesCmd = &cobra.Command{
	Use:   "list-ancestries",
	Short: "List all ancestries",
	Args:  cobra.NoArgs,
	RunE:  runListKind(daggerheart.KindAncestry),
}

var listCommunitiesCmd = &cobra.Command{
	Use:   "list-communities",
	Short: "List all communities",
	Args:  cobra.NoArgs,
	RunE:  runListKind(daggerheart.KindCommunity),
}

var listFeaturesCmd = &cobra.Command{
	Use:   "list-features <ancestry-id>",
	Short: "List the features of an ancestry",
	Args:  cobra.ExactArgs(1),
	RunE:  runListFeatures,
}

func init() {
	catalogCmd.PersistentFlags().StringVar(&searchTerm, "search", "", "Only show entries whose name contains this text")

	catalogCmd.AddCommand(listAncestriesCmd)
	catalogCmd.AddCommand(listCommunitiesCmd)
	catalogCmd.AddCommand(listFeaturesCmd)
}

func runListKind(kind daggerheart.Kind) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store, err := openCatalog(cfg)
		if err != nil {
			return err
		}

		entities := browse.Filter(store.List(kind), searchTerm)
		out := cmd.OutOrStdout()
		if len(entities) == 0 {
			fmt.Fprintf(out, "No %s found\n", kind.Plural())
			return nil
		}

		fmt.Fprintf(out, "Found %d %s:\n\n", len(entities), kind.Plural())
		for _, e := range entities {
			printEntity(out, e)
		}
		return nil
	}
}

func runListFeatures(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openCatalog(cfg)
	if err != nil {
		return err
	}

	ancestry, err := store.Get(daggerheart.KindAncestry, args[0])
	if err != nil {
		return err
	}
	if ancestry.IsMixed {
		return errors.InvalidArgumentf("%s has no features of its own", ancestry.Name)
	}

	features := browse.Filter(store.Features(ancestry.ID), searchTerm)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s features:\n\n", ancestry.Name)
	for i, f := range features {
		fmt.Fprintf(out, "%d. %s (ID: %s)\n", i+1, f.Name, f.ID)
		if f.Description != "" {
			fmt.Fprintf(out, "   %s\n", f.Description)
		}
	}
	return nil
}

func printEntity(out io.Writer, e daggerheart.Entity) {
	marker := "🎭"
	if e.IsMixed {
		marker = "✨"
	}
	fmt.Fprintf(out, "%s %s (ID: %s)\n", marker, e.Name, e.ID)
	if e.Description != "" {
		fmt.Fprintf(out, "   Description: %s\n", e.Description)
	}
	if e.Image != "" {
		fmt.Fprintf(out, "   Image: %s\n", e.Image)
	}
	fmt.Fprintln(out)
}
