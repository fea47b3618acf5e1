package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/daggerheart-wizard/internal/config"
	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
	"github.com/KirkDiggler/daggerheart-wizard/internal/redis"
	characterdraft "github.com/KirkDiggler/daggerheart-wizard/internal/repositories/character_draft"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Inspect or clear the saved draft",
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved draft record",
	Args:  cobra.NoArgs,
	RunE:  runDraftShow,
}

var draftClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved draft record",
	Args:  cobra.NoArgs,
	RunE:  runDraftClear,
}

var deleteUnreadable bool

var draftScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find unreadable drafts in the redis store",
	Long:  `Scan every wizard draft key in redis and report records that no longer decode. With --delete they are removed.`,
	Args:  cobra.NoArgs,
	RunE:  runDraftScan,
}

func init() {
	draftScanCmd.Flags().BoolVar(&deleteUnreadable, "delete", false, "Delete the unreadable drafts")

	draftCmd.AddCommand(draftShowCmd)
	draftCmd.AddCommand(draftClearCmd)
	draftCmd.AddCommand(draftScanCmd)
}

func runDraftShow(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	repo, cleanup, err := openDraftRepo(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := repo.Get(ctx, characterdraft.GetInput{})
	if err != nil {
		if errors.IsNotFound(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "No draft stored.")
			return nil
		}
		return err
	}

	data, err := daggerheart.EncodeDraftRecord(out.Record)
	if err != nil {
		return err
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		return errors.Wrap(err, "failed to format draft")
	}

	fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
	return nil
}

func runDraftClear(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	repo, cleanup, err := openDraftRepo(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := repo.Delete(ctx, characterdraft.DeleteInput{})
	if err != nil {
		return err
	}

	if out.Existed {
		fmt.Fprintln(cmd.OutOrStdout(), "Draft cleared.")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "No draft stored.")
	}
	return nil
}

func runDraftScan(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Store != config.StoreRedis {
		return errors.FailedPreconditionf("scan needs the redis store, configured store is %s", cfg.Store)
	}

	client, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create redis client")
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	result, err := characterdraft.ScanUnreadable(ctx, client)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Checked %d keys, found %d unreadable drafts\n", result.Checked, len(result.Unreadable))
	for _, key := range result.Unreadable {
		fmt.Fprintf(out, "  - %s\n", key)
	}
	if len(result.Unreadable) == 0 || !deleteUnreadable {
		return nil
	}

	removed, err := client.Del(ctx, result.Unreadable...).Result()
	if err != nil {
		return errors.Wrap(err, "failed to delete unreadable drafts")
	}
	fmt.Fprintf(out, "Deleted %d drafts\n", removed)
	return nil
}
