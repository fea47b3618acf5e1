package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
	"github.com/KirkDiggler/daggerheart-wizard/internal/handlers/tui"
	wizardorch "github.com/KirkDiggler/daggerheart-wizard/internal/orchestrators/wizard"
	"github.com/KirkDiggler/daggerheart-wizard/internal/pkg/idgen"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the character wizard",
	Long:  `Start the interactive wizard. The finished character is printed as JSON.`,
	RunE:  runWizard,
}

func runWizard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	session := idgen.NewUUID("run").Generate()
	logOut, err := setupLogging(cfg, session)
	if err != nil {
		return err
	}
	defer func() {
		_ = logOut.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	slog.InfoContext(ctx, "wizard starting", "store", cfg.Store, "draft_key", cfg.DraftKey)

	store, err := openCatalog(cfg)
	if err != nil {
		return err
	}

	repo, cleanup, err := openDraftRepo(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	var final *daggerheart.CharacterDraft
	orch, err := wizardorch.New(&wizardorch.Config{
		DraftRepo:  repo,
		OnComplete: func(draft *daggerheart.CharacterDraft) { final = draft },
	})
	if err != nil {
		return errors.Wrap(err, "failed to create wizard")
	}

	model, err := tui.New(&tui.Config{
		Context:     ctx,
		Wizard:      orch,
		Catalog:     store,
		WideColumns: cfg.WideColumns,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create wizard screen")
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return errors.WrapWithCode(err, errors.CodeCanceled, "wizard stopped")
	}
	if err := model.Err(); err != nil {
		return err
	}

	switch model.Outcome() {
	case tui.OutcomeCompleted:
		out, err := json.MarshalIndent(final, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode character")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		slog.InfoContext(ctx, "wizard completed")
	case tui.OutcomeCancelled:
		fmt.Fprintln(cmd.ErrOrStderr(), "Character creation cancelled.")
	case tui.OutcomeSuspended:
		fmt.Fprintln(cmd.ErrOrStderr(), "Draft saved. Run the wizard again to continue.")
	}

	return nil
}
