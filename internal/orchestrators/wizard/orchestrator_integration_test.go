package wizard_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
	"github.com/KirkDiggler/daggerheart-wizard/internal/orchestrators/heritage"
	wizardorch "github.com/KirkDiggler/daggerheart-wizard/internal/orchestrators/wizard"
	"github.com/KirkDiggler/daggerheart-wizard/internal/repositories/catalog"
	draftrepo "github.com/KirkDiggler/daggerheart-wizard/internal/repositories/character_draft"
	"github.com/KirkDiggler/daggerheart-wizard/internal/services/wizard"
)

type harness struct {
	t         *testing.T
	ctx       context.Context
	repo      draftrepo.Repository
	catalog   *catalog.Store
	completed []*daggerheart.CharacterDraft
	cancelled bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	repo, err := draftrepo.NewFileRepository(&draftrepo.FileConfig{
		Dir: t.TempDir(),
		Key: daggerheart.DefaultDraftKey,
	})
	require.NoError(t, err)

	store, err := catalog.Load(nil)
	require.NoError(t, err)

	return &harness{t: t, ctx: context.Background(), repo: repo, catalog: store}
}

// mount starts a new orchestrator over the same store, like reopening the app
func (h *harness) mount() (*wizardorch.Orchestrator, *wizard.StartOutput) {
	h.t.Helper()

	o, err := wizardorch.New(&wizardorch.Config{
		DraftRepo: h.repo,
		OnComplete: func(draft *daggerheart.CharacterDraft) {
			h.completed = append(h.completed, draft)
		},
		OnCancel: func() { h.cancelled = true },
	})
	require.NoError(h.t, err)

	out, err := o.Start(h.ctx, &wizard.StartInput{})
	require.NoError(h.t, err)
	return o, out
}

func (h *harness) entity(kind daggerheart.Kind, id string) daggerheart.Entity {
	h.t.Helper()
	e, err := h.catalog.Get(kind, id)
	require.NoError(h.t, err)
	return e
}

func (h *harness) assertNoRecord() {
	h.t.Helper()
	_, err := h.repo.Get(h.ctx, draftrepo.GetInput{})
	assert.True(h.t, errors.IsNotFound(err), "expected no stored record, got %v", err)
}

func TestEndToEndElfHighborne(t *testing.T) {
	h := newHarness(t)
	o, _ := h.mount()

	_, err := o.SelectAncestry(h.ctx, &wizard.SelectAncestryInput{
		Ancestry: daggerheart.NewAncestryChoice(h.entity(daggerheart.KindAncestry, "elf")),
	})
	require.NoError(t, err)
	_, err = o.Advance(h.ctx, &wizard.AdvanceInput{})
	require.NoError(t, err)

	community := h.entity(daggerheart.KindCommunity, "highborne")
	_, err = o.SelectCommunity(h.ctx, &wizard.SelectCommunityInput{Community: &community})
	require.NoError(t, err)
	_, err = o.Advance(h.ctx, &wizard.AdvanceInput{})
	require.NoError(t, err)

	_, err = o.Complete(h.ctx, &wizard.CompleteInput{})
	require.NoError(t, err)

	require.Len(t, h.completed, 1)
	data, err := json.Marshal(h.completed[0])
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "elf", got["ancestry"].(map[string]any)["id"])
	assert.Equal(t, "highborne", got["community"].(map[string]any)["id"])
	assert.Nil(t, got["class"])
	assert.Nil(t, got["subclass"])
	assert.Equal(t, []any{}, got["domains"])

	h.assertNoRecord()
}

func TestReloadRestoresProgress(t *testing.T) {
	h := newHarness(t)
	o, _ := h.mount()

	_, err := o.SelectAncestry(h.ctx, &wizard.SelectAncestryInput{
		Ancestry: daggerheart.NewAncestryChoice(h.entity(daggerheart.KindAncestry, "dwarf")),
	})
	require.NoError(t, err)
	_, err = o.Advance(h.ctx, &wizard.AdvanceInput{})
	require.NoError(t, err)
	community := h.entity(daggerheart.KindCommunity, "seaborne")
	_, err = o.SelectCommunity(h.ctx, &wizard.SelectCommunityInput{Community: &community})
	require.NoError(t, err)

	_, reloaded := h.mount()
	assert.True(t, reloaded.Restored)
	assert.Equal(t, daggerheart.StepCommunity, reloaded.State.CurrentStep)
	assert.Equal(t, "dwarf", reloaded.State.Draft.Ancestry.ID)
	assert.Equal(t, "seaborne", reloaded.State.Draft.Community.ID)
}

func TestConfirmedCancelForgetsProgress(t *testing.T) {
	h := newHarness(t)
	o, _ := h.mount()

	_, err := o.SelectAncestry(h.ctx, &wizard.SelectAncestryInput{
		Ancestry: daggerheart.NewAncestryChoice(h.entity(daggerheart.KindAncestry, "orc")),
	})
	require.NoError(t, err)

	_, err = o.Cancel(h.ctx, &wizard.CancelInput{Confirmed: true})
	require.NoError(t, err)
	assert.True(t, h.cancelled)
	h.assertNoRecord()

	_, fresh := h.mount()
	assert.False(t, fresh.Restored)
	assert.Equal(t, daggerheart.StepAncestry, fresh.State.CurrentStep)
	assert.True(t, fresh.State.Draft.IsEmpty())
}

func TestMixedAncestryRoundTrip(t *testing.T) {
	h := newHarness(t)
	o, _ := h.mount()

	flow, err := heritage.New(&heritage.Config{Catalog: h.catalog})
	require.NoError(t, err)
	require.NoError(t, flow.SelectAncestry(heritage.SideFirst, "elf"))
	require.NoError(t, flow.Next())
	require.NoError(t, flow.SelectAncestry(heritage.SideSecond, "dwarf"))
	require.NoError(t, flow.Next())
	require.NoError(t, flow.SelectFeature(heritage.SideFirst, "elf-celestial-trance"))
	require.NoError(t, flow.SelectFeature(heritage.SideSecond, "dwarf-thick-skin"))
	require.NoError(t, flow.Next())
	flow.SetName("Stoneleaf")

	choice, err := flow.Complete()
	require.NoError(t, err)

	_, err = o.SelectAncestry(h.ctx, &wizard.SelectAncestryInput{Ancestry: choice})
	require.NoError(t, err)

	_, reloaded := h.mount()
	restored := reloaded.State.Draft.Ancestry
	require.True(t, restored.IsMixedHeritage())
	assert.Equal(t, "Stoneleaf", restored.Name)
	assert.Equal(t, "elf", restored.Ancestry1.ID)
	assert.Equal(t, "dwarf-thick-skin", restored.Feature2.ID)
}
