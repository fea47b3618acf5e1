package steps_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
	"github.com/KirkDiggler/daggerheart-wizard/internal/repositories/catalog"
	"github.com/KirkDiggler/daggerheart-wizard/internal/steps"
)

type ControllerTestSuite struct {
	suite.Suite
	store    *catalog.Store
	ancestry *steps.Controller
}

func (s *ControllerTestSuite) SetupTest() {
	store, err := catalog.Load(nil)
	s.Require().NoError(err)
	s.store = store

	ctrl, err := steps.New(steps.AncestryConfig(store.List(daggerheart.KindAncestry)))
	s.Require().NoError(err)
	s.ancestry = ctrl
}

func (s *ControllerTestSuite) TestNewValidates() {
	s.Run("nil config", func() {
		_, err := steps.New(nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("feature kind is not a step", func() {
		_, err := steps.New(&steps.Config{Kind: daggerheart.KindFeature, Title: "x", NextLabel: "y"})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *ControllerTestSuite) TestSearch() {
	s.Len(s.ancestry.Filtered(), 19)
	s.Equal("Search ancestries...", s.ancestry.SearchPlaceholder())

	s.Require().True(s.ancestry.JumpTo(80, 5))
	s.ancestry.SetSearch("EL")

	names := []string{}
	for _, e := range s.ancestry.Filtered() {
		names = append(names, e.Name)
	}
	s.Equal([]string{"Elf"}, names)
	s.Equal(0, s.ancestry.Carousel().Index(), "search resets the carousel")

	s.ancestry.SetSearch("zzz")
	msg, empty := s.ancestry.NoResults()
	s.True(empty)
	s.Equal("No ancestries found", msg)
	s.Empty(s.ancestry.Visible(80))

	s.ancestry.Reset()
	s.Empty(s.ancestry.SearchTerm())
	s.Len(s.ancestry.Filtered(), 19)
}

func (s *ControllerTestSuite) TestLayout() {
	s.Equal(steps.LayoutCarousel, s.ancestry.Layout(99))
	s.Equal(steps.LayoutPager, s.ancestry.Layout(100))

	s.Len(s.ancestry.Visible(80), 1)
	s.Len(s.ancestry.Visible(120), 3)

	s.ancestry.ToggleGrid()
	s.Equal(steps.LayoutGrid, s.ancestry.Layout(80))
	s.Equal(steps.LayoutGrid, s.ancestry.Layout(200))
	s.Len(s.ancestry.Visible(80), 19)
	s.False(s.ancestry.Navigate(80, "right"))
}

func (s *ControllerTestSuite) TestNavigate() {
	s.True(s.ancestry.Navigate(80, "left"))
	card, ok := s.ancestry.Focused(80, 0)
	s.True(ok)
	s.Equal(daggerheart.MixedAncestryID, card.ID)

	s.True(s.ancestry.Navigate(120, "left"))
	s.Equal(6, s.ancestry.Pager().Page())
	visible := s.ancestry.Visible(120)
	s.Len(visible, 1)
	s.Equal(daggerheart.MixedAncestryID, visible[0].ID)

	_, ok = s.ancestry.Focused(120, 1)
	s.False(ok)
}

func (s *ControllerTestSuite) TestActivate() {
	elf, err := s.store.Get(daggerheart.KindAncestry, "elf")
	s.Require().NoError(err)
	mixed, err := s.store.Get(daggerheart.KindAncestry, daggerheart.MixedAncestryID)
	s.Require().NoError(err)

	s.Run("normal card opens details", func() {
		s.Equal(steps.ActionOpenDetail, s.ancestry.Activate(elf))
		s.True(s.ancestry.Modal().IsOpen())

		card, action := s.ancestry.SelectFromModal()
		s.Equal(steps.ActionSelect, action)
		s.Equal("elf", card.ID)
		s.False(s.ancestry.Modal().IsOpen())
	})

	s.Run("mixed card starts the mixed flow", func() {
		s.Equal(steps.ActionStartMixed, s.ancestry.Activate(mixed))
		s.False(s.ancestry.Modal().IsOpen())
		s.Equal(steps.ActionStartMixed, s.ancestry.Choose(mixed))
	})

	s.Run("select with a closed modal", func() {
		_, action := s.ancestry.SelectFromModal()
		s.Equal(steps.ActionNone, action)
	})
}

func (s *ControllerTestSuite) TestCanAdvance() {
	s.False(s.ancestry.CanAdvance(nil))
	s.True(s.ancestry.CanAdvance(&daggerheart.Entity{ID: "elf"}))
	s.False(s.ancestry.HasBack())

	community, err := steps.New(steps.CommunityConfig(s.store.List(daggerheart.KindCommunity)))
	s.Require().NoError(err)
	s.True(community.HasBack())
	s.Equal("Next: Class →", community.NextLabel())
	s.Equal(3, community.Pager().TotalPages())
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}
