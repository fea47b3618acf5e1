package heritage_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/daggerheart-wizard/internal/errors"
	"github.com/KirkDiggler/daggerheart-wizard/internal/orchestrators/heritage"
	"github.com/KirkDiggler/daggerheart-wizard/internal/repositories/catalog"
)

const (
	testAncestries = `[
		{"id":"goblin","name":"Goblin"},
		{"id":"orc","name":"Orc"},
		{"id":"elf","name":"Elf"},
		{"id":"mixed-ancestry","name":"Mixed Ancestry","isMixed":true}
	]`
	testFeatures = `{
		"goblin":{"features":[{"id":"f1a","name":"Surefooted"},{"id":"f1b","name":"Danger Sense"}]},
		"orc":{"features":[{"id":"f2a","name":"Sturdy"},{"id":"f2b","name":"Tusks"}]},
		"elf":{"features":[{"id":"f3a","name":"Quick Reactions"},{"id":"f3b","name":"Celestial Trance"}]}
	}`
)

type FlowTestSuite struct {
	suite.Suite
	flow *heritage.Flow
}

func (s *FlowTestSuite) SetupTest() {
	store, err := catalog.Load(fstest.MapFS{
		catalog.AncestriesFile:       {Data: []byte(testAncestries)},
		catalog.CommunitiesFile:      {Data: []byte(`[]`)},
		catalog.AncestryFeaturesFile: {Data: []byte(testFeatures)},
	})
	s.Require().NoError(err)

	flow, err := heritage.New(&heritage.Config{Catalog: store})
	s.Require().NoError(err)
	s.flow = flow
}

// pickAncestries moves the flow to the feature stage with goblin and orc
func (s *FlowTestSuite) pickAncestries() {
	s.Require().NoError(s.flow.SelectAncestry(heritage.SideFirst, "goblin"))
	s.Require().NoError(s.flow.Next())
	s.Require().NoError(s.flow.SelectAncestry(heritage.SideSecond, "orc"))
	s.Require().NoError(s.flow.Next())
}

func disabled(options []heritage.FeatureOption) map[string]bool {
	out := make(map[string]bool, len(options))
	for _, o := range options {
		out[o.Feature.ID] = o.Disabled
	}
	return out
}

func (s *FlowTestSuite) TestNewValidates() {
	_, err := heritage.New(&heritage.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *FlowTestSuite) TestChoices() {
	s.Len(s.flow.FirstChoices(), 3, "mixed placeholder is not offered")

	s.Require().NoError(s.flow.SelectAncestry(heritage.SideFirst, "goblin"))
	ids := []string{}
	for _, a := range s.flow.SecondChoices() {
		ids = append(ids, a.ID)
	}
	s.Equal([]string{"orc", "elf"}, ids)

	err := s.flow.SelectAncestry(heritage.SideSecond, "goblin")
	s.True(errors.IsInvalidArgument(err))

	err = s.flow.SelectAncestry(heritage.SideFirst, "mixed-ancestry")
	s.True(errors.IsInvalidArgument(err))
}

func (s *FlowTestSuite) TestStageGating() {
	s.Equal(heritage.StagePickFirst, s.flow.Stage())
	s.False(s.flow.CanAdvance())
	s.True(errors.IsFailedPrecondition(s.flow.Next()))

	s.pickAncestries()
	s.Equal(heritage.StagePickFeatures, s.flow.Stage())
	s.False(s.flow.CanAdvance())

	s.Require().NoError(s.flow.SelectFeature(heritage.SideFirst, "f1a"))
	s.False(s.flow.CanAdvance())
	s.Require().NoError(s.flow.SelectFeature(heritage.SideSecond, "f2b"))
	s.True(s.flow.CanAdvance())
	s.Require().NoError(s.flow.Next())
	s.Equal(heritage.StageName, s.flow.Stage())
	s.True(s.flow.CanAdvance())
	s.True(errors.IsFailedPrecondition(s.flow.Next()))
}

func (s *FlowTestSuite) TestFeatureExclusion() {
	s.pickAncestries()

	s.Run("features start enabled", func() {
		s.Equal(map[string]bool{"f2a": false, "f2b": false}, disabled(s.flow.FeatureOptions(heritage.SideSecond)))
	})

	s.Run("first feature at position 0 blocks position 0 on the other side", func() {
		s.Require().NoError(s.flow.SelectFeature(heritage.SideFirst, "f1a"))
		s.Equal(map[string]bool{"f2a": true, "f2b": false}, disabled(s.flow.FeatureOptions(heritage.SideSecond)))

		err := s.flow.SelectFeature(heritage.SideSecond, "f2a")
		s.True(errors.IsFailedPrecondition(err))
		s.Nil(s.flow.Feature(heritage.SideSecond))
	})

	s.Run("reselecting at another position moves the block", func() {
		s.Require().NoError(s.flow.SelectFeature(heritage.SideFirst, "f1b"))
		s.Equal(map[string]bool{"f2a": false, "f2b": true}, disabled(s.flow.FeatureOptions(heritage.SideSecond)))
	})

	s.Run("second side blocks the first side too", func() {
		s.Require().NoError(s.flow.SelectFeature(heritage.SideSecond, "f2a"))
		s.Equal(map[string]bool{"f1a": true, "f1b": false}, disabled(s.flow.FeatureOptions(heritage.SideFirst)))

		options := s.flow.FeatureOptions(heritage.SideFirst)
		s.True(options[1].Selected)
		s.Equal(1, options[1].Position)
	})

	s.Run("clearing a feature lifts its block", func() {
		s.flow.ClearFeature(heritage.SideSecond)
		s.Nil(s.flow.Feature(heritage.SideSecond))
		s.Equal(map[string]bool{"f1a": false, "f1b": false}, disabled(s.flow.FeatureOptions(heritage.SideFirst)))
	})

	s.Run("unknown feature", func() {
		s.True(errors.IsInvalidArgument(s.flow.SelectFeature(heritage.SideFirst, "f2a")))
	})
}

func (s *FlowTestSuite) TestReselectClearsDependents() {
	s.pickAncestries()
	s.Require().NoError(s.flow.SelectFeature(heritage.SideFirst, "f1a"))
	s.Require().NoError(s.flow.SelectFeature(heritage.SideSecond, "f2b"))

	s.Run("changing the second ancestry drops its feature", func() {
		s.Require().NoError(s.flow.SelectAncestry(heritage.SideSecond, "elf"))
		s.Nil(s.flow.Feature(heritage.SideSecond))
		s.NotNil(s.flow.Feature(heritage.SideFirst))
	})

	s.Run("choosing the same ancestry again keeps the feature", func() {
		s.Require().NoError(s.flow.SelectAncestry(heritage.SideFirst, "goblin"))
		s.NotNil(s.flow.Feature(heritage.SideFirst))
	})

	s.Run("first ancestry equal to the second drops the second", func() {
		s.Require().NoError(s.flow.SelectAncestry(heritage.SideFirst, "elf"))
		s.Nil(s.flow.Feature(heritage.SideFirst))
		s.Nil(s.flow.Ancestry(heritage.SideSecond))
	})
}

func (s *FlowTestSuite) TestBackPreservesChoices() {
	s.pickAncestries()
	s.Require().NoError(s.flow.SelectFeature(heritage.SideFirst, "f1b"))

	s.False(s.flow.Back())
	s.Equal(heritage.StagePickSecond, s.flow.Stage())
	s.False(s.flow.Back())
	s.Equal(heritage.StagePickFirst, s.flow.Stage())

	s.Equal("goblin", s.flow.Ancestry(heritage.SideFirst).ID)
	s.Equal("orc", s.flow.Ancestry(heritage.SideSecond).ID)
	s.Equal("f1b", s.flow.Feature(heritage.SideFirst).ID)

	s.True(s.flow.Back(), "back from the first stage cancels")
}

func (s *FlowTestSuite) TestComplete() {
	_, err := s.flow.Complete()
	s.True(errors.IsFailedPrecondition(err))

	s.pickAncestries()
	s.Require().NoError(s.flow.SelectFeature(heritage.SideFirst, "f1a"))
	s.Require().NoError(s.flow.SelectFeature(heritage.SideSecond, "f2b"))
	s.Require().NoError(s.flow.Next())

	s.Equal(`e.g., "goblin-orc" or "toothling"`, s.flow.NamePlaceholder())
	s.Equal("Goblin-Orc", s.flow.DefaultName())

	s.Run("default name", func() {
		choice, err := s.flow.Complete()
		s.Require().NoError(err)
		s.Equal("mixed-ancestry", choice.ID)
		s.Equal("Goblin-Orc", choice.Name)
		s.True(choice.IsMixed)
		s.Equal("goblin", choice.Ancestry1.ID)
		s.Equal("orc", choice.Ancestry2.ID)
		s.Equal("f1a", choice.Feature1.ID)
		s.Equal("f2b", choice.Feature2.ID)
		s.Empty(choice.CustomName)
	})

	s.Run("custom name", func() {
		s.flow.SetName("Toothling")
		choice, err := s.flow.Complete()
		s.Require().NoError(err)
		s.Equal("Toothling", choice.Name)
		s.Equal("Toothling", choice.CustomName)
	})
}

func TestFlowSuite(t *testing.T) {
	suite.Run(t, new(FlowTestSuite))
}
