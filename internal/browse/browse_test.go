package browse_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/daggerheart-wizard/internal/browse"
	"github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"
)

func entities(names ...string) []daggerheart.Entity {
	out := make([]daggerheart.Entity, len(names))
	for i, name := range names {
		out[i] = daggerheart.Entity{ID: fmt.Sprintf("e%d", i), Name: name}
	}
	return out
}

func TestFilter(t *testing.T) {
	all := entities("Elf", "Dwarf", "Faerie", "Halfling", "Human")

	testCases := []struct {
		term     string
		expected []string
	}{
		{term: "", expected: []string{"Elf", "Dwarf", "Faerie", "Halfling", "Human"}},
		{term: "elf", expected: []string{"Elf"}},
		{term: "F", expected: []string{"Elf", "Dwarf", "Faerie", "Halfling"}},
		{term: "HU", expected: []string{"Human"}},
		{term: "lfl", expected: []string{"Halfling"}},
		{term: "orc", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("term %q", tc.term), func(t *testing.T) {
			got := browse.Filter(all, tc.term)
			names := make([]string, 0, len(got))
			for _, e := range got {
				names = append(names, e.Name)
			}
			assert.Equal(t, tc.expected, names)
		})
	}

	t.Run("does not alias the input", func(t *testing.T) {
		got := browse.Filter(all, "")
		got[0].Name = "changed"
		assert.Equal(t, "Elf", all[0].Name)
	})
}

func TestIsSelected(t *testing.T) {
	elf := daggerheart.Entity{ID: "elf", Name: "Elf"}
	assert.True(t, browse.IsSelected(elf, &daggerheart.Entity{ID: "elf"}))
	assert.False(t, browse.IsSelected(elf, &daggerheart.Entity{ID: "orc"}))
	assert.False(t, browse.IsSelected(elf, nil))
}

type CarouselTestSuite struct {
	suite.Suite
	carousel *browse.Carousel
}

func (s *CarouselTestSuite) SetupTest() {
	s.carousel = browse.NewCarousel(5)
}

func (s *CarouselTestSuite) TestWraparound() {
	s.Run("previous from first wraps to last", func() {
		s.carousel.Previous()
		s.Equal(4, s.carousel.Index())
	})

	s.Run("next from last wraps to first", func() {
		s.Require().True(s.carousel.JumpTo(4))
		s.carousel.Next()
		s.Equal(0, s.carousel.Index())
	})
}

func (s *CarouselTestSuite) TestKeys() {
	s.True(s.carousel.HandleKey(browse.KeyRight))
	s.Equal(1, s.carousel.Index())
	s.True(s.carousel.HandleKey(browse.KeyLeft))
	s.Equal(0, s.carousel.Index())
	s.False(s.carousel.HandleKey("up"))
}

func (s *CarouselTestSuite) TestSwipe() {
	testCases := []struct {
		name     string
		start    float64
		end      float64
		moved    bool
		expected int
	}{
		{name: "drag left past threshold", start: 200, end: 100, moved: true, expected: 1},
		{name: "drag right past threshold", start: 100, end: 200, moved: true, expected: 4},
		{name: "exactly threshold", start: 150, end: 100, moved: false, expected: 0},
		{name: "short drag", start: 100, end: 80, moved: false, expected: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.carousel.Reset(5)
			s.Equal(tc.moved, s.carousel.Swipe(tc.start, tc.end))
			s.Equal(tc.expected, s.carousel.Index())
		})
	}
}

func (s *CarouselTestSuite) TestJumpTo() {
	s.True(s.carousel.JumpTo(3))
	s.Equal(3, s.carousel.Index())
	s.False(s.carousel.JumpTo(5))
	s.False(s.carousel.JumpTo(-1))
	s.Equal(3, s.carousel.Index())
}

func (s *CarouselTestSuite) TestEmpty() {
	empty := browse.NewCarousel(0)
	empty.Next()
	empty.Previous()
	s.Equal(0, empty.Index())
	s.False(empty.HandleKey(browse.KeyRight))
	s.False(empty.Swipe(500, 0))
}

func TestCarouselSuite(t *testing.T) {
	suite.Run(t, new(CarouselTestSuite))
}

func TestPager(t *testing.T) {
	t.Run("seven cards make three pages", func(t *testing.T) {
		p := browse.NewPager(7)
		assert.Equal(t, 3, p.TotalPages())
		assert.True(t, p.ControlsEnabled())
		assert.True(t, p.ShowDots())

		require.True(t, p.JumpTo(2))
		slots := p.Slots()
		require.Len(t, slots, browse.PageSize)
		assert.Equal(t, browse.Slot{Index: 6, Visible: true}, slots[0])
		assert.False(t, slots[1].Visible)
		assert.False(t, slots[2].Visible)

		first, last, total := p.Range()
		assert.Equal(t, []int{7, 7, 7}, []int{first, last, total})
	})

	t.Run("pages wrap", func(t *testing.T) {
		p := browse.NewPager(7)
		p.Previous()
		assert.Equal(t, 2, p.Page())
		p.Next()
		assert.Equal(t, 0, p.Page())

		first, last, total := p.Range()
		assert.Equal(t, []int{1, 3, 7}, []int{first, last, total})
	})

	t.Run("controls disabled at page size", func(t *testing.T) {
		p := browse.NewPager(3)
		assert.False(t, p.ControlsEnabled())
		assert.False(t, p.ShowDots())
		assert.False(t, p.HandleKey(browse.KeyRight))
		assert.Equal(t, 0, p.Page())
	})

	t.Run("empty", func(t *testing.T) {
		p := browse.NewPager(0)
		assert.Equal(t, 0, p.TotalPages())
		first, last, total := p.Range()
		assert.Equal(t, []int{0, 0, 0}, []int{first, last, total})
		for _, slot := range p.Slots() {
			assert.False(t, slot.Visible)
		}
	})
}

func TestGridRows(t *testing.T) {
	grid := browse.Grid{Cards: entities("a", "b", "c", "d", "e"), Columns: 2}
	rows := grid.Rows()
	require.Len(t, rows, 3)
	assert.Len(t, rows[2], 1)

	defaulted := browse.Grid{Cards: entities("a", "b", "c", "d")}
	assert.Len(t, defaulted.Rows(), 2)
}

type ModalTestSuite struct {
	suite.Suite
	modal *browse.Modal
	card  daggerheart.Entity
}

func (s *ModalTestSuite) SetupTest() {
	s.modal = &browse.Modal{}
	s.card = daggerheart.Entity{ID: "elf", Name: "Elf", Type: "ancestry"}
	s.modal.Open(s.card)
}

func (s *ModalTestSuite) TestOpen() {
	s.True(s.modal.IsOpen())
	s.True(s.modal.ScrollLocked())
	s.Equal("elf", s.modal.Card().ID)
}

func (s *ModalTestSuite) TestContentClickKeepsOpen() {
	s.modal.Click(browse.TargetContent)
	s.True(s.modal.IsOpen())

	s.modal.Click(browse.TargetBackdrop)
	s.False(s.modal.IsOpen())
	s.False(s.modal.ScrollLocked())
}

func (s *ModalTestSuite) TestEscape() {
	s.False(s.modal.HandleKey("enter"))
	s.True(s.modal.IsOpen())
	s.True(s.modal.HandleKey(browse.KeyEscape))
	s.False(s.modal.IsOpen())
	s.False(s.modal.HandleKey(browse.KeyEscape))
}

func (s *ModalTestSuite) TestSelectCloses() {
	card, ok := s.modal.Select()
	s.True(ok)
	s.Equal(s.card, card)
	s.False(s.modal.IsOpen())

	_, ok = s.modal.Select()
	s.False(ok)
}

func (s *ModalTestSuite) TestDetails() {
	s.Equal([]string{"Type: ancestry"}, s.modal.Details())

	s.modal.Open(daggerheart.Entity{ID: "x", Domain: "Grace", Level: 1, Class: "Bard", Tier: "Foundation"})
	s.Equal([]string{"Domain: Grace | Level: 1", "Class: Bard | Tier: Foundation"}, s.modal.Details())
}

func TestModalSuite(t *testing.T) {
	suite.Run(t, new(ModalTestSuite))
}
