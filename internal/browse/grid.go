package browse

import "github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"

// DefaultGridColumns is used when a grid is given no column count
const DefaultGridColumns = 3

// Grid shows every card at once
type Grid struct {
	Cards   []daggerheart.Entity
	Columns int
}

// Rows chunks the cards into rows of Columns cards. The last row may be short.
func (g Grid) Rows() [][]daggerheart.Entity {
	columns := g.Columns
	if columns <= 0 {
		columns = DefaultGridColumns
	}

	rows := make([][]daggerheart.Entity, 0, (len(g.Cards)+columns-1)/columns)
	for start := 0; start < len(g.Cards); start += columns {
		end := min(start+columns, len(g.Cards))
		rows = append(rows, g.Cards[start:end])
	}
	return rows
}
