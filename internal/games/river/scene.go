package river

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/riverrun/internal/core"
)

// Kind classifies a terrain cell.
type Kind uint8

const (
	Land  Kind = iota // solid ground, lethal to the craft
	River             // navigable water
	Enemy             // enemy craft sitting on the river
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Land:
		return "Land"
	case River:
		return "River"
	case Enemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// Cell is one terrain position. Immutable once placed except for the
// Enemy->River transition applied by Scene.DestroyEnemy.
type Cell struct {
	Kind Kind
}

// enemyChance is the per-row probability of seeding one enemy (parts
// after the first only).
const enemyChance = 0.5

// Scene owns the full generated terrain as a ring of rows. Every row has
// identical width; logical row i maps to i mod Len() for any non-negative
// i, so the river repeats seamlessly as the frame counter grows.
type Scene struct {
	rows  [][]Cell
	width int
}

// BuildScene generates the terrain for the given design at the given row
// width. For every part except the first, each replicated row independently
// gets, with probability 1/2, exactly one Enemy cell at a uniformly random
// River column. The first part is always enemy-free so the run starts calm.
func BuildScene(lines []DesignLine, width int, rng *rand.Rand) (*Scene, error) {
	if width <= 0 {
		return nil, fmt.Errorf("river: scene width must be positive, got %d", width)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("river: scene design is empty")
	}

	var rows [][]Cell
	for part, d := range lines {
		base := generateRow(d, width)

		var riverCols []int
		if part > 0 {
			for x, c := range base {
				if c.Kind == River {
					riverCols = append(riverCols, x)
				}
			}
		}

		for i := 0; i < d.Height; i++ {
			row := make([]Cell, len(base))
			copy(row, base)

			if len(riverCols) > 0 && rng.Float64() < enemyChance {
				col := riverCols[rng.Intn(len(riverCols))]
				row[col].Kind = Enemy
			}
			rows = append(rows, row)
		}
	}

	return &Scene{rows: rows, width: width}, nil
}

// Len returns the total number of generated rows.
func (s *Scene) Len() int {
	return len(s.rows)
}

// Width returns the width every row was generated at.
func (s *Scene) Width() int {
	return s.width
}

// Row returns the row at the given logical index, wrapping around the
// ring. The returned slice is a live handle into the buffer.
func (s *Scene) Row(i int) []Cell {
	return s.rows[core.Mod(i, len(s.rows))]
}

// Window returns height+1 consecutive logical rows starting at
// start mod Len(), low-to-high, wrapping past the end of the buffer back
// to index 0 with no gap and no duplicated boundary row. The caller
// reverses the order when rendering bottom-up. Rows are live handles.
func (s *Scene) Window(start, height int) [][]Cell {
	out := make([][]Cell, 0, height+1)
	for i := 0; i <= height; i++ {
		out = append(out, s.Row(start+i))
	}
	return out
}

// KindAt returns the cell kind at the given logical row and column.
// The row wraps around the ring; columns outside the generated width read
// as Land so nothing can fly or sail off the edge of the world.
func (s *Scene) KindAt(row, col int) Kind {
	if col < 0 || col >= s.width {
		return Land
	}
	return s.Row(row)[col].Kind
}

// DestroyEnemy downgrades the Enemy cell at the given logical position to
// River. Returns false if the cell is not (or no longer) an Enemy, which
// makes destruction idempotent within a collision sweep.
func (s *Scene) DestroyEnemy(row, col int) bool {
	if col < 0 || col >= s.width {
		return false
	}
	r := s.Row(row)
	if r[col].Kind != Enemy {
		return false
	}
	r[col].Kind = River
	return true
}
