// internal/grid/grid.go
//
// Board model for the memory (concentration) game.
// Responsibilities:
//   - Build a size×size board from a label pool, each label placed on exactly two cells.
//   - Validate coordinates and read labels.
//   - Track per-cell visibility (reveal/hide, single cells or the whole board).
//   - Render a bordered, fixed-width text view.
//
// Notes:
//   - Randomness comes from the *rand.Rand handed to New/Shuffle, so a fixed seed
//     reproduces a board.
//   - The model does no locking; a host serving several goroutines must serialize
//     access to one Grid.
package grid

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidConfiguration is returned by New for an odd/too small size,
	// a pool too short to fill the board, or a missing random source.
	ErrInvalidConfiguration = errors.New("invalid grid configuration")

	// ErrInvalidCoordinate is returned by Get when either axis is off the board.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// Coord identifies a cell on the board.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coord) String() string { return fmt.Sprintf("%d,%d", c.Row, c.Col) }

// Grid holds the placed labels and which cells are currently face up.
type Grid struct {
	size        int
	pool        []string // de-duplicated label pool, first occurrence wins
	hiddenLabel string
	cellWidth   int
	cells       []string // row-major, len size*size
	visible     []bool   // row-major, false = hidden
}

// New builds a board from values.
// A size of 0 derives the side length as floor(sqrt(2*len(values))).
// Only the first size*size/2 distinct values are placed.
func New(values []string, size int, hiddenLabel string, rng *rand.Rand) (*Grid, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfiguration)
	}
	pool := distinct(values)
	if size == 0 {
		size = int(math.Floor(math.Sqrt(float64(2 * len(pool)))))
	}
	if size < 2 || size%2 != 0 {
		return nil, fmt.Errorf("%w: grid size must be even and at least 2, got %d", ErrInvalidConfiguration, size)
	}
	if len(pool) < size*size/2 {
		return nil, fmt.Errorf("%w: not enough labels to fill a %dx%d grid (have %d, need %d)",
			ErrInvalidConfiguration, size, size, len(pool), size*size/2)
	}

	width := utf8.RuneCountInString(hiddenLabel)
	for _, v := range pool {
		width = max(width, utf8.RuneCountInString(v))
	}

	g := &Grid{
		size:        size,
		pool:        pool,
		hiddenLabel: hiddenLabel,
		cellWidth:   width,
	}
	g.populate(rng)
	return g, nil
}

// distinct copies values, dropping repeats.
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// populate places every label twice. Each cell, in row-major order, takes an
// entry drawn uniformly from what is left of the doubled pool.
func (g *Grid) populate(rng *rand.Rand) {
	n := g.size * g.size
	remaining := make([]string, 0, n)
	remaining = append(remaining, g.pool[:n/2]...)
	remaining = append(remaining, g.pool[:n/2]...)

	cells := make([]string, n)
	for i := range cells {
		j := rng.Intn(len(remaining))
		cells[i] = remaining[j]
		remaining = slices.Delete(remaining, j, j+1)
	}
	g.cells = cells
	g.visible = make([]bool, n)
}

// Shuffle replaces the layout with a fresh random placement of the same labels
// and hides every cell.
func (g *Grid) Shuffle(rng *rand.Rand) {
	g.populate(rng)
}

// Size returns the side length of the board.
func (g *Grid) Size() int { return g.size }

// HiddenLabel returns the text shown for face-down cells.
func (g *Grid) HiddenLabel() string { return g.hiddenLabel }

// CellWidth returns the padded width, in runes, of every rendered cell.
func (g *Grid) CellWidth() int { return g.cellWidth }

// Contains reports whether c lies on the board.
func (g *Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

func (g *Grid) index(c Coord) int { return c.Row*g.size + c.Col }

// Get returns the label at c.
func (g *Grid) Get(c Coord) (string, error) {
	if !g.Contains(c) {
		return "", fmt.Errorf("%w: position %d,%d is off grid", ErrInvalidCoordinate, c.Row, c.Col)
	}
	return g.cells[g.index(c)], nil
}

// Match reports whether a and b are two different cells holding the same label.
func (g *Grid) Match(a, b Coord) (bool, error) {
	la, err := g.Get(a)
	if err != nil {
		return false, err
	}
	lb, err := g.Get(b)
	if err != nil {
		return false, err
	}
	return a != b && la == lb, nil
}

// IsVisible reports whether c is face up. Off-board coordinates are never visible.
func (g *Grid) IsVisible(c Coord) bool {
	return g.Contains(c) && g.visible[g.index(c)]
}

// Reveal turns the given cells face up; with no arguments it turns every cell
// face up. Off-board coordinates are ignored.
func (g *Grid) Reveal(coords ...Coord) { g.setVisible(true, coords) }

// Hide turns the given cells face down; with no arguments it turns every cell
// face down. Off-board coordinates are ignored.
func (g *Grid) Hide(coords ...Coord) { g.setVisible(false, coords) }

func (g *Grid) setVisible(v bool, coords []Coord) {
	if len(coords) == 0 {
		for i := range g.visible {
			g.visible[i] = v
		}
		return
	}
	for _, c := range coords {
		if g.Contains(c) {
			g.visible[g.index(c)] = v
		}
	}
}

// AllCoordinates lists every cell in row-major order.
func (g *Grid) AllCoordinates() []Coord {
	out := make([]Coord, 0, g.size*g.size)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			out = append(out, Coord{Row: r, Col: c})
		}
	}
	return out
}

// Render draws the board, showing labels for visible cells and the hidden
// label elsewhere:
//
//	+-------+-------+
//	| LION  | ?     |
//	+-------+-------+
func (g *Grid) Render() string {
	rule := "+" + strings.Repeat(strings.Repeat("-", g.cellWidth+2)+"+", g.size)

	var b strings.Builder
	b.WriteString(rule)
	for r := 0; r < g.size; r++ {
		b.WriteString("\n|")
		for c := 0; c < g.size; c++ {
			text := g.hiddenLabel
			if i := r*g.size + c; g.visible[i] {
				text = g.cells[i]
			}
			fmt.Fprintf(&b, " %-*s |", g.cellWidth, text)
		}
		b.WriteString("\n")
		b.WriteString(rule)
	}
	return b.String()
}

// String implements fmt.Stringer.
func (g *Grid) String() string { return g.Render() }
