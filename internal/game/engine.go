// internal/game/engine.go
//
// Turn engine for a memory game session.
// Responsibilities:
//   - Accept picks one coordinate at a time, two per turn.
//   - Validate picks against the grid and count every attempt as a try.
//   - Flash the picked cells (plus matched pairs) on a rendered board, then
//     hide the whole grid again before the next pick.
//   - Record matched pairs and detect the win: every cell matched.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/robalobadob/memory/internal/grid"
)

// ErrFinished is returned when picking on a session that has been won.
var ErrFinished = errors.New("game finished")

// NewSession starts a session on g with every cell face down.
func NewSession(g *grid.Grid) *Session {
	g.Hide()
	return &Session{
		ID:      uuid.NewString(),
		Grid:    g,
		Matched: make(map[grid.Coord]bool),
		state:   StatePlaying,
	}
}

// Pick applies a single coordinate pick.
//
// An invalid coordinate voids the current turn: queued picks are dropped and
// the error (wrapping grid.ErrInvalidCoordinate) is returned. The attempt still
// counts as a try.
//
// The second pick of a turn is compared with the first: two different cells
// with the same label form a match and stay face up for the rest of the game.
func (s *Session) Pick(c grid.Coord) (Turn, error) {
	if s.state == StateWon {
		return Turn{State: s.state}, ErrFinished
	}
	s.Tries++

	if _, err := s.Grid.Get(c); err != nil {
		s.queued = nil
		return Turn{State: s.state}, err
	}
	s.queued = append(s.queued, c)

	t := Turn{
		Picks: append([]grid.Coord(nil), s.queued...),
		Board: s.flash(s.queued...),
	}
	if len(s.queued) == 2 {
		t.Complete = true
		m, err := s.Grid.Match(s.queued[0], s.queued[1])
		if err != nil {
			// Both picks were validated above.
			return Turn{State: s.state}, fmt.Errorf("compare picks: %w", err)
		}
		if m {
			t.Match = true
			s.Matched[s.queued[0]] = true
			s.Matched[s.queued[1]] = true
		}
		s.queued = nil
		if s.allMatched() {
			s.state = StateWon
		}
	}
	t.State = s.state
	return t, nil
}

// Reject records a pick the driver could not use (e.g. unparseable input):
// it counts as a try and voids the current turn.
func (s *Session) Reject() error {
	if s.state == StateWon {
		return ErrFinished
	}
	s.Tries++
	s.queued = nil
	return nil
}

// flash renders the board with extra and every matched cell face up, then
// hides the whole grid again. Matched cells are re-revealed on every render.
func (s *Session) flash(extra ...grid.Coord) string {
	// Reveal with no arguments turns the whole board up.
	if up := append(s.matchedCoords(), extra...); len(up) > 0 {
		s.Grid.Reveal(up...)
	}
	out := s.Grid.Render()
	s.Grid.Hide()
	return out
}

// matchedCoords lists matched cells in row-major order.
func (s *Session) matchedCoords() []grid.Coord {
	out := make([]grid.Coord, 0, len(s.Matched))
	for _, c := range s.Grid.AllCoordinates() {
		if s.Matched[c] {
			out = append(out, c)
		}
	}
	return out
}

// allMatched reports whether the matched set covers the whole board.
func (s *Session) allMatched() bool {
	for _, c := range s.Grid.AllCoordinates() {
		if !s.Matched[c] {
			return false
		}
	}
	return true
}

// State reports the current session state.
func (s *Session) State() State { return s.state }

// Pending returns the picks queued for the current turn.
func (s *Session) Pending() []grid.Coord { return append([]grid.Coord(nil), s.queued...) }

// Board renders the board with only matched pairs face up.
func (s *Session) Board() string { return s.flash() }

// Solution renders the fully revealed board.
func (s *Session) Solution() string {
	s.Grid.Reveal()
	out := s.Grid.Render()
	s.Grid.Hide()
	return out
}
