// internal/game/types.go
//
// Core type definitions for a memory game session.
// Defines:
//   - State: coarse session state (playing/won).
//   - Session: one player's run through a single board.
//   - Turn: what a single pick produced.

package game

import "github.com/robalobadob/memory/internal/grid"

// State is the coarse state of a session.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
)

// Session holds the state of a single memory game.
type Session struct {
	ID      string     // Unique session identifier (uuid).
	Grid    *grid.Grid // Board being played; visibility is driven by the session.
	Tries   int        // Every pick counts, rejected ones included.
	Matched map[grid.Coord]bool
	queued  []grid.Coord // Picks of the current turn (at most two).
	state   State
}

// Turn describes the outcome of one pick.
type Turn struct {
	Picks    []grid.Coord `json:"picks"`    // Picks of the current turn, this one included.
	Board    string       `json:"board"`    // Board with picks and matched pairs face up.
	Complete bool         `json:"complete"` // True once the second pick of a turn is in.
	Match    bool         `json:"match"`    // Only meaningful when Complete.
	State    State        `json:"state"`
}
