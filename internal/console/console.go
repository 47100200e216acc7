// internal/console/console.go
//
// Terminal front end for a memory game session.
// Responsibilities:
//   - Prompt for coordinates, one pick per line ("row col").
//   - Feed picks to the session and print the flashed board after each one.
//   - Report bad input inline and keep going; stop on a win, EOF, or cancellation.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/memory/internal/game"
	"github.com/robalobadob/memory/internal/grid"
)

const (
	prompt      = "> "
	clearScreen = "\033[H\033[2J"
)

// Options tune terminal output.
type Options struct {
	ClearScreen bool // clear the terminal before drawing each board
}

// Result summarizes a finished run.
type Result struct {
	Tries int
	Won   bool
}

// Run plays s to completion, reading picks from in and writing boards to out.
// It returns when the board is solved, in is exhausted, or ctx is done; in the
// last case the context error is returned.
func Run(ctx context.Context, in io.Reader, out io.Writer, s *game.Session, opts Options) (Result, error) {
	// Releases the reader goroutine on every return, not just EOF.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	logger := log.With().Str("session", s.ID).Logger()
	fmt.Fprintln(out, s.Board())

	for {
		fmt.Fprint(out, prompt)
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return Result{Tries: s.Tries}, ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				var err error
				select {
				case err = <-readErr:
				default:
				}
				return Result{Tries: s.Tries}, err
			}
			line = l
		}

		turn, err := pick(s, line)
		if err != nil {
			logger.Debug().Err(err).Str("input", line).Msg("pick rejected")
			fmt.Fprintln(out, describe(err))
			continue
		}

		if opts.ClearScreen {
			fmt.Fprint(out, clearScreen)
		}
		fmt.Fprintln(out, turn.Board)
		if turn.Complete {
			logger.Debug().Bool("match", turn.Match).Int("tries", s.Tries).Msg("turn complete")
			if turn.Match {
				fmt.Fprintln(out, "(match)")
			} else {
				fmt.Fprintln(out, "(no match)")
			}
		}

		if turn.State == game.StateWon {
			fmt.Fprintln(out, s.Solution())
			fmt.Fprintf(out, "Finished in %d tries\n", s.Tries)
			logger.Info().Int("tries", s.Tries).Msg("board solved")
			return Result{Tries: s.Tries, Won: true}, nil
		}
	}
}

// pick parses one input line and applies it. Unparseable input still counts
// as a try and voids the current turn, same as an off-grid pick.
func pick(s *game.Session, line string) (game.Turn, error) {
	c, err := game.ParseCoord(line)
	if err != nil {
		if rerr := s.Reject(); rerr != nil {
			return game.Turn{}, rerr
		}
		return game.Turn{}, err
	}
	return s.Pick(c)
}

// describe turns a pick error into the inline message shown to the player.
func describe(err error) string {
	switch {
	case errors.Is(err, game.ErrMalformedCoordinate):
		return fmt.Sprintf("(index error: %v)", err)
	case errors.Is(err, grid.ErrInvalidCoordinate):
		return fmt.Sprintf("(value error: %v)", err)
	default:
		return fmt.Sprintf("(error: %v)", err)
	}
}
