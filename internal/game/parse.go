package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/robalobadob/memory/internal/grid"
)

// ErrMalformedCoordinate is returned by ParseCoord when the text does not hold
// exactly two integers.
var ErrMalformedCoordinate = errors.New("coordinates must be 2d")

// ParseCoord reads "row col" from loosely formatted text: any run of
// non-digit characters separates the two numbers ("1 2", "1,2", "(1, 2)").
func ParseCoord(text string) (grid.Coord, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsDigit(r) })
	if len(fields) != 2 {
		return grid.Coord{}, fmt.Errorf("%w: %q", ErrMalformedCoordinate, strings.TrimSpace(text))
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return grid.Coord{}, fmt.Errorf("%w: %v", ErrMalformedCoordinate, err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return grid.Coord{}, fmt.Errorf("%w: %v", ErrMalformedCoordinate, err)
	}
	return grid.Coord{Row: row, Col: col}, nil
}
