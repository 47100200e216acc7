package game

import (
	"errors"
	"testing"

	"github.com/robalobadob/memory/internal/grid"
)

func TestParseCoord(t *testing.T) {
	cases := []struct {
		in   string
		want grid.Coord
	}{
		{"0 0", grid.Coord{Row: 0, Col: 0}},
		{"1,2", grid.Coord{Row: 1, Col: 2}},
		{" 3 , 1 \n", grid.Coord{Row: 3, Col: 1}},
		{"(2, 3)", grid.Coord{Row: 2, Col: 3}},
		{"10x11", grid.Coord{Row: 10, Col: 11}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCoord(tc.in)
			if err != nil {
				t.Fatalf("ParseCoord(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseCoord(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseCoordMalformed(t *testing.T) {
	for _, in := range []string{"", "1", "a b", "1 2 3", "one, two", "99999999999999999999 1"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseCoord(in); !errors.Is(err, ErrMalformedCoordinate) {
				t.Fatalf("ParseCoord(%q): want ErrMalformedCoordinate, got %v", in, err)
			}
		})
	}
}
