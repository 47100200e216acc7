package main

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"
	"time"

	"github.com/robalobadob/memory/internal/config"
	"github.com/robalobadob/memory/internal/daily"
)

func TestBoardSeed(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	entropy := bytes.NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 42})
	broken := iotest.ErrReader(errors.New("no entropy"))

	cases := []struct {
		name    string
		cfg     config.Config
		entropy func() *bytes.Reader
		want    int64
	}{
		{"explicit seed", config.Config{Seed: 7, HasSeed: true}, nil, 7},
		{"explicit zero seed", config.Config{Seed: 0, HasSeed: true}, nil, 0},
		{"daily wins over seed", config.Config{Seed: 7, HasSeed: true, Daily: true, DailySalt: "s"}, nil, daily.Seed(now, "s")},
		{"random", config.Config{}, func() *bytes.Reader { return entropy }, 21},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := broken
			if tc.entropy != nil {
				r = tc.entropy()
			}
			if got := boardSeed(tc.cfg, r, now); got != tc.want {
				t.Fatalf("boardSeed = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBoardSeedFallsBackToClock(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	got := boardSeed(config.Config{}, iotest.ErrReader(errors.New("no entropy")), now)
	if got != now.UnixNano() {
		t.Fatalf("boardSeed = %d, want clock seed %d", got, now.UnixNano())
	}
}
