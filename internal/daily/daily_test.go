package daily

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2026-03-02 05:00 at UTC+10 is still 2026-03-01 in UTC.
	got := DateKey(time.Date(2026, 3, 2, 5, 0, 0, 0, loc))
	if got != "2026-03-01" {
		t.Fatalf("DateKey = %s, want 2026-03-01", got)
	}
}

func TestSeed(t *testing.T) {
	morning := time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC)
	next := time.Date(2026, 10, 20, 1, 0, 0, 0, time.UTC)

	if Seed(morning, "salt") != Seed(evening, "salt") {
		t.Fatal("seed changed within a day")
	}
	if Seed(morning, "salt") == Seed(next, "salt") {
		t.Fatal("seed did not change across days")
	}
	if Seed(morning, "salt") == Seed(morning, "other") {
		t.Fatal("seed ignores the salt")
	}
	if Seed(morning, "salt") < 0 {
		t.Fatal("seed is negative")
	}
}
