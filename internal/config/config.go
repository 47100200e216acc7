// internal/config/config.go
//
// Runtime configuration for the memory game, read from the environment.
// A .env file in the working directory is loaded first when present.
//
// Variables:
//
//	GRID_SIZE     board side length; 0 or unset derives it from the label pool
//	HIDDEN_LABEL  text shown on face-down cards (default "?")
//	LABELS_FILE   label pool file; unset uses the embedded defaults
//	SEED          RNG seed (0 included); unset or empty picks one at random
//	DAILY         "true" derives the seed from today's date (overrides SEED)
//	DAILY_SALT    salt for the daily seed (default "local_dev_salt")
//	LOG_LEVEL     zerolog level (default "info")
//	CLEAR_SCREEN  clear the terminal before each board (default true)
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings for one game run.
type Config struct {
	GridSize    int
	HiddenLabel string
	LabelsFile  string
	Seed        int64
	HasSeed     bool // SEED was set; Seed is meaningful even when 0
	Daily       bool
	DailySalt   string
	LogLevel    string
	ClearScreen bool
}

// Load reads .env (if any) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment without touching .env files.
func FromEnv() (Config, error) {
	c := Config{
		HiddenLabel: getEnv("HIDDEN_LABEL", "?"),
		LabelsFile:  os.Getenv("LABELS_FILE"),
		DailySalt:   getEnv("DAILY_SALT", "local_dev_salt"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
	var err error
	if c.GridSize, err = envInt("GRID_SIZE", 0); err != nil {
		return Config{}, err
	}
	if c.Seed, err = envInt64("SEED", 0); err != nil {
		return Config{}, err
	}
	c.HasSeed = os.Getenv("SEED") != ""
	if c.Daily, err = envBool("DAILY", false); err != nil {
		return Config{}, err
	}
	if c.ClearScreen, err = envBool("CLEAR_SCREEN", true); err != nil {
		return Config{}, err
	}
	return c, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", k, err)
	}
	return n, nil
}

func envInt64(k string, def int64) (int64, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", k, err)
	}
	return n, nil
}

func envBool(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", k, err)
	}
	return b, nil
}
