// Package config loads command configuration from .env, the environment and
// the command line.
package config

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samdwyer/cavemap/internal/logging"
	"github.com/samdwyer/cavemap/internal/world"
)

const (
	// DefaultPanStep is how many cells the viewer scrolls per key press.
	DefaultPanStep = 8
	// DefaultZoom is how many map cells share one terminal cell when zoomed out.
	DefaultZoom = 4
)

// SeedSource records where the seed came from.
type SeedSource int

const (
	// SeedArgument means the seed was given on the command line.
	SeedArgument SeedSource = iota
	// SeedRandom means no seed was given and one was drawn at random.
	SeedRandom
	// SeedFallback means the given seed could not be parsed and a random one
	// was used instead.
	SeedFallback
)

// String returns a human-readable source name.
func (s SeedSource) String() string {
	switch s {
	case SeedArgument:
		return "argument"
	case SeedRandom:
		return "random"
	case SeedFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Config holds everything the commands need at startup.
type Config struct {
	// Seed for cave generation. The same seed always yields the same map.
	Seed       int64
	SeedSource SeedSource

	Width         int
	Height        int
	WallThreshold float64
	BorderPolicy  world.BorderPolicy

	PanStep int
	Zoom    int

	HoneycombAPIKey  string
	HoneycombDataset string

	Log logging.Options

	// Warnings collects non-fatal problems found while loading, to be logged
	// once a logger exists.
	Warnings []string
}

// Generator returns the generation parameters.
func (c Config) Generator() world.GeneratorConfig {
	return world.GeneratorConfig{
		Width:         c.Width,
		Height:        c.Height,
		WallThreshold: c.WallThreshold,
	}
}

// Load reads .env (if present), the CAVEMAP_* environment variables and the
// optional seed in args. It fails only when no random seed can be drawn.
func Load(args []string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		cfg.warn(".env file not loaded: %v", err)
	}

	cfg.Width = cfg.intEnv("CAVEMAP_WIDTH", world.DefaultWidth)
	cfg.Height = cfg.intEnv("CAVEMAP_HEIGHT", world.DefaultHeight)
	cfg.WallThreshold = cfg.floatEnv("CAVEMAP_WALL_THRESHOLD", world.DefaultWallThreshold)
	cfg.PanStep = cfg.positiveIntEnv("CAVEMAP_PAN_STEP", DefaultPanStep)
	cfg.Zoom = cfg.positiveIntEnv("CAVEMAP_ZOOM", DefaultZoom)

	policy, err := world.ParseBorderPolicy(os.Getenv("CAVEMAP_BORDER_POLICY"))
	if err != nil {
		cfg.warn("%v, using %s", err, policy)
	}
	cfg.BorderPolicy = policy

	cfg.HoneycombAPIKey = strings.TrimSpace(os.Getenv("HONEYCOMB_CAVEMAP_API_KEY"))
	cfg.HoneycombDataset = strings.TrimSpace(os.Getenv("HONEYCOMB_CAVEMAP_DATASET"))
	cfg.Log = logging.OptionsFromEnv()

	if err := cfg.loadSeed(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadSeed takes the seed from the first argument. A missing or unparsable
// argument falls back to a random seed.
func (c *Config) loadSeed(args []string) error {
	if len(args) > 1 {
		c.warn("ignoring %d extra arguments", len(args)-1)
	}

	if len(args) > 0 {
		seed, err := ParseSeed(args[0])
		if err == nil {
			c.Seed = seed
			c.SeedSource = SeedArgument
			return nil
		}
		c.warn("invalid seed %q, using a random seed: %v", args[0], err)
		c.SeedSource = SeedFallback
	} else {
		c.SeedSource = SeedRandom
	}

	seed, err := RandomSeed()
	if err != nil {
		return fmt.Errorf("draw random seed: %w", err)
	}
	c.Seed = seed
	return nil
}

// ParseSeed parses a decimal seed.
func ParseSeed(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// RandomSeed draws a seed from the operating system's entropy source.
func RandomSeed() (int64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

func (c *Config) warn(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func (c *Config) intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		c.warn("%s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func (c *Config) positiveIntEnv(key string, fallback int) int {
	n := c.intEnv(key, fallback)
	if n < 1 {
		c.warn("%s must be positive, using %d", key, fallback)
		return fallback
	}
	return n
}

func (c *Config) floatEnv(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		c.warn("%s=%q is not a number, using %v", key, v, fallback)
		return fallback
	}
	return f
}
