package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavemap/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 1000
	DefaultHeight = 1000

	// DefaultWallThreshold is the random fill cutoff: a draw at or above it
	// starts as a wall, so roughly 85% of cells begin as walls.
	DefaultWallThreshold = 0.15

	// minDimension leaves room for at least one interior cell.
	minDimension = 3
)

// ErrInvalidThreshold is returned when the wall threshold is outside [0,1].
var ErrInvalidThreshold = errors.New("wall threshold must be within [0,1]")

// GeneratorConfig holds the fixed parameters of cave generation.
type GeneratorConfig struct {
	Width         int
	Height        int
	WallThreshold float64
}

// DefaultGeneratorConfig returns the standard 1000x1000 configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		WallThreshold: DefaultWallThreshold,
	}
}

// Validate checks the configuration can produce a grid with an interior and
// no more than MaxCells cells.
func (c GeneratorConfig) Validate() error {
	if err := checkSize(c.Width, c.Height, minDimension); err != nil {
		return err
	}
	if c.WallThreshold < 0 || c.WallThreshold > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, c.WallThreshold)
	}
	return nil
}

// Generator produces cave grids from a seed. The output is a pure function of
// the seed and the configuration.
type Generator struct {
	cfg GeneratorConfig
}

// NewGenerator creates a generator after validating cfg.
func NewGenerator(cfg GeneratorConfig) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg}, nil
}

// Generate runs the random fill then a single erosion pass.
func (g *Generator) Generate(ctx context.Context, seed int64) *Grid {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "grid.generate")
	defer span.End()

	startTime := time.Now()

	rng := rand.New(rand.NewSource(seed))
	pre := fill(rng, g.cfg.Width, g.cfg.Height, g.cfg.WallThreshold)
	grid := erode(pre)

	span.SetAttributes(
		attribute.Int64("grid.seed", seed),
		attribute.Int("grid.width", grid.width),
		attribute.Int("grid.height", grid.height),
		attribute.Float64("grid.wall_threshold", g.cfg.WallThreshold),
		attribute.Int("grid.walls_pre_erosion", pre.Count(Wall)),
		attribute.Int("grid.walls", grid.Count(Wall)),
		attribute.Int64("grid.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return grid
}

// Generate builds a grid of the given size with the default wall threshold.
func Generate(ctx context.Context, seed int64, width, height int) (*Grid, error) {
	g, err := NewGenerator(GeneratorConfig{
		Width:         width,
		Height:        height,
		WallThreshold: DefaultWallThreshold,
	})
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx, seed), nil
}

// fill draws one value per cell, scanning columns left to right and each
// column top to bottom. A draw at or above threshold makes the cell a wall.
func fill(rng *rand.Rand, width, height int, threshold float64) *Grid {
	g := newGrid(width, height, Empty)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if rng.Float64() >= threshold {
				g.set(x, y, Wall)
			}
		}
	}
	return g
}

// erode derives a new grid from pre without modifying it. Border cells become
// walls. An interior cell stays a wall only if it and its four axis-aligned
// neighbours were all walls in pre. Grids narrower than three cells in either
// direction have no interior and come out all walls.
func erode(pre *Grid) *Grid {
	out := newGrid(pre.width, pre.height, Empty)
	for x := 0; x < pre.width; x++ {
		for y := 0; y < pre.height; y++ {
			if pre.IsBorder(Point{X: x, Y: y}) {
				out.set(x, y, Wall)
				continue
			}
			if pre.at(x, y) == Wall &&
				pre.at(x-1, y) == Wall &&
				pre.at(x+1, y) == Wall &&
				pre.at(x, y-1) == Wall &&
				pre.at(x, y+1) == Wall {
				out.set(x, y, Wall)
			}
		}
	}
	return out
}
