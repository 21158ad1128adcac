package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/cavemap/internal/config"
	"github.com/samdwyer/cavemap/internal/gamedata"
	"github.com/samdwyer/cavemap/internal/telemetry"
	"github.com/samdwyer/cavemap/internal/ui"
	"github.com/samdwyer/cavemap/internal/world"
)

// Game holds one terminal session over a generated map.
type Game struct {
	cfg       config.Config
	mode      Mode
	sessionID uuid.UUID
	log       logrus.FieldLogger

	screen   *ui.Screen
	renderer *ui.Renderer
	viewport ui.Viewport

	grid  *world.Grid     // viewer source
	state *world.MapState // play source

	span    trace.Span
	running bool
}

// New creates a game and opens the terminal screen.
func New(cfg config.Config, mode Mode, log *logrus.Logger) (*Game, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}

	g := newGame(cfg, mode, log)
	g.screen = screen
	g.renderer = ui.NewRenderer(screen, palette)
	return g, nil
}

func newGame(cfg config.Config, mode Mode, log *logrus.Logger) *Game {
	id := uuid.New()
	return &Game{
		cfg:       cfg,
		mode:      mode,
		sessionID: id,
		log: log.WithFields(logrus.Fields{
			"session_id": id.String(),
			"mode":       mode.String(),
		}),
		running: true,
	}
}

// Run generates the map and executes the main loop until the user quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	ctx, err := g.setup(ctx)
	if err != nil {
		return err
	}
	defer g.finish()

	for g.running {
		g.render()
		g.handleEvent(ctx, g.screen.PollEvent())
	}
	return nil
}

// setup generates the map, builds the session state and opens the session span.
func (g *Game) setup(ctx context.Context) (context.Context, error) {
	tracer := telemetry.Tracer("game")

	ctx, g.span = tracer.Start(ctx, "game.session", trace.WithAttributes(
		attribute.String("session.id", g.sessionID.String()),
		attribute.String("session.mode", g.mode.String()),
		attribute.Int64("grid.seed", g.cfg.Seed),
		attribute.String("grid.seed_source", g.cfg.SeedSource.String()),
	))

	gen, err := world.NewGenerator(g.cfg.Generator())
	if err != nil {
		g.span.RecordError(err)
		g.span.End()
		return ctx, fmt.Errorf("configure generator: %w", err)
	}

	grid := gen.Generate(ctx, g.cfg.Seed)
	g.log.WithFields(logrus.Fields{
		"seed":   g.cfg.Seed,
		"width":  grid.Width(),
		"height": grid.Height(),
		"walls":  grid.Count(world.Wall),
	}).Info("map generated")

	width, height := g.screenSize()
	g.viewport = ui.NewViewport(width, height)

	switch g.mode {
	case ModePlay:
		g.state, err = world.NewMapState(grid, world.WithBorderPolicy(g.cfg.BorderPolicy))
		if err != nil {
			g.span.RecordError(err)
			g.span.End()
			return ctx, err
		}
		policy := g.state.Policy().String()
		g.span.SetAttributes(attribute.String("session.border_policy", policy))
		g.log = g.log.WithField("border_policy", policy)
		g.viewport = g.viewport.CenterOn(g.state.AgentPosition(), grid.Width(), grid.Height())
	default:
		g.grid = grid
		g.viewport = g.viewport.Zoom(g.cfg.Zoom, grid.Width(), grid.Height())
	}

	return ctx, nil
}

// finish records session totals and closes the session span.
func (g *Game) finish() {
	fields := logrus.Fields{}
	if g.state != nil {
		g.span.SetAttributes(
			attribute.Int("session.moves", g.state.Moves()),
			attribute.Int("session.walls_cleared", g.state.ClearedCount()),
		)
		fields["moves"] = g.state.Moves()
		fields["walls_cleared"] = g.state.ClearedCount()
	}
	g.span.End()
	g.log.WithFields(fields).Info("session ended")
}

// source returns what the renderer draws.
func (g *Game) source() ui.TileSource {
	if g.state != nil {
		return g.state
	}
	return g.grid
}

func (g *Game) render() {
	g.renderer.Render(g.source(), g.viewport, g.status())
}

// status builds the line shown under the map.
func (g *Game) status() string {
	if g.state != nil {
		return fmt.Sprintf("seed %d | pos %s | cleared %d | moves %d | arrows/wasd move, space clears, q quits",
			g.cfg.Seed, g.state.AgentPosition(), g.state.ClearedCount(), g.state.Moves())
	}
	return fmt.Sprintf("seed %d | view %d,%d x%d | arrows/wasd pan, space zooms, q quits",
		g.cfg.Seed, g.viewport.X, g.viewport.Y, g.viewport.Scale)
}

// screenSize returns the area available for the map, leaving one row for the
// status line.
func (g *Game) screenSize() (int, int) {
	if g.screen == nil {
		return 80, 23
	}
	w, h := g.screen.Size()
	if h > 1 {
		h--
	}
	return w, h
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleCommand(ctx, ui.CommandForEvent(ev))
	case *tcell.EventResize:
		g.screen.Sync()
		w, h := g.screenSize()
		src := g.source()
		g.viewport = g.viewport.Resize(w, h, src.Width(), src.Height())
	}
}

// handleCommand applies one decoded input command.
func (g *Game) handleCommand(ctx context.Context, cmd ui.Command) {
	switch cmd {
	case ui.CommandQuit:
		g.running = false

	case ui.CommandLeft, ui.CommandRight, ui.CommandUp, ui.CommandDown:
		if g.mode == ModePlay {
			g.tryMove(ctx, cmd.Direction())
		} else {
			g.pan(cmd.Direction())
		}

	case ui.CommandAction:
		if g.mode == ModePlay {
			g.clearWalls(ctx)
		} else {
			g.toggleZoom()
		}
	}
}

// tryMove attempts to move the agent and keeps the view centred on it.
func (g *Game) tryMove(ctx context.Context, d world.Point) {
	moved, err := g.state.Move(d)
	if err != nil {
		level := logrus.WarnLevel
		if errors.Is(err, world.ErrOutOfBounds) {
			// Reachable only when border clearing is allowed.
			level = logrus.ErrorLevel
		}
		g.log.WithError(err).WithField("direction", d.String()).Log(level, "move failed")
		g.span.AddEvent("agent.move_failed", trace.WithAttributes(
			attribute.String("error", err.Error()),
		))
		return
	}
	if !moved {
		return
	}

	pos := g.state.AgentPosition()
	g.viewport = g.viewport.CenterOn(pos, g.state.Width(), g.state.Height())
	g.log.WithField("position", pos.String()).Debug("agent moved")
}

// clearWalls destroys the walls around the agent.
func (g *Game) clearWalls(ctx context.Context) {
	pos := g.state.AgentPosition()
	cleared := g.state.ClearAdjacentWalls()

	g.span.AddEvent("walls.cleared", trace.WithAttributes(
		attribute.Int("agent.x", pos.X),
		attribute.Int("agent.y", pos.Y),
		attribute.Int("walls.count", cleared),
	))
	g.log.WithFields(logrus.Fields{
		"position": pos.String(),
		"cleared":  cleared,
	}).Debug("walls cleared")
}

func (g *Game) pan(d world.Point) {
	g.viewport = g.viewport.Pan(d, g.cfg.PanStep, g.grid.Width(), g.grid.Height())
}

// toggleZoom switches the viewer between the overview and a 1:1 view.
func (g *Game) toggleZoom() {
	scale := g.cfg.Zoom
	if g.viewport.Scale != 1 {
		scale = 1
	}
	g.viewport = g.viewport.Zoom(scale, g.grid.Width(), g.grid.Height())
}
