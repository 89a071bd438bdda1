// Package game provides the main game loop tying the engine to the terminal.
package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/blockfall/internal/engine"
	"github.com/samdwyer/blockfall/internal/gamedata"
	"github.com/samdwyer/blockfall/internal/piece"
	"github.com/samdwyer/blockfall/internal/telemetry"
	"github.com/samdwyer/blockfall/internal/ui"
)

// Game holds the running session.
type Game struct {
	cfg       Config
	sessionID string
	screen    *ui.Screen
	renderer  *ui.Renderer
	engine    *engine.Engine
	palette   *gamedata.Palette
	logger    zerolog.Logger
	running   bool
}

// New creates a new game instance on the terminal.
func New(cfg Config, sessionID string, logger zerolog.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g, err := newGame(cfg, sessionID, screen, piece.NewRandomSource(cfg.Seed), logger)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// newGame wires a game to an existing screen and shape source.
func newGame(cfg Config, sessionID string, screen *ui.Screen, shapes piece.Source, logger zerolog.Logger) (*Game, error) {
	gameLogger := logger.With().Str("session", sessionID).Logger()

	palettes, err := gamedata.LoadPaletteRegistry()
	if err != nil {
		return nil, err
	}
	palette, ok := palettes.Select(cfg.Palette)
	if !ok {
		gameLogger.Warn().
			Str("palette", cfg.Palette).
			Strs("available", palettes.IDs()).
			Msg("unknown palette, using default")
	}

	eng, err := engine.New(engine.Config{
		DropInterval: cfg.DropInterval,
		SessionID:    sessionID,
	}, shapes, logger)
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:       cfg,
		sessionID: sessionID,
		screen:    screen,
		renderer:  ui.NewRenderer(screen, palette),
		engine:    eng,
		palette:   palette,
		logger:    gameLogger,
		running:   true,
	}, nil
}

// Run executes the main game loop until the player exits or ctx is done.
// Each iteration draws a frame, then handles at most one input event or one
// clock tick.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.String("palette", g.palette.ID),
		attribute.Int64("drop_interval_ms", g.engine.DropInterval().Milliseconds()),
	)
	initSpan.End()

	g.logger.Info().
		Dur("drop_interval", g.engine.DropInterval()).
		Str("palette", g.palette.ID).
		Msg("game started")

	events := g.screen.Events()
	ticker := time.NewTicker(g.cfg.FrameInterval)
	defer ticker.Stop()
	last := time.Now()

	for g.running {
		// Render current state
		g.renderer.Render(g.engine.Snapshot())

		select {
		case <-ctx.Done():
			g.running = false
		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ctx, ev)
		case now := <-ticker.C:
			g.engine.Advance(ctx, now.Sub(last))
			last = now
		}

		if g.engine.Phase() == engine.PhaseExited {
			g.running = false
		}
	}

	snap := g.engine.Snapshot()
	_, endSpan := tracer.Start(ctx, "game.end")
	endSpan.SetAttributes(
		attribute.Int("score", snap.Score),
		attribute.Int("lines", snap.Lines),
		attribute.String("phase", snap.Phase.String()),
	)
	endSpan.End()

	g.logger.Info().
		Int("score", snap.Score).
		Int("lines", snap.Lines).
		Int("pieces", snap.PiecesLocked).
		Msg("game finished")

	// Cleanup
	g.screen.Close()
	return nil
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd := CommandForKey(ev)
		if cmd == engine.CommandNone {
			return
		}
		g.engine.Apply(ctx, cmd)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// Snapshot returns the current engine state.
func (g *Game) Snapshot() engine.Snapshot {
	return g.engine.Snapshot()
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
