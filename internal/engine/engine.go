package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/blockfall/internal/board"
	"github.com/samdwyer/blockfall/internal/piece"
	"github.com/samdwyer/blockfall/internal/telemetry"
)

// DefaultDropInterval is the gravity period used when none is configured.
const DefaultDropInterval = 500 * time.Millisecond

const (
	spawnX = board.Cols/2 - 2
	spawnY = 0
)

// SpawnOrigin returns where every new piece's offsets are anchored.
func SpawnOrigin() piece.Point {
	return piece.Point{X: spawnX, Y: spawnY}
}

// Config holds engine options.
type Config struct {
	// DropInterval is the time between gravity ticks. Zero or negative
	// means DefaultDropInterval.
	DropInterval time.Duration
	// SessionID tags logs and spans for this game.
	SessionID string
	// Meter creates the engine's counters. Nil uses the global provider.
	Meter metric.Meter
}

// Engine owns the whole game state. It is not safe for concurrent use: a
// single goroutine drives it with Advance and Apply.
type Engine struct {
	grid     board.Grid
	active   piece.Piece
	hasPiece bool
	blocked  bool
	shapes   piece.Source

	score  int
	lines  int
	locked int
	phase  Phase

	interval time.Duration
	elapsed  time.Duration

	logger       zerolog.Logger
	tracer       trace.Tracer
	linesCleared metric.Int64Counter
	piecesLocked metric.Int64Counter
}

// New creates an engine with an empty grid and spawns the first piece.
func New(cfg Config, shapes piece.Source, logger zerolog.Logger) (*Engine, error) {
	if shapes == nil {
		return nil, errors.New("engine: nil shape source")
	}

	interval := cfg.DropInterval
	if interval <= 0 {
		interval = DefaultDropInterval
	}

	e := &Engine{
		shapes:   shapes,
		phase:    PhaseFalling,
		interval: interval,
		logger:   logger.With().Str("session", cfg.SessionID).Logger(),
		tracer:   telemetry.Tracer("engine"),
	}
	e.initCounters(cfg.Meter)

	if err := e.spawn(); err != nil {
		return nil, fmt.Errorf("engine: initial spawn: %w", err)
	}
	return e, nil
}

// initCounters creates the metric instruments, falling back to no-ops.
func (e *Engine) initCounters(meter metric.Meter) {
	if meter == nil {
		meter = telemetry.Meter("engine")
	}

	lines, err := meter.Int64Counter("blockfall.lines_cleared",
		metric.WithDescription("Rows removed by line clears"))
	if err != nil {
		e.logger.Warn().Err(err).Msg("lines counter unavailable")
		lines, _ = telemetry.NoopMeter().Int64Counter("blockfall.lines_cleared")
	}
	pieces, err := meter.Int64Counter("blockfall.pieces_locked",
		metric.WithDescription("Pieces written into the grid"))
	if err != nil {
		e.logger.Warn().Err(err).Msg("pieces counter unavailable")
		pieces, _ = telemetry.NoopMeter().Int64Counter("blockfall.pieces_locked")
	}

	e.linesCleared = lines
	e.piecesLocked = pieces
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the points accumulated so far.
func (e *Engine) Score() int {
	return e.score
}

// DropInterval returns the gravity period.
func (e *Engine) DropInterval() time.Duration {
	return e.interval
}

// Advance feeds elapsed wall-clock time to the engine and runs every tick
// that has come due. It returns the number of ticks run.
func (e *Engine) Advance(ctx context.Context, elapsed time.Duration) int {
	if e.phase.Terminal() || elapsed <= 0 {
		return 0
	}

	e.elapsed += elapsed
	ticks := 0
	for e.elapsed >= e.interval && !e.phase.Terminal() {
		e.elapsed -= e.interval
		e.Tick(ctx)
		ticks++
	}
	return ticks
}

// Tick runs one gravity step. The active piece moves down a row, or, if it
// cannot, it locks, full rows are cleared and scored, and the next piece
// spawns. It returns true if the piece moved.
func (e *Engine) Tick(ctx context.Context) bool {
	if e.phase.Terminal() || !e.hasPiece {
		return false
	}
	if e.active.MoveDown(&e.grid) {
		return true
	}
	e.lock(ctx)
	return false
}

// Apply performs a player command immediately. It returns true if the
// command changed the game. A failed SoftDrop never locks the piece; only a
// tick does.
func (e *Engine) Apply(ctx context.Context, cmd Command) bool {
	if cmd == Exit {
		if e.phase == PhaseExited {
			return false
		}
		e.logger.Info().Int("score", e.score).Str("from", e.phase.String()).Msg("exit requested")
		e.phase = PhaseExited
		return true
	}

	if e.phase.Terminal() || !e.hasPiece {
		return false
	}

	switch cmd {
	case MoveLeft:
		return e.active.MoveLeft(&e.grid)
	case MoveRight:
		return e.active.MoveRight(&e.grid)
	case SoftDrop:
		return e.active.MoveDown(&e.grid)
	case RotateCW:
		return e.active.RotateClockwise(&e.grid)
	case RotateCCW:
		return e.active.RotateCounterClockwise(&e.grid)
	default:
		return false
	}
}

// lock transfers the active piece into the grid, clears full rows, scores
// them and spawns the next piece.
func (e *Engine) lock(ctx context.Context) {
	ctx, span := e.tracer.Start(ctx, "engine.lock")
	defer span.End()

	shape := e.active.Shape
	if err := e.active.Lock(&e.grid); err != nil {
		// The active piece is always legal, so this is a broken invariant
		e.logger.Error().Err(err).Msg("lock failed")
		span.RecordError(err)
		e.gameOver()
		return
	}
	e.hasPiece = false
	e.locked++
	e.piecesLocked.Add(ctx, 1)

	cleared, err := e.grid.ClearAndCompact(e.grid.FullRows())
	if err != nil {
		e.logger.Error().Err(err).Msg("line clear failed")
		span.RecordError(err)
	}
	points := ScoreFor(cleared)
	e.score += points
	e.lines += cleared

	span.SetAttributes(
		attribute.String("piece.shape", shape.String()),
		attribute.Int("lines.cleared", cleared),
		attribute.Int("score", e.score),
	)

	if cleared > 0 {
		e.linesCleared.Add(ctx, int64(cleared))
		e.logger.Info().
			Int("lines", cleared).
			Int("points", points).
			Int("score", e.score).
			Msg("lines cleared")
	}

	if err := e.spawn(); err != nil {
		span.SetAttributes(attribute.Bool("game.over", true))
	}
}

// spawn places a fresh piece at SpawnOrigin. When it cannot be placed the
// game is over. A blocked piece is kept so the final frame shows it.
func (e *Engine) spawn() error {
	shape := e.shapes.Next()
	p, err := piece.Spawn(&e.grid, SpawnOrigin(), shape)
	if err != nil {
		e.logger.Info().Err(err).Str("shape", shape.String()).Int("score", e.score).Msg("game over")
		e.gameOver()
		if errors.Is(err, piece.ErrSpawnBlocked) {
			e.active = p
			e.blocked = true
		}
		return err
	}

	e.active = p
	e.hasPiece = true
	e.logger.Debug().Str("shape", shape.String()).Msg("piece spawned")
	return nil
}

func (e *Engine) gameOver() {
	e.hasPiece = false
	e.active = piece.Piece{}
	e.phase = PhaseGameOver
}
