package blockfall

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// GameID is the registry identifier.
const GameID = "blockfall"

// Game adapts a Board to registry.Game. Each Step applies the
// player's actions in arrival order first, then the gravity step when it
// is due.
type Game struct {
	cfg       config.BlockfallConfig
	templates []Shape
	names     []string
	colors    []core.Color
	logger    *log.Logger
	base      *log.Logger

	board *Board
	rng   *rand.Rand
	runID string

	tick          uint64
	gravityEvery  int
	gravityTicker int
	paused        bool
	linesCleared  int

	screenW int
	screenH int
}

func init() {
	registry.Register(GameID, "Blockfall", func(opts registry.Options) (registry.Game, error) {
		return New(opts.Config, opts.Logger)
	})
}

// New validates cfg and builds a game. A nil logger discards output.
// The board is created by Reset.
func New(cfg config.BlockfallConfig, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:          cfg,
		base:         logger,
		logger:       logger,
		gravityEvery: cfg.Timing.GravityEvery(),
	}
	for _, spec := range cfg.Shapes {
		m, err := spec.Matrix()
		if err != nil {
			return nil, err
		}
		c, err := spec.ColorValue()
		if err != nil {
			return nil, err
		}
		g.templates = append(g.templates, Shape(m))
		g.names = append(g.names, spec.Name)
		g.colors = append(g.colors, c)
	}

	// Catch templates that do not fit the board before the first Reset.
	if _, err := NewBoard(cfg.Board.Rows, cfg.Board.Cols,
		WithTemplates(g.templates...), WithShapeSource(SequenceSource(0))); err != nil {
		return nil, fmt.Errorf("blockfall: invalid board config: %w", err)
	}
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset starts a new game on a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.gravityTicker = 0
	g.paused = false
	g.linesCleared = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.runID = uuid.NewString()
	g.logger = g.base.With("run", g.runID)

	board, err := NewBoard(g.cfg.Board.Rows, g.cfg.Board.Cols,
		WithTemplates(g.templates...),
		WithShapeSource(UniformSource(g.rng)),
	)
	if err != nil {
		// New already built a board from the same config.
		g.logger.Error("cannot create board", "error", err)
		return
	}
	g.board = board

	g.logger.Info("game started",
		"rows", board.Rows(),
		"cols", board.Cols(),
		"seed", cfg.Seed,
		"gravity_every", g.gravityEvery,
	)
	g.logSpawn()
}

// Resize records new screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Board exposes the underlying board for read-only inspection.
func (g *Game) Board() *Board {
	return g.board
}

// PieceName returns the configured name of a template kind.
func (g *Game) PieceName(kind int) string {
	if kind < 0 || kind >= len(g.names) {
		return "?"
	}
	return g.names[kind]
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.board == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.board.IsGameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.board.IsGameOver() {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}

	if g.board.IsGameOver() || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)

	var result core.StepResult
	g.gravityTicker++
	if g.gravityTicker >= g.gravityEvery {
		g.gravityTicker = 0
		result.Locked, result.LinesCleared = g.gravity()
	}

	result.State = g.State()
	return result
}

// applyInput runs every player command in the order it arrived.
func (g *Game) applyInput(in core.InputFrame) {
	for _, a := range in.Actions() {
		switch a {
		case core.ActionLeft:
			g.board.MoveLeft()
		case core.ActionRight:
			g.board.MoveRight()
		case core.ActionRotate:
			g.board.Rotate()
		case core.ActionDown:
			g.board.SoftDrop()
		}
	}
}

// gravity runs one automatic drop and logs what it caused.
func (g *Game) gravity() (bool, int) {
	before := g.board.Piece()
	locked, cleared := g.board.Fall()
	if !locked {
		return false, 0
	}

	g.linesCleared += cleared
	g.logger.Debug("piece locked",
		"piece", g.PieceName(before.Kind),
		"x", before.X,
		"y", before.Y,
	)
	if cleared > 0 {
		g.logger.Debug("lines cleared", "count", cleared, "total", g.linesCleared)
	}

	if g.board.IsGameOver() {
		g.logger.Info("game over", "tick", g.tick, "pieces", g.board.Spawns())
	} else {
		g.logSpawn()
	}
	return true, cleared
}

func (g *Game) logSpawn() {
	p := g.board.Piece()
	g.logger.Debug("piece spawned", "piece", g.PieceName(p.Kind), "x", p.X, "y", p.Y)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	over := g.board == nil || g.board.IsGameOver()
	return core.GameState{
		GameOver: over,
		Paused:   g.paused,
	}
}
