// Package blockfall implements the falling-block puzzle: a Board that owns
// the locked-cell grid and the active piece, and a Game that schedules
// player input and gravity around it for the terminal front end.
package blockfall

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Construction errors. Everything after construction is a policy outcome
// (rejected move, game over), never an error.
var (
	ErrInvalidDimensions = errors.New("blockfall: board dimensions must be positive")
	ErrNoShapes          = errors.New("blockfall: at least one shape template is required")
	ErrEmptyShape        = errors.New("blockfall: shape template has no occupied cells")
	ErrRaggedShape       = errors.New("blockfall: shape template rows differ in width")
	ErrShapeTooLarge     = errors.New("blockfall: shape template does not fit the board")
)

// State is the lifecycle of a board.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Piece is a read-only copy of the active piece.
type Piece struct {
	Kind  int   // Index into the board's templates
	Shape Shape // Current (possibly rotated) shape
	X, Y  int   // Grid column/row of the shape's top-left cell
}

// Board holds the grid of locked cells and the active piece.
// It is not safe for concurrent use; the caller serializes all operations.
type Board struct {
	rows, cols int
	grid       [][]bool

	templates []Shape
	source    ShapeSource

	kind  int
	shape Shape
	x, y  int

	state  State
	spawns int
}

// Option configures a Board at construction.
type Option func(*Board)

// WithTemplates replaces the canonical seven shapes.
func WithTemplates(templates ...Shape) Option {
	return func(b *Board) {
		b.templates = make([]Shape, len(templates))
		for i, t := range templates {
			b.templates[i] = t.Clone()
		}
	}
}

// WithShapeSource sets how the next piece is picked.
func WithShapeSource(src ShapeSource) Option {
	return func(b *Board) {
		b.source = src
	}
}

// NewBoard allocates an empty rows×cols grid and spawns the first piece.
// It fails on non-positive dimensions or unusable templates.
func NewBoard(rows, cols int, opts ...Option) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}

	b := &Board{
		rows:      rows,
		cols:      cols,
		templates: DefaultTemplates(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if len(b.templates) == 0 {
		return nil, ErrNoShapes
	}
	for i, t := range b.templates {
		if err := t.validate(); err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		if t.Width() > cols || t.Height() > rows {
			return nil, fmt.Errorf("%w: template %d is %dx%d, board is %dx%d",
				ErrShapeTooLarge, i, t.Height(), t.Width(), rows, cols)
		}
	}
	if b.source == nil {
		b.source = UniformSource(rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	b.grid = make([][]bool, rows)
	for y := range b.grid {
		b.grid[y] = make([]bool, cols)
	}

	b.Spawn()
	return b, nil
}

// Rows returns the grid height.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the grid width.
func (b *Board) Cols() int {
	return b.cols
}

// Templates returns copies of the shape templates.
func (b *Board) Templates() []Shape {
	out := make([]Shape, len(b.templates))
	for i, t := range b.templates {
		out[i] = t.Clone()
	}
	return out
}

// State returns the lifecycle state.
func (b *Board) State() State {
	return b.state
}

// IsGameOver reports whether a spawned piece has been blocked.
func (b *Board) IsGameOver() bool {
	return b.state == StateGameOver
}

// Spawns returns how many pieces have been spawned, including the first.
func (b *Board) Spawns() int {
	return b.spawns
}

// Spawn places a fresh copy of the next template horizontally centered on
// the top row. A spawn that overlaps the stack, or lands while the top row
// holds locked cells, ends the game.
func (b *Board) Spawn() {
	if b.state == StateGameOver {
		return
	}

	n := len(b.templates)
	idx := b.source(n) % n
	if idx < 0 {
		idx += n
	}

	b.kind = idx
	b.shape = b.templates[idx].Clone()
	b.x = b.cols/2 - b.shape.Width()/2
	b.y = 0
	b.spawns++

	if b.CheckCollision(0, 0) || b.topRowOccupied() {
		b.state = StateGameOver
	}
}

// CheckCollision reports whether the active piece, shifted by (dx, dy),
// would overlap a wall, the floor or a locked cell.
func (b *Board) CheckCollision(dx, dy int) bool {
	return b.Collides(b.shape, dx, dy)
}

// Collides reports whether shape, placed at the active position shifted by
// (dx, dy), would overlap a wall, the floor or a locked cell. Cells above
// the board only check the side walls.
func (b *Board) Collides(shape Shape, dx, dy int) bool {
	for sy, row := range shape {
		for sx, filled := range row {
			if !filled {
				continue
			}
			col := b.x + sx + dx
			r := b.y + sy + dy
			if col < 0 || col >= b.cols || r >= b.rows {
				return true
			}
			if r >= 0 && b.grid[r][col] {
				return true
			}
		}
	}
	return false
}

// MoveLeft shifts the piece one column left if nothing blocks it.
func (b *Board) MoveLeft() bool {
	return b.shift(-1)
}

// MoveRight shifts the piece one column right if nothing blocks it.
func (b *Board) MoveRight() bool {
	return b.shift(1)
}

func (b *Board) shift(dx int) bool {
	if b.state == StateGameOver || b.CheckCollision(dx, 0) {
		return false
	}
	b.x += dx
	return true
}

// SoftDrop moves the piece one row down if nothing blocks it. Unlike
// MoveDown it never locks the piece.
func (b *Board) SoftDrop() bool {
	if b.state == StateGameOver || b.CheckCollision(0, 1) {
		return false
	}
	b.y++
	return true
}

// MoveDown is the gravity step. It reports whether the piece locked.
func (b *Board) MoveDown() bool {
	locked, _ := b.Fall()
	return locked
}

// Fall is MoveDown that also reports how many rows were cleared. When the
// piece cannot descend it is locked, full rows are cleared and the next
// piece is spawned, which may end the game.
func (b *Board) Fall() (locked bool, cleared int) {
	if b.state == StateGameOver {
		return false, 0
	}
	if !b.CheckCollision(0, 1) {
		b.y++
		return false, 0
	}

	b.lock()
	cleared = b.ClearLines()
	b.Spawn()
	return true, cleared
}

// lock copies the active piece into the grid. Cells above the board are
// dropped.
func (b *Board) lock() {
	for _, c := range b.shape.Cells() {
		col, r := b.x+c[0], b.y+c[1]
		if r < 0 || r >= b.rows || col < 0 || col >= b.cols {
			continue
		}
		b.grid[r][col] = true
	}
}

// Rotate turns the piece clockwise in place if the rotated shape fits at
// the current position. There is no wall kick: a blocked rotation leaves
// the piece untouched.
func (b *Board) Rotate() bool {
	if b.state == StateGameOver {
		return false
	}
	rotated := Rotate(b.shape)
	if b.Collides(rotated, 0, 0) {
		return false
	}
	b.shape = rotated
	return true
}

// ClearLines removes every full row and inserts an empty row on top for
// each one. Surviving rows keep their relative order. Returns the number
// of rows removed.
func (b *Board) ClearLines() int {
	if b.state == StateGameOver {
		return 0
	}

	kept := make([][]bool, 0, b.rows)
	for _, row := range b.grid {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := b.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	grid := make([][]bool, 0, b.rows)
	for i := 0; i < cleared; i++ {
		grid = append(grid, make([]bool, b.cols))
	}
	b.grid = append(grid, kept...)
	return cleared
}

func rowFull(row []bool) bool {
	for _, filled := range row {
		if !filled {
			return false
		}
	}
	return true
}

func (b *Board) topRowOccupied() bool {
	for _, filled := range b.grid[0] {
		if filled {
			return true
		}
	}
	return false
}

// Cell reports whether the locked cell at (row, col) is occupied.
// Out-of-range coordinates report false.
func (b *Board) Cell(row, col int) bool {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return false
	}
	return b.grid[row][col]
}

// Grid returns a copy of the locked-cell grid, indexed [row][col].
func (b *Board) Grid() [][]bool {
	out := make([][]bool, b.rows)
	for y, row := range b.grid {
		out[y] = make([]bool, b.cols)
		copy(out[y], row)
	}
	return out
}

// Piece returns a copy of the active piece.
func (b *Board) Piece() Piece {
	return Piece{
		Kind:  b.kind,
		Shape: b.shape.Clone(),
		X:     b.x,
		Y:     b.y,
	}
}
