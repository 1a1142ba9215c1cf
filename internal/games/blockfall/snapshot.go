package blockfall

// Snapshot captures the complete game state for determinism testing and
// headless simulation.
type Snapshot struct {
	Tick         uint64
	State        State
	Paused       bool
	Piece        Piece
	PieceName    string
	Grid         [][]bool
	Spawns       int
	LinesCleared int
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	if g.board == nil {
		return Snapshot{Tick: g.tick, State: StateGameOver}
	}
	p := g.board.Piece()
	return Snapshot{
		Tick:         g.tick,
		State:        g.board.State(),
		Paused:       g.paused,
		Piece:        p,
		PieceName:    g.PieceName(p.Kind),
		Grid:         g.board.Grid(),
		Spawns:       g.board.Spawns(),
		LinesCleared: g.linesCleared,
	}
}

// Equal reports whether two snapshots describe the same board and piece.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tick != o.Tick || s.State != o.State || s.Paused != o.Paused ||
		s.Spawns != o.Spawns || s.LinesCleared != o.LinesCleared {
		return false
	}
	if s.Piece.Kind != o.Piece.Kind || s.Piece.X != o.Piece.X || s.Piece.Y != o.Piece.Y ||
		!s.Piece.Shape.Equal(o.Piece.Shape) {
		return false
	}
	return Shape(s.Grid).Equal(Shape(o.Grid))
}
