package blockfall

import (
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	blockRune  = '█'
	lockedRune = '#'
	activeRune = '@'
	emptyRune  = '.'
)

// RenderASCII draws the board as text: '#' locked, '@' active piece,
// '.' empty. Active cells above the board are not shown.
func RenderASCII(b *Board) string {
	active := activeCells(b)

	var sb strings.Builder
	sb.Grow((b.cols + 1) * b.rows)
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.cols; c++ {
			switch {
			case active[[2]int{c, r}]:
				sb.WriteRune(activeRune)
			case b.grid[r][c]:
				sb.WriteRune(lockedRune)
			default:
				sb.WriteRune(emptyRune)
			}
		}
	}
	return sb.String()
}

// activeCells returns the absolute (col, row) of every on-board cell of the
// active piece.
func activeCells(b *Board) map[[2]int]bool {
	cells := make(map[[2]int]bool, 4)
	for _, c := range b.shape.Cells() {
		col, r := b.x+c[0], b.y+c[1]
		if r >= 0 && r < b.rows && col >= 0 && col < b.cols {
			cells[[2]int{col, r}] = true
		}
	}
	return cells
}

// Layout returns the screen rectangle the framed board occupies, centered
// on the screen below a one-line title.
func (g *Game) Layout(screen core.Rect) core.Rect {
	w := g.cfg.Board.Cols*g.cfg.Render.CellWidth + 2
	h := g.cfg.Board.Rows*g.cfg.Render.CellHeight + 2
	area := core.NewRect(screen.X, screen.Y+1, screen.W, core.Max(0, screen.H-1))
	return area.Centered(w, h)
}

// Render draws the framed board: locked cells in white, the active piece in
// its template color, each board cell as a cell_width×cell_height block
// at (col*cell_width, row*cell_height) inside the frame.
func (g *Game) Render(dst *core.Screen) {
	frame := g.Layout(dst.Bounds())
	if frame.W > dst.Width() || frame.Bottom() > dst.Height() {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	dst.DrawTextCentered(frame.Y-1, "B L O C K F A L L")
	dst.DrawBox(frame, core.ColorGray)

	if g.board == nil {
		return
	}

	cw, ch := g.cfg.Render.CellWidth, g.cfg.Render.CellHeight
	cellRect := func(col, row int) core.Rect {
		return core.NewRect(frame.X+1+col*cw, frame.Y+1+row*ch, cw, ch)
	}

	for r := 0; r < g.board.rows; r++ {
		for c := 0; c < g.board.cols; c++ {
			if g.board.grid[r][c] {
				dst.FillRect(cellRect(c, r), blockRune, core.ColorWhite)
			}
		}
	}

	color := core.ColorDefault
	if g.board.kind < len(g.colors) {
		color = g.colors[g.board.kind]
	}
	for pos := range activeCells(g.board) {
		dst.FillRect(cellRect(pos[0], pos[1]), blockRune, color)
	}

	switch {
	case g.board.IsGameOver():
		g.drawBanner(dst, frame, "GAME OVER", "R restart  Q quit")
	case g.paused:
		g.drawBanner(dst, frame, "PAUSED", "P: resume")
	}
}

// drawBanner writes a two-line message across the middle of the frame.
func (g *Game) drawBanner(dst *core.Screen, frame core.Rect, title, hint string) {
	mid := frame.Y + frame.H/2
	for _, line := range []struct {
		y    int
		text string
	}{{mid - 1, title}, {mid, hint}} {
		text := " " + line.text + " "
		x := frame.X + (frame.W-len(text))/2
		if x < frame.X+1 {
			x = frame.X + 1
		}
		dst.DrawTextColored(x, line.y, text, core.ColorYellow)
	}
}
