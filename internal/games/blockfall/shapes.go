package blockfall

import (
	"fmt"
	"strings"
)

// Shape is a rectangular occupancy matrix in piece-local coordinates,
// indexed [row][col]. Shapes are plain data; every operation returns a copy.
type Shape [][]bool

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = make([]bool, len(row))
		copy(out[y], row)
	}
	return out
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Cells returns the piece-local (col, row) of every occupied sub-cell in
// row-major order.
func (s Shape) Cells() [][2]int {
	var cells [][2]int
	for y, row := range s {
		for x, filled := range row {
			if filled {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}

// String renders the shape with '#' for occupied and '.' for empty cells.
func (s Shape) String() string {
	var sb strings.Builder
	for y, row := range s {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// validate checks that the shape is non-empty, rectangular and has at least
// one occupied cell.
func (s Shape) validate() error {
	if len(s) == 0 || len(s[0]) == 0 {
		return ErrEmptyShape
	}
	width := len(s[0])
	for y, row := range s {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has width %d, expected %d", ErrRaggedShape, y, len(row), width)
		}
	}
	if len(s.Cells()) == 0 {
		return ErrEmptyShape
	}
	return nil
}

// Rotate returns the shape turned 90° clockwise: the matrix is transposed
// with the row order reversed, so new row i is old column i read
// bottom-to-top. A h×w shape becomes w×h.
func Rotate(s Shape) Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := range out {
		out[i] = make([]bool, h)
		for j := 0; j < h; j++ {
			out[i][j] = s[h-1-j][i]
		}
	}
	return out
}

// ParseShape builds a shape from rows where '#' marks an occupied cell.
func ParseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, 0, len(row))
		for _, ch := range row {
			s[y] = append(s[y], ch == '#')
		}
	}
	return s
}

// Canonical piece kinds, in the order of DefaultTemplates.
const (
	KindI = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindNames lists the canonical piece names by kind.
var KindNames = []string{"I", "O", "T", "S", "Z", "J", "L"}

// DefaultTemplates returns fresh copies of the seven canonical shapes.
func DefaultTemplates() []Shape {
	return []Shape{
		KindI: ParseShape("####"),
		KindO: ParseShape("##", "##"),
		KindT: ParseShape(".#.", "###"),
		KindS: ParseShape(".##", "##."),
		KindZ: ParseShape("##.", ".##"),
		KindJ: ParseShape("#..", "###"),
		KindL: ParseShape("..#", "###"),
	}
}
