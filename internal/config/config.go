// Package config provides YAML-based configuration loading and validation
// for Blockfall.
package config

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// BlockfallConfig contains all configuration for the game.
type BlockfallConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Render RenderConfig `yaml:"render"`
	Shapes []ShapeSpec  `yaml:"shapes"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines the platform tick rate and gravity speed.
type TimingConfig struct {
	TickRate         int `yaml:"tick_rate"`
	GravityPerSecond int `yaml:"gravity_per_second"`
}

// RenderConfig defines how one board cell maps to terminal cells.
type RenderConfig struct {
	CellWidth  int  `yaml:"cell_width"`
	CellHeight int  `yaml:"cell_height"`
	ShowHelp   bool `yaml:"show_help"`
}

// ShapeSpec describes one piece template. Rows use '#' for occupied cells.
type ShapeSpec struct {
	Name  string   `yaml:"name"`
	Color string   `yaml:"color"`
	Rows  []string `yaml:"rows"`
}

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Message)
}

// Matrix parses the rows into an occupancy matrix.
// Returns an error if the shape is empty, ragged or has no occupied cell.
func (s ShapeSpec) Matrix() ([][]bool, error) {
	if len(s.Rows) == 0 {
		return nil, fmt.Errorf("shape %q has no rows", s.Name)
	}

	width := len([]rune(s.Rows[0]))
	matrix := make([][]bool, len(s.Rows))
	occupied := 0
	for y, row := range s.Rows {
		runes := []rune(row)
		if len(runes) == 0 {
			return nil, fmt.Errorf("shape %q row %d is empty", s.Name, y)
		}
		if len(runes) != width {
			return nil, fmt.Errorf("shape %q row %d has width %d, expected %d", s.Name, y, len(runes), width)
		}
		matrix[y] = make([]bool, width)
		for x, ch := range runes {
			if ch == '#' {
				matrix[y][x] = true
				occupied++
			}
		}
	}

	if occupied == 0 {
		return nil, fmt.Errorf("shape %q has no occupied cells", s.Name)
	}
	return matrix, nil
}

// ColorValue resolves the configured color name.
func (s ShapeSpec) ColorValue() (core.Color, error) {
	c, ok := core.ParseColor(s.Color)
	if !ok {
		return core.ColorDefault, fmt.Errorf("shape %q has unknown color %q", s.Name, s.Color)
	}
	return c, nil
}

// GravityEvery returns how many platform ticks pass between gravity steps.
func (t TimingConfig) GravityEvery() int {
	if t.GravityPerSecond <= 0 {
		return 1
	}
	return max(1, t.TickRate/t.GravityPerSecond)
}

// Validate checks the configuration for values the game cannot run with.
func (c BlockfallConfig) Validate() error {
	switch {
	case c.Board.Rows <= 0:
		return ValidationError{Field: "board.rows", Message: fmt.Sprintf("must be positive, got %d", c.Board.Rows)}
	case c.Board.Cols <= 0:
		return ValidationError{Field: "board.cols", Message: fmt.Sprintf("must be positive, got %d", c.Board.Cols)}
	case c.Timing.TickRate <= 0:
		return ValidationError{Field: "timing.tick_rate", Message: fmt.Sprintf("must be positive, got %d", c.Timing.TickRate)}
	case c.Timing.GravityPerSecond <= 0:
		return ValidationError{Field: "timing.gravity_per_second", Message: fmt.Sprintf("must be positive, got %d", c.Timing.GravityPerSecond)}
	case c.Timing.GravityPerSecond > c.Timing.TickRate:
		return ValidationError{Field: "timing.gravity_per_second", Message: "cannot exceed timing.tick_rate"}
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return ValidationError{Field: "render", Message: "cell_width and cell_height must be positive"}
	case len(c.Shapes) == 0:
		return ValidationError{Field: "shapes", Message: "at least one shape is required"}
	}

	for i, s := range c.Shapes {
		field := fmt.Sprintf("shapes[%d]", i)
		if _, err := s.Matrix(); err != nil {
			return ValidationError{Field: field, Message: err.Error()}
		}
		if _, err := s.ColorValue(); err != nil {
			return ValidationError{Field: field, Message: err.Error()}
		}
	}
	return nil
}
