package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded default is invalid: %v", err)
	}

	def := DefaultBlockfallConfig()
	if cfg.Board != def.Board || cfg.Timing != def.Timing || cfg.Render != def.Render {
		t.Errorf("embedded config %+v differs from hardcoded %+v", cfg, def)
	}
	if len(cfg.Shapes) != 7 {
		t.Fatalf("expected 7 default shapes, got %d", len(cfg.Shapes))
	}
	for i := range def.Shapes {
		if cfg.Shapes[i].Name != def.Shapes[i].Name ||
			strings.Join(cfg.Shapes[i].Rows, "/") != strings.Join(def.Shapes[i].Rows, "/") {
			t.Errorf("shape %d: embedded %+v, hardcoded %+v", i, cfg.Shapes[i], def.Shapes[i])
		}
	}
}

func TestLoadCustomPathKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "board:\n  rows: 12\n  cols: 6\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Rows != 12 || cfg.Board.Cols != 6 {
		t.Errorf("board = %+v, expected 12x6", cfg.Board)
	}
	if cfg.Timing.GravityPerSecond != 5 {
		t.Errorf("gravity_per_second = %d, expected default 5", cfg.Timing.GravityPerSecond)
	}
	if len(cfg.Shapes) != 7 {
		t.Errorf("expected default shapes, got %d", len(cfg.Shapes))
	}
}

func TestLoadCustomShapesReplaceDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.yaml")
	data := "shapes:\n  - name: dot\n    color: white\n    rows: [\"#\"]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(cfg.Shapes) != 1 || cfg.Shapes[0].Name != "dot" {
		t.Errorf("shapes = %+v, expected only dot", cfg.Shapes)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"zero rows", "board:\n  rows: 0\n", "board.rows"},
		{"negative cols", "board:\n  cols: -3\n", "board.cols"},
		{"gravity faster than ticks", "timing:\n  tick_rate: 4\n  gravity_per_second: 5\n", "timing.gravity_per_second"},
		{"ragged shape", "shapes:\n  - name: bad\n    rows: [\"##\", \"#\"]\n", "shapes[0]"},
		{"empty shape", "shapes:\n  - name: bad\n    rows: [\"..\"]\n", "shapes[0]"},
		{"unknown color", "shapes:\n  - name: bad\n    color: plaid\n    rows: [\"#\"]\n", "shapes[0]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o600); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}

			_, err := Load(path)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Field = %q, expected %q", verr.Field, tc.field)
			}
		})
	}
}

func TestShapeSpecMatrix(t *testing.T) {
	m, err := ShapeSpec{Name: "T", Rows: []string{".#.", "###"}}.Matrix()
	if err != nil {
		t.Fatalf("Matrix() failed: %v", err)
	}
	expected := [][]bool{
		{false, true, false},
		{true, true, true},
	}
	for y := range expected {
		for x := range expected[y] {
			if m[y][x] != expected[y][x] {
				t.Errorf("cell (%d, %d) = %v, expected %v", x, y, m[y][x], expected[y][x])
			}
		}
	}
}

func TestGravityEvery(t *testing.T) {
	tests := []struct {
		timing   TimingConfig
		expected int
	}{
		{TimingConfig{TickRate: 30, GravityPerSecond: 5}, 6},
		{TimingConfig{TickRate: 5, GravityPerSecond: 5}, 1},
		{TimingConfig{TickRate: 60, GravityPerSecond: 7}, 8},
		{TimingConfig{TickRate: 30, GravityPerSecond: 0}, 1},
	}
	for _, tc := range tests {
		if got := tc.timing.GravityEvery(); got != tc.expected {
			t.Errorf("GravityEvery(%+v) = %d, expected %d", tc.timing, got, tc.expected)
		}
	}
}

func TestMarshalRoundTripValidates(t *testing.T) {
	data, err := Marshal(DefaultBlockfallConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("re-parsed config invalid: %v", err)
	}
}
