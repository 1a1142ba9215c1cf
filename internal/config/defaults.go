package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the built-in configuration used when the
// embedded YAML cannot be parsed.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Rows: 20,
			Cols: 10,
		},
		Timing: TimingConfig{
			TickRate:         30,
			GravityPerSecond: 5,
		},
		Render: RenderConfig{
			CellWidth:  2,
			CellHeight: 1,
			ShowHelp:   true,
		},
		Shapes: []ShapeSpec{
			{Name: "I", Color: "cyan", Rows: []string{"####"}},
			{Name: "O", Color: "yellow", Rows: []string{"##", "##"}},
			{Name: "T", Color: "magenta", Rows: []string{".#.", "###"}},
			{Name: "S", Color: "green", Rows: []string{".##", "##."}},
			{Name: "Z", Color: "red", Rows: []string{"##.", ".##"}},
			{Name: "J", Color: "blue", Rows: []string{"#..", "###"}},
			{Name: "L", Color: "orange", Rows: []string{"..#", "###"}},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBlockfallYAML
}
