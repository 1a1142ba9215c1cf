package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Show the piece templates and their rotations",
	Long: `Print every configured piece template next to its three clockwise
rotations, and whether four rotations bring it back unchanged.`,
	Args: cobra.NoArgs,
	Run:  runShapes,
}

var (
	shapeNameStyle = lipgloss.NewStyle().Bold(true)
	shapeCellStyle = lipgloss.NewStyle().PaddingRight(3)
)

func runShapes(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	for i, spec := range cfg.Shapes {
		m, err := spec.Matrix()
		if err != nil {
			fail("%v", err)
		}
		shape := blockfall.Shape(m)

		blocks := make([]string, 0, 4)
		rotated := shape
		for i := 0; i < 4; i++ {
			blocks = append(blocks, shapeCellStyle.Render(rotated.String()))
			rotated = blockfall.Rotate(rotated)
		}

		roundTrip := "exact"
		if !rotated.Equal(shape) {
			roundTrip = "drifts"
		}

		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s  (%s, round trip %s)\n", shapeNameStyle.Render(spec.Name), spec.Color, roundTrip)
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	}
}
