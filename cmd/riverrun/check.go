package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/riverrun/internal/config"
	"github.com/vovakirdan/riverrun/internal/games/river"
)

var flagCheckWidth int

var checkCmd = &cobra.Command{
	Use:   "check [design-file]",
	Short: "Validate a scene design file",
	Long: `Parse a scene design file and print the resolved part layout.

Without an argument, checks the design the game would use (config, then
./scene.design, then the built-in default).

Examples:
  riverrun check ./scene.design
  riverrun check ./scene.design --width 100
  riverrun check`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().IntVar(&flagCheckWidth, "width", 80, "Scene width to resolve percentages at")
}

func runCheck(cmd *cobra.Command, args []string) {
	var (
		design []river.DesignLine
		err    error
		source string
	)

	if len(args) == 1 {
		source = args[0]
		design, err = river.LoadDesign(args[0])
	} else {
		var cfg config.Config
		cfg, err = config.Load(flagConfig)
		if err == nil {
			source = "resolved design"
			design, err = river.ResolveDesign("", cfg)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Design OK: %s (%d parts, width %d)\n\n", source, len(design), flagCheckWidth)
	fmt.Printf("  %-5s  %-30s  %-6s  %s\n", "Part", "Widths (land/river/...)", "Rows", "Preview")

	totalRows := 0
	for i, line := range design {
		w := line.Widths(flagCheckWidth)
		widths := fmt.Sprintf("%d/%d/%d/%d/%d", w[0], w[1], w[2], w[3], w[4])
		fmt.Printf("  %-5d  %-30s  %-6d  %s\n", i+1, widths, line.Height, previewRow(w))
		totalRows += line.Height
	}

	fmt.Printf("\nTotal: %d rows per scene pass\n", totalRows)
}

// previewRow draws one row of a part, scaled down to fit a terminal line.
func previewRow(w [5]int) string {
	const previewWidth = 20
	total := w[0] + w[1] + w[2] + w[3] + w[4]
	if total == 0 {
		return ""
	}

	var b strings.Builder
	glyphs := [5]byte{'#', '~', '#', '~', '#'}
	for i, width := range w {
		n := width * previewWidth / total
		b.WriteString(strings.Repeat(string(glyphs[i]), n))
	}
	return b.String()
}
