// Package river implements the riverrun game: a craft flying up a
// procedurally generated river, dodging terrain and shooting down enemies.
// The terrain is described by a "scene design": one line per terrain part,
// each line five segment percentages (land, river, land, river, land) plus
// the number of rows the part spans.
package river

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/riverrun/internal/config"
)

// DesignLine is one parsed line of a scene design file.
// The five percentages describe the horizontal split of every row in the
// part, in fixed order: land, river, land, river, land. They must sum to
// at most 100; rounding shortfall is absorbed by the last land segment,
// never subtracted.
type DesignLine struct {
	Land1  float64
	River1 float64
	Land2  float64
	River2 float64
	Land3  float64
	Height int // rows this part spans
}

// ParseDesign parses a scene design from raw file content.
// Blank lines and lines starting with '#' are skipped. Every other line
// must contain exactly six whitespace-separated numbers; anything else is
// a startup error carrying the offending line number.
func ParseDesign(data []byte) ([]DesignLine, error) {
	var lines []DesignLine

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 6 {
			return nil, fmt.Errorf("design: line %d: expected 6 fields, got %d", lineNo, len(fields))
		}

		nums := make([]float64, 6)
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("design: line %d: field %d is not a number: %q", lineNo, i+1, f)
			}
			nums[i] = v
		}

		d := DesignLine{
			Land1:  nums[0],
			River1: nums[1],
			Land2:  nums[2],
			River2: nums[3],
			Land3:  nums[4],
			Height: int(nums[5]),
		}

		total := d.Land1 + d.River1 + d.Land2 + d.River2 + d.Land3
		if total > 100 {
			return nil, fmt.Errorf("design: line %d: segment percentages sum to %.1f, must not exceed 100", lineNo, total)
		}
		for i, pct := range nums[:5] {
			if pct < 0 {
				return nil, fmt.Errorf("design: line %d: field %d is negative", lineNo, i+1)
			}
		}
		if d.Height < 1 {
			return nil, fmt.Errorf("design: line %d: part height must be at least 1, got %v", lineNo, nums[5])
		}

		lines = append(lines, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("design: reading input: %w", err)
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("design: no design lines found")
	}
	return lines, nil
}

// LoadDesign reads and parses a scene design file.
func LoadDesign(path string) ([]DesignLine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("design: failed to read %s: %w", path, err)
	}
	lines, err := ParseDesign(data)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, path)
	}
	return lines, nil
}

// ResolveDesign locates and loads the scene design.
// Search order: flagPath -> cfg.Scene.Design -> ./scene.design -> the
// embedded default design.
func ResolveDesign(flagPath string, cfg config.Config) ([]DesignLine, error) {
	if flagPath != "" {
		return LoadDesign(flagPath)
	}
	if cfg.Scene.Design != "" {
		return LoadDesign(cfg.Scene.Design)
	}
	if _, err := os.Stat("scene.design"); err == nil {
		return LoadDesign("scene.design")
	}
	return DefaultDesign(), nil
}

// Widths reports the five segment widths of the line resolved at the
// given total scene width.
func (d DesignLine) Widths(width int) [5]int {
	return segmentWidths(d, width)
}

// segmentWidths converts a design line's percentages to absolute cell
// counts for the given row width. Each segment is floored; the shortfall
// against the full width is added to the last land segment so the counts
// always sum exactly to width.
func segmentWidths(d DesignLine, width int) [5]int {
	toCells := func(pct float64) int {
		return int(math.Floor(pct * float64(width) / 100.0))
	}

	w := [5]int{
		toCells(d.Land1),
		toCells(d.River1),
		toCells(d.Land2),
		toCells(d.River2),
		toCells(d.Land3),
	}

	total := w[0] + w[1] + w[2] + w[3] + w[4]
	if total < width {
		w[4] += width - total
	}
	return w
}

// generateRow assembles one terrain row from a design line: the five
// segments concatenated in fixed order land, river, land, river, land.
func generateRow(d DesignLine, width int) []Cell {
	w := segmentWidths(d, width)
	kinds := [5]Kind{Land, River, Land, River, Land}

	row := make([]Cell, 0, width)
	for i, n := range w {
		for j := 0; j < n; j++ {
			row = append(row, Cell{Kind: kinds[i]})
		}
	}
	return row
}
