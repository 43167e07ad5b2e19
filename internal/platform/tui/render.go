package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/riverrun/internal/core"
)

// ansiCodes maps core.Color to ANSI 256 palette codes for lipgloss.
var ansiCodes = map[core.Color]string{
	core.ColorBlack:        "0",
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorBrightBlue:   "12",
	core.ColorBrightWhite:  "15",
	core.ColorGray:         "245",
}

type stylePair struct {
	fg, bg core.Color
}

var (
	styleMu    sync.Mutex
	styleCache = map[stylePair]lipgloss.Style{}
)

// styleFor returns a lipgloss style for a foreground/background pair,
// building and caching it on first use.
func styleFor(fg, bg core.Color) lipgloss.Style {
	pair := stylePair{fg, bg}

	styleMu.Lock()
	defer styleMu.Unlock()

	if style, ok := styleCache[pair]; ok {
		return style
	}

	style := lipgloss.NewStyle()
	if code, ok := ansiCodes[fg]; ok {
		style = style.Foreground(lipgloss.Color(code))
	}
	if code, ok := ansiCodes[bg]; ok {
		style = style.Background(lipgloss.Color(code))
	}
	styleCache[pair] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startFg, startBg := cell.Fg, cell.Bg

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != startFg || cell.Bg != startBg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startFg, startBg).Render(run.String()))
		}
	}
	return sb.String()
}
