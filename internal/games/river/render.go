package river

import (
	"fmt"

	"github.com/vovakirdan/riverrun/internal/core"
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.mode {
	case core.ModeMain:
		g.renderMain(dst)
	case core.ModePlaying:
		g.renderPlaying(dst, false)
	case core.ModePaused:
		g.renderPlaying(dst, true)
	case core.ModeGameOver:
		g.renderGameOver(dst)
	}
}

// renderMain draws the title screen.
func (g *Game) renderMain(dst *core.Screen) {
	midY := dst.Height() / 2

	dst.DrawStyledText((dst.Width()-len("R I V E R   R U N"))/2, midY-4,
		"R I V E R   R U N", core.ColorYellow, core.ColorDefault)
	dst.DrawTextCentered(midY-1, "Fly up the river. Don't touch land. Shoot what shoots back.")
	dst.DrawTextCentered(midY+1, "←/→ move   Space fire   P pause   Ctrl+C quit")
	dst.DrawTextCentered(midY+3, "Press any key to start...")
}

// renderPlaying draws the scrolling terrain, projectiles, the craft, and
// the HUD. The visible window starts at the frame counter and is drawn
// reversed so the nearest row sits at the bottom of the screen.
func (g *Game) renderPlaying(dst *core.Screen, paused bool) {
	h := dst.Height()
	w := core.Min(dst.Width(), g.scene.Width())

	window := g.scene.Window(g.frame, h)
	for y := 0; y < h; y++ {
		row := window[len(window)-1-y]
		for x := 0; x < w; x++ {
			switch row[x].Kind {
			case Land:
				dst.SetCell(x, y, g.glyphs.land, core.ColorGreen, core.ColorDefault)
			case River:
				dst.SetCell(x, y, g.glyphs.river, core.ColorBlue, core.ColorDefault)
			case Enemy:
				dst.SetCell(x, y, g.glyphs.enemy, core.ColorWhite, core.ColorBlue)
			}
		}
	}

	for _, p := range g.projectiles {
		dst.SetCell(p.X, p.Y, g.glyphs.projectile, core.ColorBrightRed, core.ColorBlue)
	}

	dst.SetCell(g.playerX, g.playerY, g.glyphs.player, core.ColorBrightYellow, core.ColorBlue)

	hud := fmt.Sprintf(" Score: %d  Distance: %d ", g.score, g.frame)
	dst.DrawStyledText(1, 0, hud, core.ColorBrightWhite, core.ColorDefault)

	if paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// renderGameOver draws the end-of-run screen.
func (g *Game) renderGameOver(dst *core.Screen) {
	midY := dst.Height() / 2

	dst.DrawStyledText((dst.Width()-len("GAME OVER"))/2, midY-2,
		"GAME OVER", core.ColorBrightRed, core.ColorDefault)
	dst.DrawTextCentered(midY, fmt.Sprintf("Score: %d   Distance: %d", g.score, g.frame))
	dst.DrawTextCentered(midY+2, "Press R to restart, Q to quit")
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
