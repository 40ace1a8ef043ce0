package bee

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/beelazy/internal/core"
	"github.com/vovakirdan/beelazy/internal/highscore"
)

// Visual characters for rendering
const (
	BeeChar      = '▓'
	BeeEyeChar   = '●'
	ObstacleChar = '█'
	PowerUpChar  = '★'
)

// Render draws the current game state to the screen.
// The y-up world is scaled onto the whole grid with row 0 at the top.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.phase == core.PhaseNotStarted {
		g.drawStart(dst)
		return
	}

	for _, o := range g.obstacles.Obstacles() {
		dst.DrawRect(g.project(o.Box(), dst), ObstacleChar, core.ColorRed)
	}
	for _, p := range g.powerUps.PowerUps() {
		dst.DrawRect(g.project(p.Box(), dst), PowerUpChar, core.ColorBrightYellow)
	}
	if g.phase == core.PhaseRunning {
		g.drawBee(dst)
	}

	g.drawHUD(dst)

	if g.paused {
		g.drawMessage(dst, []line{
			{text: "PAUSED"},
			{},
			{text: "Press P to resume"},
		})
	}
	if g.phase == core.PhaseGameOver {
		g.drawGameOver(dst)
	}
}

// project maps a world box onto the cells it covers.
func (g *Game) project(b core.Box, dst *core.Screen) core.Rect {
	sx := float64(dst.Width()) / g.cfg.World.Width
	sy := float64(dst.Height()) / g.cfg.World.Height

	left := int(math.Floor(b.X * sx))
	right := int(math.Ceil(b.Right() * sx))
	top := dst.Height() - int(math.Ceil(b.Top()*sy))
	bottom := dst.Height() - int(math.Floor(b.Y*sy))

	return core.NewRect(left, top, core.Max(1, right-left), core.Max(1, bottom-top))
}

func (g *Game) drawBee(dst *core.Screen) {
	color := core.ColorYellow
	if g.invincible {
		color = core.ColorBrightWhite
		// Blink during the last second
		if left := g.InvincibleTicks(); left < g.runtime.TickRate && (left/8)%2 == 0 {
			color = core.ColorBrightYellow
		}
	}
	r := g.project(g.bee.Hitbox(), dst)
	dst.DrawRect(r, BeeChar, color)
	dst.SetColored(r.Right()-1, r.Y, BeeEyeChar, core.ColorDefault)
}

func (g *Game) drawHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf(" Score: %d ", g.score)
	dst.DrawText((dst.Width()-len(scoreText))/2, 0, scoreText)

	if g.invincible {
		secs := float64(g.InvincibleTicks()) / float64(g.runtime.TickRate)
		dst.DrawTextColored(2, 0, fmt.Sprintf(" Invincible %.1fs ", secs), core.ColorBrightYellow)
	}
}

func (g *Game) drawStart(dst *core.Screen) {
	g.drawMessage(dst, []line{
		{text: strings.ToUpper(g.Title()), color: core.ColorYellow},
		{},
		{text: "Keep the bee in the air and dodge the birds."},
		{},
		{text: "SPACE to start"},
	})
}

func (g *Game) drawGameOver(dst *core.Screen) {
	lines := []line{
		{text: "GAME OVER", color: core.ColorBrightRed},
		{text: fmt.Sprintf("Score: %d", g.score)},
		{},
	}
	if hs := g.highScoreLines(); len(hs) > 0 {
		lines = append(lines, line{text: "Highscores:"})
		lines = append(lines, hs...)
		lines = append(lines, line{})
	}
	lines = append(lines, line{text: "R restart  |  B back"})
	g.drawMessage(dst, lines)
}

// highScoreLines lists the top entries of the board as recorded at game
// over. The first entry equal to the current score is highlighted, and shown
// with its rank even when it falls outside the top entries.
func (g *Game) highScoreLines() []line {
	if len(g.finalScores) == 0 {
		return nil
	}
	display := g.cfg.Scores.Display
	rank := highscore.Rank(g.finalScores, g.score)

	top := g.finalScores
	if len(top) > display {
		top = top[:display]
	}

	var lines []line
	for i, s := range top {
		l := line{text: fmt.Sprintf("%2d. %d", i+1, s)}
		if i+1 == rank {
			l.color = core.ColorBrightYellow
		}
		lines = append(lines, l)
	}
	if rank > display {
		lines = append(lines, line{text: fmt.Sprintf("%2d. %d", rank, g.score), color: core.ColorBrightYellow})
	}
	return lines
}

type line struct {
	text  string
	color core.Color
}

// drawMessage draws lines centred in a box in the middle of the screen.
func (g *Game) drawMessage(dst *core.Screen, lines []line) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l.text)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l.text)))/2
		dst.DrawTextColored(x, boxY+1+i, l.text, l.color)
	}
}
