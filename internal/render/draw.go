// Package render paints invaders snapshots onto a core.Screen.
// It only reads the snapshot; all glyph and color choices live here.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// Minimum terminal size for a playable field.
const (
	MinWidth  = 40
	MinHeight = 16
)

// Rows reserved outside the field: HUD, separator and the bottom hint line.
const (
	hudRows    = 2
	footerRows = 1
)

// Visual characters for rendering
const (
	PlayerChar       = '▲'
	PlayerBulletChar = '│'
	EnemyBulletChar  = '↓'
	ShieldChar       = '█'
	SeparatorChar    = '─'
	LifeChar         = '♥'
)

// enemyGlyphs holds one glyph per enemy type.
var enemyGlyphs = [...]rune{
	invaders.EnemySquid:   '▼',
	invaders.EnemyCrab:    '◆',
	invaders.EnemyOctopus: '■',
}

var enemyColors = [...]core.Color{
	invaders.EnemySquid:   core.ColorBrightMagenta,
	invaders.EnemyCrab:    core.ColorBrightCyan,
	invaders.EnemyOctopus: core.ColorBrightGreen,
}

// explosionGlyphs animate an explosion from flash to smoke.
var explosionGlyphs = []rune{'✺', '✹', '✸', '✷', '✶', '*', '+', '·'}

// Options carries display data that is not part of the simulation.
type Options struct {
	HighScore int
	Player    string
}

// Draw clears dst and paints the snapshot.
func Draw(dst *core.Screen, snap *invaders.Snapshot, opts Options) {
	dst.Clear()

	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight))
		return
	}

	v := newViewport(dst, snap)

	drawHUD(dst, snap, opts)
	drawShields(dst, v, snap)
	drawEnemies(dst, v, snap)
	drawPlayer(dst, v, snap)
	drawBullets(dst, v, snap)
	drawExplosions(dst, v, snap)
	drawFooter(dst, snap)
	drawOverlay(dst, snap, opts)
}

// viewport maps field pixels to screen cells.
type viewport struct {
	top        int
	cols, rows int
	fieldW     int
	fieldH     int
}

func newViewport(dst *core.Screen, snap *invaders.Snapshot) viewport {
	return viewport{
		top:    hudRows,
		cols:   dst.Width(),
		rows:   dst.Height() - hudRows - footerRows,
		fieldW: core.Max(snap.FieldW, 1),
		fieldH: core.Max(snap.FieldH, 1),
	}
}

// cell converts a field point to a screen cell.
func (v viewport) cell(px, py int) (int, int) {
	x := px * v.cols / v.fieldW
	y := py * v.rows / v.fieldH
	return core.Clamp(x, 0, v.cols-1), v.top + core.Clamp(y, 0, v.rows-1)
}

// rect converts a field rectangle to screen cells, at least one cell in size.
func (v viewport) rect(r core.Rect) core.Rect {
	x0, y0 := v.cell(r.X, r.Y)
	x1, y1 := v.cell(r.Right()-1, r.Bottom()-1)
	return core.NewRect(x0, y0, core.Max(x1-x0+1, 1), core.Max(y1-y0+1, 1))
}

func fillRect(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, ch, c)
		}
	}
}

// drawHUD draws score, high score, lives and level.
func drawHUD(dst *core.Screen, snap *invaders.Snapshot, opts Options) {
	left := fmt.Sprintf("Score: %d  Hi: %d", snap.Score, core.Max(opts.HighScore, snap.Score))
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	lives := "Lives: " + strings.Repeat(string(LifeChar), core.Max(snap.Lives, 0))
	dst.DrawTextCenteredColored(0, lives, core.ColorBrightRed)

	level := fmt.Sprintf("Level: %d/%d", core.Min(snap.Level, snap.MaxLevel), snap.MaxLevel)
	dst.DrawTextColored(dst.Width()-len(level)-1, 0, level, core.ColorBrightYellow)

	dst.DrawHLine(0, 1, dst.Width(), SeparatorChar, core.ColorGray)
}

func drawShields(dst *core.Screen, v viewport, snap *invaders.Snapshot) {
	for _, b := range snap.Blocks {
		x, y := v.cell(b.X, b.Y)
		dst.SetColored(x, y, ShieldChar, core.ColorGreen)
	}
}

func drawEnemies(dst *core.Screen, v viewport, snap *invaders.Snapshot) {
	for _, e := range snap.Enemies {
		glyph, color := '?', core.ColorWhite
		if int(e.Type) < len(enemyGlyphs) {
			glyph, color = enemyGlyphs[e.Type], enemyColors[e.Type]
		}
		fillRect(dst, v.rect(e.Bounds), glyph, color)
	}
}

func drawPlayer(dst *core.Screen, v viewport, snap *invaders.Snapshot) {
	if snap.State == invaders.StateGameOver && snap.Lives == 0 {
		return
	}
	r := v.rect(snap.Player)
	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, r.Y, PlayerChar, core.ColorBrightGreen)
	}
}

func drawBullets(dst *core.Screen, v viewport, snap *invaders.Snapshot) {
	for _, b := range snap.PlayerBullets {
		x, y := v.cell(b.X, b.Y)
		dst.SetColored(x, y, PlayerBulletChar, core.ColorBrightWhite)
	}
	for _, b := range snap.EnemyBullets {
		x, y := v.cell(b.X, b.Y)
		dst.SetColored(x, y, EnemyBulletChar, core.ColorBrightRed)
	}
}

func drawExplosions(dst *core.Screen, v viewport, snap *invaders.Snapshot) {
	frames := core.Max(snap.ExplosionFrames, 1)
	for _, e := range snap.Explosions {
		idx := core.Clamp(e.Frame*len(explosionGlyphs)/frames, 0, len(explosionGlyphs)-1)
		x, y := v.cell(e.X, e.Y)
		dst.SetColored(x, y, explosionGlyphs[idx], core.ColorOrange)
	}
}

// drawFooter draws the ground line with key hints while playing.
func drawFooter(dst *core.Screen, snap *invaders.Snapshot) {
	y := dst.Height() - 1
	dst.DrawHLine(0, y, dst.Width(), SeparatorChar, core.ColorGray)
	if snap.State == invaders.StatePlaying {
		dst.DrawTextCenteredColored(y, " ←/→ move  SPACE fire  ESC menu ", core.ColorGray)
	}
}

// drawOverlay draws the menu and end-of-run boxes.
func drawOverlay(dst *core.Screen, snap *invaders.Snapshot, opts Options) {
	switch snap.State {
	case invaders.StateMenu:
		lines := []string{
			"SPACE INVADERS",
			"",
			fmt.Sprintf("%c %d pts   %c %d pts   %c %d pts",
				enemyGlyphs[invaders.EnemySquid], invaders.EnemySquid.Score(),
				enemyGlyphs[invaders.EnemyCrab], invaders.EnemyCrab.Score(),
				enemyGlyphs[invaders.EnemyOctopus], invaders.EnemyOctopus.Score()),
			"",
			"SPACE start   TAB scores   ESC quit",
		}
		if opts.Player != "" {
			lines = append(lines, "", "Player: "+opts.Player)
		}
		drawCenteredBox(dst, lines, core.ColorBrightYellow)

	case invaders.StateGameOver:
		remaining := core.Max(snap.GameOverTicks-snap.GameOverTimer, 0)
		secs := (remaining + 59) / 60
		drawCenteredBox(dst, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d   Level: %d", snap.Score, snap.Level),
			fmt.Sprintf("Menu in %ds  |  SPACE for menu", secs),
		}, core.ColorBrightRed)

	case invaders.StateWin:
		drawCenteredBox(dst, []string{
			"YOU WIN!",
			"",
			fmt.Sprintf("Final Score: %d", snap.Score),
			"SPACE for menu",
		}, core.ColorBrightGreen)
	}
}

// drawCenteredBox draws a bordered box with centered lines; the first line
// is the title and gets the accent color.
func drawCenteredBox(dst *core.Screen, lines []string, accent core.Color) {
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, utf8.RuneCountInString(l))
	}
	boxW := core.Min(inner+4, dst.Width())
	boxH := core.Min(len(lines)+2, dst.Height())
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, l := range lines {
		x := boxX + (boxW-utf8.RuneCountInString(l))/2
		color := core.ColorDefault
		if i == 0 {
			color = accent
		}
		dst.DrawTextColored(x, boxY+1+i, l, color)
	}
}
