package catch

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/cat-catch/internal/core"
)

// itemGlyphs holds the animation frames of each kind.
var itemGlyphs = map[Kind][]rune{
	KindNormal:   {'ö', 'ô'},
	KindBlessed:  {'✦', '✧'},
	KindHazard:   {'ж', 'Ж'},
	KindVolatile: {'✹', '✸'},
}

var itemColors = map[Kind]core.Color{
	KindNormal:   core.ColorWhite,
	KindBlessed:  core.ColorBrightYellow,
	KindHazard:   core.ColorBrightMagenta,
	KindVolatile: core.ColorBrightRed,
}

// giantFrames is the crying cat drawn during escalation.
var giantFrames = [2][]string{
	{
		`    /\_______/\     `,
		`   /  ;     ;  \    `,
		`  |   '     '   |   `,
		`  |  ~~  ^  ~~  |   `,
		`   \   '---'   /    `,
		`    \_________/     `,
		`   /  |     |  \    `,
		`  (___|     |___)   `,
	},
	{
		`    /\_______/\     `,
		`   /  T     T  \    `,
		`  |   ;     ;   |   `,
		`  |  ~~  ^  ~~  |   `,
		`   \   .---.   /    `,
		`    \_________/     `,
		`   /  |     |  \    `,
		`  (___|     |___)   `,
	},
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}
	s := g.sim

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), groundRune)

	for _, it := range s.Items() {
		drawItem(dst, it)
	}

	drawCatcher(dst, s.Catcher(), s.Effects().Inverted())

	if ex, ok := s.Explosion(); ok {
		drawExplosion(dst, ex)
	}

	if giant, ok := s.Giant(); ok {
		drawGiant(dst, giant)
	}

	g.drawHUD(dst)

	if msg, ok := s.Message(); ok {
		drawMessage(dst, msg, s.MessageFade())
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if s.GameOver() {
		drawCenteredMessage(dst, "THE SKY IS CRYING", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score()))
	}
}

// groundRune marks the row below the bucket where missed cats disappear.
const groundRune = '─'

func drawItem(dst *core.Screen, it FallingItem) {
	glyphs := itemGlyphs[it.Kind]
	if len(glyphs) == 0 {
		return
	}
	r := glyphs[it.Frame()%len(glyphs)]
	dst.SetColor(int(math.Round(it.Pos.X)), int(math.Round(it.Pos.Y)), r, itemColors[it.Kind])
}

// drawCatcher draws the bucket as a two-row trapezoid filling its rectangle.
func drawCatcher(dst *core.Screen, c Catcher, inverted bool) {
	color := core.ColorCyan
	if inverted {
		color = core.ColorMagenta
	}

	x := int(math.Round(c.Pos.X))
	y := int(math.Round(c.Pos.Y))
	w := core.Max(int(math.Round(c.Size.X)), 2)

	slosh := '~'
	if c.Frame()%2 == 1 {
		slosh = '-'
	}

	dst.SetColor(x, y, '\\', color)
	for i := 1; i < w-1; i++ {
		dst.SetColor(x+i, y, slosh, color)
	}
	dst.SetColor(x+w-1, y, '/', color)

	if c.Size.Y >= 2 {
		dst.SetColor(x+1, y+1, '\\', color)
		for i := 2; i < w-2; i++ {
			dst.SetColor(x+i, y+1, '_', color)
		}
		dst.SetColor(x+w-2, y+1, '/', color)
	}
}

// drawExplosion draws an expanding ring around the explosion center.
func drawExplosion(dst *core.Screen, ex Explosion) {
	const maxRadius = 6.0
	radius := 1 + ex.Progress*maxRadius

	color := core.ColorBrightYellow
	switch {
	case ex.Progress > 0.66:
		color = core.ColorRed
	case ex.Progress > 0.33:
		color = core.ColorOrange
	}

	steps := int(radius * 8)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		// Cells are roughly twice as tall as they are wide
		x := int(math.Round(ex.Pos.X + math.Cos(a)*radius*2))
		y := int(math.Round(ex.Pos.Y + math.Sin(a)*radius))
		dst.SetColor(x, y, '*', color)
	}
}

func drawGiant(dst *core.Screen, giant Giant) {
	art := giantFrames[giant.Frame()%len(giantFrames)]
	w := len([]rune(art[0]))
	x := (dst.Width() - w) / 2
	y := int(math.Round(giant.Y))
	for dy, line := range art {
		i := 0
		for _, r := range line {
			if r != ' ' {
				color := core.ColorWhite
				if r == ';' || r == '\'' || r == 'T' {
					color = core.ColorBlue
				}
				dst.SetColor(x+i, y+dy, r, color)
			}
			i++
		}
	}
}

// drawHUD renders score, active modifiers and the agitation bar on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.sim
	fx := s.Effects()

	left := fmt.Sprintf(" Score: %d ", s.Score())
	dst.DrawText(1, 0, left)
	x := 1 + len([]rune(left))

	if m := s.Multiplier(); m > 1 {
		text := fmt.Sprintf(" x%d %.0fs ", m, math.Ceil(fx.Remaining(SlotMultiplier)))
		dst.DrawTextColor(x, 0, text, core.ColorGreen)
		x += len([]rune(text))
	}

	if fx.Inverted() {
		text := fmt.Sprintf(" INVERTED %.0fs ", math.Ceil(fx.Remaining(SlotInvert)))
		dst.DrawTextColor(x, 0, text, core.ColorMagenta)
		x += len([]rune(text))
	}

	if track, ok := s.Audio().Alternate(); ok {
		name := fmt.Sprintf("track %d", track+1)
		if tracks := g.cfg.Effects.AudioTracks; track < len(tracks) {
			name = tracks[track]
		}
		dst.DrawTextColor(x, 0, " ♪ "+name+" ", core.ColorPink)
	}

	bar := angryBar(s.Agitation(), s.Ceiling(), 10)
	text := " Angry " + bar + " "
	dst.DrawTextColor(dst.Width()-len([]rune(text))-1, 0, text, core.ColorRed)
}

// angryBar renders agitation as a fixed-width gauge.
func angryBar(agitation, ceiling, width int) string {
	filled := 0
	if ceiling > 0 {
		filled = core.Clamp(agitation*width/ceiling, 0, width)
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// drawMessage shows a feedback message that dims as it fades.
func drawMessage(dst *core.Screen, msg string, fade float64) {
	color := core.ColorBrightYellow
	if fade < 0.4 {
		color = core.ColorGray
	}
	x := (dst.Width() - len([]rune(msg))) / 2
	dst.DrawTextColor(x, dst.Height()/3, msg, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
