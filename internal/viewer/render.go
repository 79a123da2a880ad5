package viewer

import (
	"fmt"

	"starfield-server/internal/starsystem"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	panelWidth  = 36
	minMapWidth = 20
)

var (
	panelStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	headerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// mapSize returns the part of the screen used for sectors. The bottom row
// holds the status bar and the panel takes the right edge when it fits.
func (v *Viewer) mapSize(width, height int) (int, int) {
	mapWidth := width
	if width >= panelWidth+minMapWidth {
		mapWidth = width - panelWidth
	}
	return mapWidth, max(height-1, 0)
}

// Glyph picks the map character for a star by its diameter.
func Glyph(star starsystem.Star) rune {
	switch {
	case star.Diameter < 20:
		return '.'
	case star.Diameter < 30:
		return '*'
	case star.Diameter < 40:
		return 'o'
	default:
		return 'O'
	}
}

func StarStyle(c starsystem.Color) tcell.Style {
	_, r, g, b := c.ARGB()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// Draw renders one frame. Every visible sector is probed and the selected
// system is expanded again.
func (v *Viewer) Draw() {
	v.screen.Clear()

	width, height := v.screen.Size()
	mapWidth, mapHeight := v.mapSize(width, height)

	for row := 0; row < mapHeight; row++ {
		for col := 0; col < mapWidth; col++ {
			c := v.origin.Offset(col, row)
			star := v.generator.Probe(c.X, c.Y)
			if !star.Exists {
				continue
			}

			style := StarStyle(star.Color)
			if v.selection.Active && v.selection.Coordinate == c {
				style = style.Reverse(true)
			}
			v.screen.SetContent(col, row, Glyph(star), nil, style)
		}
	}

	if v.cursorX < mapWidth && v.cursorY < mapHeight {
		mainc, combc, style, _ := v.screen.GetContent(v.cursorX, v.cursorY)
		v.screen.SetContent(v.cursorX, v.cursorY, mainc, combc, style.Underline(true))
	}

	if mapWidth < width {
		v.drawPanel(mapWidth+1, 0, width-mapWidth-1, mapHeight)
	}
	v.drawStatus(width, height)

	v.screen.Show()
}

func (v *Viewer) drawStatus(width, height int) {
	if height == 0 {
		return
	}

	cursor := v.origin.Offset(v.cursorX, v.cursorY)
	text := fmt.Sprintf(" origin %s  cursor %s  WASD scroll  enter select  esc clear  q quit",
		v.origin, cursor)

	row := height - 1
	for col := 0; col < width; col++ {
		v.screen.SetContent(col, row, ' ', nil, statusStyle)
	}
	drawText(v.screen, 0, row, width, statusStyle, text)
}

func (v *Viewer) drawPanel(x, y, width, height int) {
	lines := v.panelLines()
	for i, line := range lines {
		if i >= height {
			break
		}
		style := panelStyle
		if line.header {
			style = headerStyle
		}
		drawText(v.screen, x, y+i, width, style, line.text)
	}
}

type panelLine struct {
	text   string
	header bool
}

// panelLines describes the selected system, one entry per screen row.
func (v *Viewer) panelLines() []panelLine {
	if !v.selection.Active {
		return []panelLine{
			{text: "No star selected", header: true},
			{text: "Click a star or press enter"},
		}
	}

	c := v.selection.Coordinate
	sys := v.generator.Expand(c.X, c.Y)
	if !sys.Exists {
		return []panelLine{{text: "Empty sector " + c.String(), header: true}}
	}

	lines := []panelLine{
		{text: "Star " + c.String(), header: true},
		{text: fmt.Sprintf("diameter %.2f", sys.Diameter)},
		{text: "color " + sys.Color.Hex()},
		{text: fmt.Sprintf("planets %d", len(sys.Planets))},
	}

	for i, p := range sys.Planets {
		ring := "no"
		if p.Ring {
			ring = "yes"
		}
		lines = append(lines,
			panelLine{text: fmt.Sprintf("Planet %d", i+1), header: true},
			panelLine{text: fmt.Sprintf(" dist %.1f  dia %.1f", p.Distance, p.Diameter)},
			panelLine{text: fmt.Sprintf(" temp %.1f  ring %s", p.Temperature, ring)},
			panelLine{text: fmt.Sprintf(" pop %d", p.Population)},
			panelLine{text: fmt.Sprintf(" F%.2f M%.2f G%.2f W%.2f", p.Foliage, p.Minerals, p.Gases, p.Water)},
		)
		if len(p.Moons) > 0 {
			moons := fmt.Sprintf(" moons %d:", len(p.Moons))
			for _, m := range p.Moons {
				moons += fmt.Sprintf(" %.1f", m)
			}
			lines = append(lines, panelLine{text: moons})
		}
	}

	return lines
}

// drawText writes text from (x, y), cutting it to maxWidth columns.
func drawText(screen tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) {
	if maxWidth <= 0 {
		return
	}
	text = runewidth.Truncate(text, maxWidth, "~")

	col := x
	for _, r := range text {
		screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}
