// Package viewer renders the galaxy in a terminal: one cell per sector,
// scrolled with the keyboard, with a detail panel for the selected star.
package viewer

import (
	"context"
	"log/slog"

	"starfield-server/internal/starsystem"

	"github.com/gdamore/tcell/v2"
)

// Selection is the star the explorer picked. It holds only the coordinate;
// the system itself is regenerated whenever it is drawn.
type Selection struct {
	Coordinate starsystem.Coordinate
	Active     bool
}

type Options struct {
	Origin     starsystem.Coordinate
	ScrollStep int
}

type Viewer struct {
	screen    tcell.Screen
	generator *starsystem.Generator
	logger    *slog.Logger

	origin    starsystem.Coordinate
	step      int
	cursorX   int
	cursorY   int
	selection Selection
}

func New(screen tcell.Screen, generator *starsystem.Generator, opts Options, logger *slog.Logger) *Viewer {
	step := opts.ScrollStep
	if step <= 0 {
		step = 1
	}

	v := &Viewer{
		screen:    screen,
		generator: generator,
		logger:    logger,
		origin:    opts.Origin,
		step:      step,
	}

	width, height := screen.Size()
	v.cursorX, v.cursorY = v.mapSize(width, height)
	v.cursorX /= 2
	v.cursorY /= 2

	return v
}

func (v *Viewer) Origin() starsystem.Coordinate {
	return v.origin
}

func (v *Viewer) Selection() Selection {
	return v.selection
}

// Run draws and handles events until the explorer quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go v.screen.ChannelEvents(events, quit)
	defer close(quit)

	v.logger.Info("Viewer started", "origin", v.origin.String())
	v.Draw()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !v.HandleEvent(ev) {
				v.logger.Info("Viewer closed", "origin", v.origin.String())
				return nil
			}
			v.Draw()
		}
	}
}

// HandleEvent applies one input event and reports whether the viewer should
// keep running.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventResize:
		v.screen.Sync()
		v.clampCursor()
	}
	return true
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		v.selection = Selection{}
	case tcell.KeyEnter:
		v.selectAt(v.cursorX, v.cursorY)
	case tcell.KeyUp:
		v.scroll(0, -v.step)
	case tcell.KeyDown:
		v.scroll(0, v.step)
	case tcell.KeyLeft:
		v.scroll(-v.step, 0)
	case tcell.KeyRight:
		v.scroll(v.step, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'w', 'W':
			v.scroll(0, -v.step)
		case 's', 'S':
			v.scroll(0, v.step)
		case 'a', 'A':
			v.scroll(-v.step, 0)
		case 'd', 'D':
			v.scroll(v.step, 0)
		}
	}
	return true
}

func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	width, height := v.screen.Size()
	mapWidth, mapHeight := v.mapSize(width, height)
	if x < 0 || y < 0 || x >= mapWidth || y >= mapHeight {
		return
	}

	v.cursorX, v.cursorY = x, y
	if ev.Buttons()&tcell.Button1 != 0 {
		v.selectAt(x, y)
	}
}

// selectAt selects the star in the given cell. Picking an empty sector
// clears the selection.
func (v *Viewer) selectAt(col, row int) {
	c := v.origin.Offset(col, row)
	star := v.generator.Probe(c.X, c.Y)
	if !star.Exists {
		v.selection = Selection{}
		return
	}

	v.selection = Selection{Coordinate: c, Active: true}
	v.logger.Debug("Star selected", "coordinates", c.String(), "diameter", star.Diameter)
}

func (v *Viewer) scroll(dx, dy int) {
	v.origin = v.origin.Offset(dx, dy)
}

func (v *Viewer) clampCursor() {
	width, height := v.screen.Size()
	mapWidth, mapHeight := v.mapSize(width, height)
	v.cursorX = min(max(v.cursorX, 0), max(mapWidth-1, 0))
	v.cursorY = min(max(v.cursorY, 0), max(mapHeight-1, 0))
}
