package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"seismicgrid/internal/seismic"
)

var (
	termHorizontalStyle = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	termVerticalStyle   = tcell.StyleDefault.Foreground(tcell.ColorMediumSeaGreen)
	termTrailStyle      = tcell.StyleDefault.Foreground(tcell.ColorGold)
	termMarkerStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	termStatusStyle     = tcell.StyleDefault.Reverse(true)
)

const (
	termLineRune   = '·'
	termTrailRune  = '*'
	termMarkerRune = '@'
)

// cellSetter is the part of tcell.Screen the renderer writes to.
type cellSetter interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// termView maps canvas coordinates onto a cols x rows block of cells.
type termView struct {
	cols, rows int
	canvas     seismic.Canvas
}

func (v termView) toCell(p seismic.Vec) intPoint {
	x := int(math.Floor(p.X / v.canvas.Width * float64(v.cols)))
	y := int(math.Floor(p.Y / v.canvas.Height * float64(v.rows)))
	return intPoint{x: x, y: y}
}

// toCanvas returns the canvas coordinate at the center of a cell.
func (v termView) toCanvas(x, y int) seismic.Vec {
	return seismic.Vec{
		X: (float64(x) + 0.5) * v.canvas.Width / float64(v.cols),
		Y: (float64(y) + 0.5) * v.canvas.Height / float64(v.rows),
	}
}

func (v termView) inside(x, y int) bool {
	return x >= 0 && x < v.cols && y >= 0 && y < v.rows
}

// drawScene renders grid lines, the trail, and the marker into dst.
func drawScene(dst cellSetter, v termView, s *seismic.Scene) {
	set := func(r rune, st tcell.Style) func(x, y int) {
		return func(x, y int) {
			if v.inside(x, y) {
				dst.SetContent(x, y, r, nil, st)
			}
		}
	}
	g := s.Grid()
	var line []seismic.Vec
	for _, fam := range []seismic.Family{seismic.Horizontal, seismic.Vertical} {
		st := termHorizontalStyle
		if fam == seismic.Vertical {
			st = termVerticalStyle
		}
		for j := 0; j < g.Lines(fam); j++ {
			line = g.Line(fam, j, line[:0])
			for i := 0; i+1 < len(line); i++ {
				plotLine(v.toCell(line[i]), v.toCell(line[i+1]), set(termLineRune, st))
			}
		}
	}
	tr := s.Trail()
	for i := 0; i < tr.Cap()-1; i++ {
		if !tr.HasSegment(i) {
			continue
		}
		a, b := tr.Segment(i)
		plotLine(v.toCell(a), v.toCell(b), set(termTrailRune, termTrailStyle))
	}
	m := v.toCell(s.MarkerPosition())
	set(termMarkerRune, termMarkerStyle)(clampCoord(m.x, 0, v.cols-1), clampCoord(m.y, 0, v.rows-1))
}

// drawText writes s starting at (x, y), clipped to width cells.
func drawText(dst cellSetter, x, y, width int, s string, st tcell.Style) {
	col := 0
	for _, r := range s {
		if col >= width {
			return
		}
		dst.SetContent(x+col, y, r, nil, st)
		col++
	}
	for ; col < width; col++ {
		dst.SetContent(x+col, y, ' ', nil, st)
	}
}

// terminalUI runs the scene on a tcell screen.
type terminalUI struct {
	screen tcell.Screen
	ctrl   *controller
	view   termView
}

func newTerminalUI(screen tcell.Screen, ctrl *controller) *terminalUI {
	t := &terminalUI{screen: screen, ctrl: ctrl}
	t.resize()
	return t
}

func (t *terminalUI) resize() {
	cols, rows := t.screen.Size()
	rows -= statusRows
	t.view = termView{cols: max(cols, 1), rows: max(rows, 1), canvas: t.ctrl.scene.Canvas()}
}

// handleEvent applies one input event and reports whether the UI should quit.
func (t *terminalUI) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.resize()
		t.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch r := ev.Rune(); {
			case r == 'q':
				return true
			case r >= '1' && r <= '9':
				t.ctrl.selectModelIndex(int(r - '1'))
			case r == '+' || r == '=':
				t.ctrl.adjustSpeed(speedStep)
			case r == '-':
				t.ctrl.adjustSpeed(-speedStep)
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			if t.view.inside(x, y) {
				p := t.view.toCanvas(x, y)
				t.ctrl.retarget(p.X, p.Y)
			}
		}
	}
	return false
}

func (t *terminalUI) draw() {
	t.screen.Clear()
	drawScene(t.screen, t.view, t.ctrl.scene)
	status := fmt.Sprintf(" %s  t=%.1fs  speed %.2fx  [1-7] model  [+/-] speed  [click] marker  [q] quit",
		t.ctrl.scene.Model().Title(), t.ctrl.scene.Grid().Time(), t.ctrl.speed)
	drawText(t.screen, 0, t.view.rows, t.view.cols, status, termStatusStyle)
	t.screen.Show()
}

// run ticks and redraws at the scene's frame rate until the user quits.
func (t *terminalUI) run() {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(time.Second / time.Duration(t.ctrl.scene.Params().FPS))
	defer ticker.Stop()
	t.draw()
	for {
		select {
		case ev := <-events:
			if t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.ctrl.tick()
			t.draw()
		}
	}
}

// runTerminal takes over the terminal until the user quits.
func runTerminal(ctrl *controller) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()
	newTerminalUI(screen, ctrl).run()
	return nil
}
