package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"seismicgrid/internal/seismic"
)

var (
	backgroundColor = color.RGBA{12, 14, 22, 255}
	horizontalColor = color.RGBA{90, 150, 230, 255}
	verticalColor   = color.RGBA{80, 200, 160, 255}
	trailColor      = color.RGBA{255, 200, 60, 255}
	markerColor     = color.RGBA{255, 70, 70, 255}
)

// Draw renders both line families, the fading marker trail, the marker, and
// the optional overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s := g.ctrl.scene
	grid := s.Grid()

	var line []seismic.Vec
	for j := 0; j < grid.Lines(seismic.Horizontal); j++ {
		line = grid.Line(seismic.Horizontal, j, line[:0])
		strokePolyline(screen, line, gridLineWidth, horizontalColor)
	}
	for j := 0; j < grid.Lines(seismic.Vertical); j++ {
		line = grid.Line(seismic.Vertical, j, line[:0])
		strokePolyline(screen, line, gridLineWidth, verticalColor)
	}

	trail := s.Trail()
	for i := 0; i < trail.Cap()-1; i++ {
		if !trail.HasSegment(i) {
			continue
		}
		a, b := trail.Segment(i)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			trailLineWidth, fade(trailColor, trailOpacity(i, trail.Cap())), true)
	}

	m := s.MarkerPosition()
	vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), markerRadius, markerColor, true)

	if *debugFlag {
		model := s.Model()
		msg := fmt.Sprintf("%s\n%s\nFPS: %.1f  TPS: %.1f\nSpeed: %.2fx (+/-)  t=%.2fs\nModels: 1-7, click to move marker",
			model.Title(), model.Summary(), ebiten.ActualFPS(), ebiten.ActualTPS(), g.ctrl.speed, grid.Time())
		ebitenutil.DebugPrint(screen, msg)
	}
}

// strokePolyline draws consecutive segments through pts.
func strokePolyline(screen *ebiten.Image, pts []seismic.Vec, width float32, clr color.Color) {
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, clr, true)
	}
}

// trailOpacity fades trail segment i so older segments are dimmer.
func trailOpacity(i, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(i) / float64(capacity)
}

// fade scales a color's alpha (and premultiplied channels) by opacity.
func fade(c color.RGBA, opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}
