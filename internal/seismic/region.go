package seismic

// regionFraction is the share of the canvas the default model region covers.
const regionFraction = 0.85

// Canvas is the drawing surface size supplied once by the shell.
type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the middle of the canvas.
func (c Canvas) Center() Vec {
	return Vec{X: c.Width / 2, Y: c.Height / 2}
}

// Midline returns the canvas vertical midline used as the Lamb wave origin.
func (c Canvas) Midline() float64 { return c.Height / 2 }

// Region is the sub-rectangle of the canvas rest positions are laid out in.
type Region struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultRegion centers a rectangle covering 85% of each canvas dimension.
func DefaultRegion(c Canvas) Region {
	rw := c.Width * regionFraction
	rh := c.Height * regionFraction
	return Region{
		X:      (c.Width - rw) / 2,
		Y:      (c.Height - rh) / 2,
		Width:  rw,
		Height: rh,
	}
}

// HalfRegion keeps the default width but halves the height, centering the
// result on the canvas midline. Surface and plate waves use it.
func HalfRegion(c Canvas) Region {
	r := DefaultRegion(c)
	r.Height /= 2
	r.Y = c.Midline() - r.Height/2
	return r
}

// Top returns the region's upper edge.
func (r Region) Top() float64 { return r.Y }

// Center returns the middle of the region.
func (r Region) Center() Vec {
	return Vec{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}
