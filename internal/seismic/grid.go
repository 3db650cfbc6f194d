package seismic

import "fmt"

// Family selects one of the two point groupings composing the grid.
type Family uint8

const (
	Horizontal Family = iota
	Vertical
)

func (f Family) String() string {
	switch f {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// pointSet stores one family's rest and current positions packed as
// interleaved x, y pairs, line-major.
type pointSet struct {
	lines  int
	points int
	rest   []float64
	cur    []float64
}

func newPointSet(lines, points int) pointSet {
	return pointSet{
		lines:  lines,
		points: points,
		rest:   make([]float64, lines*points*2),
		cur:    make([]float64, lines*points*2),
	}
}

func (s *pointSet) offset(line, index int) int {
	return (line*s.points + index) * 2
}

func (s *pointSet) setRest(line, index int, v Vec) {
	o := s.offset(line, index)
	s.rest[o] = v.X
	s.rest[o+1] = v.Y
}

func (s *pointSet) readRest(line, index int) Vec {
	o := s.offset(line, index)
	return Vec{X: s.rest[o], Y: s.rest[o+1]}
}

func (s *pointSet) readCur(line, index int) Vec {
	o := s.offset(line, index)
	return Vec{X: s.cur[o], Y: s.cur[o+1]}
}

// apply overwrites every current position with rest + displacement.
func (s *pointSet) apply(f Field, t float64, env Env) {
	for o := 0; o < len(s.rest); o += 2 {
		rest := Vec{X: s.rest[o], Y: s.rest[o+1]}
		d := f.Displacement(rest, t, env)
		s.cur[o] = rest.X + d.X
		s.cur[o+1] = rest.Y + d.Y
	}
}

// Grid owns both point families and advances them through time with the
// active displacement field. It is not safe for concurrent use.
type Grid struct {
	field Field
	env   Env
	time  float64

	horizontal pointSet
	vertical   pointSet
}

// NewGrid validates the configuration, lays out rest positions inside the
// field's region and evaluates the field at time zero.
func NewGrid(p Params, c Canvas, f Field) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !(c.Width > 0) || !(c.Height > 0) {
		return nil, configErrorf("canvas", fmt.Sprintf("%gx%g", c.Width, c.Height), "dimensions must be positive")
	}
	if f == nil {
		f = FieldFor(DefaultFieldID)
	}
	g := &Grid{
		field:      f,
		env:        Env{Params: p, Canvas: c, Region: f.Region(c)},
		horizontal: newPointSet(p.HorizontalLines, p.PointsCount),
		vertical:   newPointSet(p.VerticalLines, p.PointsCount),
	}
	g.layout()
	g.recompute()
	return g, nil
}

// spacing returns the coordinate of step i out of n across [start, start+span].
// A single step sits in the middle of the span.
func spacing(start, span float64, i, n int) float64 {
	if n < 2 {
		return start + span/2
	}
	return start + float64(i)*span/float64(n-1)
}

func (g *Grid) layout() {
	r := g.env.Region
	h := &g.horizontal
	for j := 0; j < h.lines; j++ {
		y := spacing(r.Y, r.Height, j, h.lines)
		for i := 0; i < h.points; i++ {
			h.setRest(j, i, Vec{X: spacing(r.X, r.Width, i, h.points), Y: y})
		}
	}
	v := &g.vertical
	for j := 0; j < v.lines; j++ {
		x := spacing(r.X, r.Width, j, v.lines)
		for i := 0; i < v.points; i++ {
			v.setRest(j, i, Vec{X: x, Y: spacing(r.Y, r.Height, i, v.points)})
		}
	}
}

func (g *Grid) recompute() {
	g.horizontal.apply(g.field, g.time, g.env)
	g.vertical.apply(g.field, g.time, g.env)
}

// Update advances the simulation clock by dt and recomputes every current
// position. Rest positions are never touched.
func (g *Grid) Update(dt float64) {
	g.time += dt
	g.recompute()
}

// SetTime jumps the clock to t and recomputes current positions.
func (g *Grid) SetTime(t float64) {
	g.time = t
	g.recompute()
}

// Time returns the accumulated simulation time.
func (g *Grid) Time() float64 { return g.time }

// Field returns the active displacement field.
func (g *Grid) Field() Field { return g.field }

// Params returns the parameters the grid was built with.
func (g *Grid) Params() Params { return g.env.Params }

// Canvas returns the canvas the grid was laid out on.
func (g *Grid) Canvas() Canvas { return g.env.Canvas }

// Region returns the layout region chosen by the field.
func (g *Grid) Region() Region { return g.env.Region }

// PointsCount returns the number of points on every line.
func (g *Grid) PointsCount() int { return g.env.Params.PointsCount }

// Lines returns the number of lines in a family.
func (g *Grid) Lines(fam Family) int { return g.set(fam).lines }

// Valid reports whether ref addresses a point of this grid.
func (g *Grid) Valid(ref MarkerRef) bool {
	if ref.Family != Horizontal && ref.Family != Vertical {
		return false
	}
	s := g.set(ref.Family)
	return ref.Line >= 0 && ref.Line < s.lines && ref.Index >= 0 && ref.Index < s.points
}

// Rest returns the undisplaced position of a point.
func (g *Grid) Rest(fam Family, line, index int) Vec {
	return g.set(fam).readRest(line, index)
}

// Current returns the displaced position of a point as of the last update.
func (g *Grid) Current(fam Family, line, index int) Vec {
	return g.set(fam).readCur(line, index)
}

// Line appends the current positions of one line to dst and returns it.
func (g *Grid) Line(fam Family, line int, dst []Vec) []Vec {
	s := g.set(fam)
	for i := 0; i < s.points; i++ {
		dst = append(dst, s.readCur(line, i))
	}
	return dst
}

// Each calls fn for every point of a family in line-major order.
func (g *Grid) Each(fam Family, fn func(line, index int, cur Vec)) {
	s := g.set(fam)
	for j := 0; j < s.lines; j++ {
		for i := 0; i < s.points; i++ {
			fn(j, i, s.readCur(j, i))
		}
	}
}

func (g *Grid) set(fam Family) *pointSet {
	if fam == Vertical {
		return &g.vertical
	}
	return &g.horizontal
}
