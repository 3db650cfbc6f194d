package seismic

// Scene ties a grid to its tracked marker and trail and runs one tick at a
// time. Shells must not call it from more than one goroutine.
type Scene struct {
	params Params
	canvas Canvas
	grid   *Grid
	marker MarkerRef
	trail  *Trail
}

// NewScene builds a scene showing the model registered under id. Unknown ids
// fall back to the P-wave; use LookupField beforehand to detect them.
func NewScene(p Params, c Canvas, id string) (*Scene, error) {
	g, err := NewGrid(p, c, FieldFor(id))
	if err != nil {
		return nil, err
	}
	return &Scene{
		params: p,
		canvas: c,
		grid:   g,
		marker: DefaultMarker(p),
		trail:  NewTrail(p.MarkerHistoryLen),
	}, nil
}

// DefaultMarker tracks the middle point of the first horizontal line.
func DefaultMarker(p Params) MarkerRef {
	return MarkerRef{Family: Horizontal, Line: 0, Index: p.PointsCount / 2}
}

// Step advances the grid by dt and records the marker's new position.
func (s *Scene) Step(dt float64) {
	s.grid.Update(dt)
	s.trail.Push(Resolve(s.grid, s.marker))
}

// Retarget moves the marker to the point nearest coord and restarts its trail.
func (s *Scene) Retarget(coord Vec) MarkerRef {
	s.marker = Locate(coord, s.grid)
	s.trail.Clear()
	return s.marker
}

// SetMarker tracks ref directly. It reports false and changes nothing when
// ref does not address a grid point.
func (s *Scene) SetMarker(ref MarkerRef) bool {
	if !s.grid.Valid(ref) {
		return false
	}
	s.marker = ref
	s.trail.Clear()
	return true
}

// SetModel switches to the model registered under id, re-laying out the grid
// for that model's region while keeping the clock and the marker reference.
// It reports whether id was known; unknown ids select the P-wave.
func (s *Scene) SetModel(id string) bool {
	f, ok := LookupField(id)
	if !ok {
		f = FieldFor(DefaultFieldID)
	}
	g, err := NewGrid(s.params, s.canvas, f)
	if err != nil {
		// params and canvas were validated when the scene was built
		panic(err)
	}
	g.SetTime(s.grid.Time())
	s.grid = g
	s.trail.Clear()
	return ok
}

// Grid returns the current grid for read-only use.
func (s *Scene) Grid() *Grid { return s.grid }

// Trail returns the marker trail for read-only use.
func (s *Scene) Trail() *Trail { return s.trail }

// Marker returns the tracked point.
func (s *Scene) Marker() MarkerRef { return s.marker }

// MarkerPosition returns the tracked point's current position.
func (s *Scene) MarkerPosition() Vec { return Resolve(s.grid, s.marker) }

// MarkerDisplacement returns how far the tracked point currently sits from
// its rest position.
func (s *Scene) MarkerDisplacement() Vec {
	m := s.marker
	return Sub(s.grid.Current(m.Family, m.Line, m.Index), s.grid.Rest(m.Family, m.Line, m.Index))
}

// Model returns the active field.
func (s *Scene) Model() Field { return s.grid.Field() }

// Params returns the scene parameters.
func (s *Scene) Params() Params { return s.params }

// Canvas returns the scene canvas.
func (s *Scene) Canvas() Canvas { return s.canvas }
