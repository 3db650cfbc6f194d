package seismic

// MarkerRef identifies one grid point.
type MarkerRef struct {
	Family Family `json:"family"`
	Line   int    `json:"line"`
	Index  int    `json:"index"`
}

// Locate returns the point whose current position is nearest to coord.
// Horizontal lines are scanned before vertical ones, each line-major, and
// the first point found at the minimum distance wins.
func Locate(coord Vec, g *Grid) MarkerRef {
	var (
		best  MarkerRef
		bestD float64
		found bool
	)
	for _, fam := range [...]Family{Horizontal, Vertical} {
		g.Each(fam, func(line, index int, cur Vec) {
			d := Distance(coord, cur)
			if !found || d < bestD {
				best = MarkerRef{Family: fam, Line: line, Index: index}
				bestD = d
				found = true
			}
		})
	}
	return best
}

// Resolve returns the current position of ref.
func Resolve(g *Grid, ref MarkerRef) Vec {
	return g.Current(ref.Family, ref.Line, ref.Index)
}
