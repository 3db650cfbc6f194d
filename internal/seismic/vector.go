package seismic

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a 2-D point or displacement in canvas space.
type Vec = r2.Vec

// Radial holds polar coordinates relative to some origin.
type Radial struct {
	Theta float64
	R     float64
}

// Add returns a+b.
func Add(a, b Vec) Vec { return r2.Add(a, b) }

// Sub returns a-b.
func Sub(a, b Vec) Vec { return r2.Sub(a, b) }

// Length returns the Euclidean norm of v.
func Length(v Vec) float64 { return r2.Norm(v) }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec) float64 { return r2.Norm(r2.Sub(a, b)) }

// ToRadial converts point into polar coordinates around origin. At the
// origin itself Theta is atan2(0, 0), which is 0.
func ToRadial(point, origin Vec) Radial {
	d := r2.Sub(point, origin)
	return Radial{
		Theta: math.Atan2(d.Y, d.X),
		R:     r2.Norm(d),
	}
}
