package seismic

import "math"

// RadialEpsilon is the smallest radius the radial S-wave divides by. A rest
// position exactly at the wave origin is treated as lying this far from it,
// which keeps its displacement finite and no larger than RadialEpsilon.
const RadialEpsilon = 1e-9

// Env is the model state a displacement is evaluated against.
type Env struct {
	Params Params
	Canvas Canvas
	Region Region
}

// Field maps a rest position and elapsed time to a displacement. Every
// implementation is a pure function of its arguments.
type Field interface {
	// ID is the registry key, e.g. "pwave".
	ID() string
	Title() string
	Summary() string
	// Region picks the layout region for the canvas before rest positions
	// are computed.
	Region(c Canvas) Region
	Displacement(rest Vec, t float64, env Env) Vec
}

// phase is the travelling-wave argument shared by the plane variants.
func phase(x, t float64, p Params) float64 {
	return x*p.Scale - t*p.TimeScale
}

// PWave moves points back and forth along the direction of travel.
type PWave struct{}

func (PWave) ID() string    { return "pwave" }
func (PWave) Title() string { return "P-wave" }
func (PWave) Summary() string {
	return "Primary compressional wave: particles oscillate along the direction of propagation."
}
func (PWave) Region(c Canvas) Region { return DefaultRegion(c) }

func (PWave) Displacement(rest Vec, t float64, env Env) Vec {
	p := env.Params
	return Vec{X: p.Amplitude * math.Cos(phase(rest.X, t, p))}
}

// SWave moves points perpendicular to the direction of travel.
type SWave struct{}

func (SWave) ID() string    { return "swave" }
func (SWave) Title() string { return "S-wave" }
func (SWave) Summary() string {
	return "Secondary shear wave: particles oscillate perpendicular to the direction of propagation."
}
func (SWave) Region(c Canvas) Region { return DefaultRegion(c) }

func (SWave) Displacement(rest Vec, t float64, env Env) Vec {
	p := env.Params
	return Vec{Y: p.Amplitude * math.Cos(phase(rest.X, t, p))}
}

// RadialPWave is a compressional wave spreading from the canvas center.
type RadialPWave struct{}

func (RadialPWave) ID() string    { return "radialpwave" }
func (RadialPWave) Title() string { return "Radial P-wave" }
func (RadialPWave) Summary() string {
	return "Compressional wave radiating from a point source: particles move along the radius."
}
func (RadialPWave) Region(c Canvas) Region { return DefaultRegion(c) }

func (RadialPWave) Displacement(rest Vec, t float64, env Env) Vec {
	p := env.Params
	rc := ToRadial(rest, env.Canvas.Center())
	q := rc.R*p.Scale - t*p.TimeScale
	a := p.Amplitude * math.Cos(q)
	return Vec{X: a * math.Cos(rc.Theta), Y: a * math.Sin(rc.Theta)}
}

// RadialSWave is a shear wave spreading from the canvas center. Points swing
// along their circle around the origin, keeping their radius.
type RadialSWave struct{}

func (RadialSWave) ID() string    { return "radialswave" }
func (RadialSWave) Title() string { return "Radial S-wave" }
func (RadialSWave) Summary() string {
	return "Shear wave radiating from a point source: particles swing along circles around the source."
}
func (RadialSWave) Region(c Canvas) Region { return DefaultRegion(c) }

func (RadialSWave) Displacement(rest Vec, t float64, env Env) Vec {
	p := env.Params
	origin := env.Canvas.Center()
	rc := ToRadial(rest, origin)
	r := rc.R
	if r < RadialEpsilon {
		r = RadialEpsilon
	}
	q := p.Scale*r - t*p.TimeScale
	theta := rc.Theta + p.Amplitude/r*math.Cos(q)
	d := Sub(origin, rest)
	return Vec{
		X: d.X + r*math.Cos(theta),
		Y: d.Y + r*math.Sin(theta),
	}
}

// RayleighWave rolls surface points on ellipses that shrink with depth.
type RayleighWave struct{}

func (RayleighWave) ID() string    { return "rayleighwave" }
func (RayleighWave) Title() string { return "Rayleigh wave" }
func (RayleighWave) Summary() string {
	return "Surface wave: particles trace ellipses whose size decays exponentially with depth."
}
func (RayleighWave) Region(c Canvas) Region { return HalfRegion(c) }

func (RayleighWave) Displacement(rest Vec, t float64, env Env) Vec {
	p := env.Params
	a := p.Amplitude / math.Sqrt2
	depth := rest.Y - env.Region.Top()
	att := math.Exp(-depth / env.Region.Height)
	phi := phase(rest.X, t, p)
	return Vec{
		X: a * att * math.Cos(phi),
		Y: a * att * math.Sin(phi),
	}
}

// AsymLambWave is the flexural mode of a plate centered on the canvas midline.
type AsymLambWave struct{}

func (AsymLambWave) ID() string    { return "asymlambwave" }
func (AsymLambWave) Title() string { return "Asymmetric Lamb wave" }
func (AsymLambWave) Summary() string {
	return "Flexural plate wave: the plate bends as a whole while cross-sections tilt about the midline."
}
func (AsymLambWave) Region(c Canvas) Region { return HalfRegion(c) }

func (AsymLambWave) Displacement(rest Vec, t float64, env Env) Vec {
	p := env.Params
	phi := phase(rest.X, t, p)
	dist := p.LambAmplitude * (env.Canvas.Midline() - rest.Y)
	tilt := math.Sin(phi)
	return Vec{
		X: dist * math.Sin(tilt),
		Y: dist*math.Cos(tilt) + p.Amplitude*math.Cos(phi),
	}
}

// SymLambWave is the extensional mode of a plate centered on the canvas
// midline: the two faces move in mirror image.
type SymLambWave struct{}

func (SymLambWave) ID() string    { return "symlambwave" }
func (SymLambWave) Title() string { return "Symmetric Lamb wave" }
func (SymLambWave) Summary() string {
	return "Extensional plate wave: the plate thickens and thins symmetrically about the midline."
}
func (SymLambWave) Region(c Canvas) Region { return HalfRegion(c) }

func (SymLambWave) Displacement(rest Vec, t float64, env Env) Vec {
	p := env.Params
	phi := phase(rest.X, t, p)
	dist := (env.Canvas.Midline() - rest.Y) / (env.Region.Height / 2)
	return Vec{
		X: p.Amplitude * math.Cos(dist) * math.Sin(phi),
		Y: p.Amplitude * dist * math.Cos(phi),
	}
}
