package seismic

import (
	"math"
	"testing"
)

func scenarioParams() Params {
	p := DefaultParams()
	p.PointsCount = 5
	p.HorizontalLines = 3
	p.VerticalLines = 3
	p.Amplitude = 10
	p.Scale = 1
	p.TimeScale = 1
	return p
}

var scenarioCanvas = Canvas{Width: 400, Height: 300}

func envFor(f Field, p Params) Env {
	return Env{Params: p, Canvas: scenarioCanvas, Region: f.Region(scenarioCanvas)}
}

func TestZeroAmplitudeGivesZeroDisplacement(t *testing.T) {
	p := scenarioParams()
	p.Amplitude = 0
	p.LambAmplitude = 0
	points := []Vec{
		{X: 0, Y: 0},
		{X: 37.5, Y: 81},
		{X: 200, Y: 150},
		{X: 399, Y: 12},
		{X: 250, Y: 290},
	}
	for _, f := range Fields() {
		env := envFor(f, p)
		for _, rest := range points {
			for _, tm := range []float64{0, 0.5, math.Pi, 17} {
				d := f.Displacement(rest, tm, env)
				if !nearVec(d, Vec{}, 1e-6) {
					t.Errorf("%s at %v t=%v: displacement %v, want zero", f.ID(), rest, tm, d)
				}
			}
		}
	}
}

func TestPWaveScenario(t *testing.T) {
	p := scenarioParams()
	env := envFor(PWave{}, p)
	rest := Vec{X: 0, Y: 42}

	d := PWave{}.Displacement(rest, 0, env)
	if !nearVec(d, Vec{X: 10}, eps) {
		t.Errorf("t=0: got %v, want {10 0}", d)
	}
	d = PWave{}.Displacement(rest, math.Pi, env)
	if !nearVec(d, Vec{X: -10}, eps) {
		t.Errorf("t=pi: got %v, want {-10 0}", d)
	}
}

func TestSWaveMovesVertically(t *testing.T) {
	p := scenarioParams()
	env := envFor(SWave{}, p)
	d := SWave{}.Displacement(Vec{X: 0, Y: 100}, 0, env)
	if !nearVec(d, Vec{Y: 10}, eps) {
		t.Errorf("got %v, want {0 10}", d)
	}
	d = SWave{}.Displacement(Vec{X: math.Pi / 2, Y: 100}, 0, env)
	if !nearVec(d, Vec{}, eps) {
		t.Errorf("quarter wave: got %v, want zero", d)
	}
}

func TestRayleighSurfaceScenario(t *testing.T) {
	p := scenarioParams()
	p.Amplitude = math.Sqrt2
	f := RayleighWave{}
	env := envFor(f, p)
	for _, x := range []float64{0, 1, 2.5, 100} {
		rest := Vec{X: x, Y: env.Region.Top()}
		for _, tm := range []float64{0, 0.3, 2} {
			phi := x*p.Scale - tm*p.TimeScale
			d := f.Displacement(rest, tm, env)
			want := Vec{X: math.Cos(phi), Y: math.Sin(phi)}
			if !nearVec(d, want, eps) {
				t.Errorf("x=%v t=%v: got %v, want %v", x, tm, d, want)
			}
		}
	}
}

func TestRayleighAttenuatesWithDepth(t *testing.T) {
	p := scenarioParams()
	f := RayleighWave{}
	env := envFor(f, p)
	top := Length(f.Displacement(Vec{X: 0, Y: env.Region.Top()}, 0, env))
	bottom := Length(f.Displacement(Vec{X: 0, Y: env.Region.Top() + env.Region.Height}, 0, env))
	if !near(bottom, top*math.Exp(-1), eps) {
		t.Errorf("bottom magnitude %v, want %v", bottom, top*math.Exp(-1))
	}
}

func TestRadialPWaveMovesAlongRadius(t *testing.T) {
	p := scenarioParams()
	f := RadialPWave{}
	env := envFor(f, p)
	center := scenarioCanvas.Center()
	rest := Vec{X: center.X + 30, Y: center.Y + 40}
	d := f.Displacement(rest, 1.25, env)
	// cross product of radius and displacement is zero
	r := Sub(rest, center)
	if cross := r.X*d.Y - r.Y*d.X; !near(cross, 0, 1e-9) {
		t.Errorf("displacement %v not radial (cross %v)", d, cross)
	}
	want := p.Amplitude * math.Abs(math.Cos(50*p.Scale-1.25*p.TimeScale))
	if got := Length(d); !near(got, want, 1e-9) {
		t.Errorf("|d| = %v, want %v", got, want)
	}
}

func TestRadialSWaveKeepsRadius(t *testing.T) {
	p := scenarioParams()
	f := RadialSWave{}
	env := envFor(f, p)
	center := scenarioCanvas.Center()
	for _, rest := range []Vec{
		{X: center.X + 30, Y: center.Y - 40},
		{X: 10, Y: 10},
		{X: center.X, Y: center.Y + 1},
	} {
		cur := Add(rest, f.Displacement(rest, 0.7, env))
		if !near(Distance(cur, center), Distance(rest, center), 1e-9) {
			t.Errorf("rest %v moved off its circle to %v", rest, cur)
		}
	}
}

func TestRadialSWaveAtOriginIsFinite(t *testing.T) {
	p := scenarioParams()
	f := RadialSWave{}
	env := envFor(f, p)
	center := scenarioCanvas.Center()
	for _, tm := range []float64{0, 1, 2.2} {
		d := f.Displacement(center, tm, env)
		if math.IsNaN(d.X) || math.IsNaN(d.Y) || math.IsInf(d.X, 0) || math.IsInf(d.Y, 0) {
			t.Fatalf("t=%v: non-finite displacement %v", tm, d)
		}
		if Length(d) > RadialEpsilon*(1+1e-9) {
			t.Errorf("t=%v: |d| = %v exceeds epsilon", tm, Length(d))
		}
	}
}

func TestLambWavesAtMidline(t *testing.T) {
	p := scenarioParams()
	p.LambAmplitude = 0.5
	mid := scenarioCanvas.Midline()
	x := 0.75
	tm := 0.25
	phi := x*p.Scale - tm*p.TimeScale

	asym := AsymLambWave{}.Displacement(Vec{X: x, Y: mid}, tm, envFor(AsymLambWave{}, p))
	if !nearVec(asym, Vec{Y: p.Amplitude * math.Cos(phi)}, eps) {
		t.Errorf("asym at midline: got %v", asym)
	}
	sym := SymLambWave{}.Displacement(Vec{X: x, Y: mid}, tm, envFor(SymLambWave{}, p))
	if !nearVec(sym, Vec{X: p.Amplitude * math.Sin(phi)}, eps) {
		t.Errorf("sym at midline: got %v", sym)
	}
}

func TestSymLambMirrorsAcrossMidline(t *testing.T) {
	p := scenarioParams()
	f := SymLambWave{}
	env := envFor(f, p)
	mid := scenarioCanvas.Midline()
	above := f.Displacement(Vec{X: 3, Y: mid - 20}, 0.4, env)
	below := f.Displacement(Vec{X: 3, Y: mid + 20}, 0.4, env)
	if !near(above.X, below.X, eps) || !near(above.Y, -below.Y, eps) {
		t.Errorf("above %v and below %v are not mirror images", above, below)
	}
}

func TestAsymLambUsesLambAmplitude(t *testing.T) {
	p := scenarioParams()
	p.Amplitude = 0
	p.LambAmplitude = 0.5
	f := AsymLambWave{}
	env := envFor(f, p)
	mid := scenarioCanvas.Midline()
	// phi = 0 so the tilt is zero and the offset is purely vertical
	d := f.Displacement(Vec{X: 0, Y: mid - 20}, 0, env)
	if !nearVec(d, Vec{Y: 10}, eps) {
		t.Errorf("got %v, want {0 10}", d)
	}
}

func TestRegistry(t *testing.T) {
	want := []string{"pwave", "swave", "radialpwave", "radialswave", "rayleighwave", "asymlambwave", "symlambwave"}
	ids := FieldIDs()
	if len(ids) != len(want) {
		t.Fatalf("got %d ids, want %d", len(ids), len(want))
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], id)
		}
		f, ok := LookupField(id)
		if !ok || f.ID() != id {
			t.Errorf("LookupField(%q) = %v, %v", id, f, ok)
		}
		if FieldIndex(id) != i {
			t.Errorf("FieldIndex(%q) = %d, want %d", id, FieldIndex(id), i)
		}
		if f.Title() == "" || f.Summary() == "" {
			t.Errorf("%s has no description", id)
		}
	}
	if _, ok := LookupField("lovewave"); ok {
		t.Error("LookupField accepted an unknown id")
	}
	if got := FieldFor("lovewave").ID(); got != DefaultFieldID {
		t.Errorf("FieldFor(unknown) = %q, want %q", got, DefaultFieldID)
	}
	if FieldIndex("lovewave") != -1 {
		t.Error("FieldIndex(unknown) != -1")
	}
}

func TestFieldRegions(t *testing.T) {
	full := DefaultRegion(scenarioCanvas)
	half := HalfRegion(scenarioCanvas)
	if !near(half.Height, full.Height/2, eps) || !near(half.Width, full.Width, eps) {
		t.Fatalf("half region %+v not derived from %+v", half, full)
	}
	if !near(half.Center().Y, scenarioCanvas.Midline(), eps) {
		t.Errorf("half region centered at %v, want midline %v", half.Center().Y, scenarioCanvas.Midline())
	}
	for _, f := range Fields() {
		want := full
		switch f.(type) {
		case RayleighWave, AsymLambWave, SymLambWave:
			want = half
		}
		if got := f.Region(scenarioCanvas); got != want {
			t.Errorf("%s region = %+v, want %+v", f.ID(), got, want)
		}
	}
}
