package seismic

import (
	"math"
	"strconv"
	"strings"
)

// Configuration field names as supplied by the shell.
const (
	FieldFPS              = "fps"
	FieldPointsCount      = "points-count"
	FieldHorizontalLines  = "horizontal-lines"
	FieldVerticalLines    = "vertical-lines"
	FieldAmplitude        = "amplitude"
	FieldLambAmplitude    = "lamb-amplitude"
	FieldScale            = "scale"
	FieldTimeScale        = "time-scale"
	FieldMarkerHistoryLen = "marker-history-len"
)

// Upper bounds keep a typo from allocating an absurd grid.
const (
	maxFPS        = 240
	maxPoints     = 4096
	maxLines      = 4096
	maxHistoryLen = 1 << 15
)

var fieldNames = []string{
	FieldFPS,
	FieldPointsCount,
	FieldHorizontalLines,
	FieldVerticalLines,
	FieldAmplitude,
	FieldLambAmplitude,
	FieldScale,
	FieldTimeScale,
	FieldMarkerHistoryLen,
}

// FieldNames lists every configuration field in a stable order.
func FieldNames() []string {
	out := make([]string, len(fieldNames))
	copy(out, fieldNames)
	return out
}

// Params are the grid and wave parameters. They are parsed once and never
// modified afterwards.
type Params struct {
	FPS              int     `json:"fps"`
	PointsCount      int     `json:"pointsCount"`
	HorizontalLines  int     `json:"horizontalLines"`
	VerticalLines    int     `json:"verticalLines"`
	Amplitude        float64 `json:"amplitude"`
	LambAmplitude    float64 `json:"lambAmplitude"`
	Scale            float64 `json:"scale"`
	TimeScale        float64 `json:"timeScale"`
	MarkerHistoryLen int     `json:"markerHistoryLen"`
}

// DefaultParams returns the values used for any field the configuration omits.
func DefaultParams() Params {
	return Params{
		FPS:              30,
		PointsCount:      41,
		HorizontalLines:  11,
		VerticalLines:    15,
		Amplitude:        10,
		LambAmplitude:    0.1,
		Scale:            0.05,
		TimeScale:        3,
		MarkerHistoryLen: 40,
	}
}

// ParseParams builds Params from named numeric strings. Missing fields keep
// their defaults, unknown names are ignored.
func ParseParams(fields map[string]string) (Params, error) {
	p := DefaultParams()
	ints := map[string]*int{
		FieldFPS:              &p.FPS,
		FieldPointsCount:      &p.PointsCount,
		FieldHorizontalLines:  &p.HorizontalLines,
		FieldVerticalLines:    &p.VerticalLines,
		FieldMarkerHistoryLen: &p.MarkerHistoryLen,
	}
	floats := map[string]*float64{
		FieldAmplitude:     &p.Amplitude,
		FieldLambAmplitude: &p.LambAmplitude,
		FieldScale:         &p.Scale,
		FieldTimeScale:     &p.TimeScale,
	}
	for _, name := range fieldNames {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		raw = strings.TrimSpace(raw)
		if dst, ok := ints[name]; ok {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return Params{}, configErrorf(name, raw, "not an integer")
			}
			*dst = v
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Params{}, configErrorf(name, raw, "not a number")
		}
		*floats[name] = v
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate checks every field against its allowed range.
func (p Params) Validate() error {
	if err := checkInt(FieldFPS, p.FPS, 1, maxFPS); err != nil {
		return err
	}
	if err := checkInt(FieldPointsCount, p.PointsCount, 2, maxPoints); err != nil {
		return err
	}
	if err := checkInt(FieldHorizontalLines, p.HorizontalLines, 1, maxLines); err != nil {
		return err
	}
	if err := checkInt(FieldVerticalLines, p.VerticalLines, 1, maxLines); err != nil {
		return err
	}
	if err := checkInt(FieldMarkerHistoryLen, p.MarkerHistoryLen, 1, maxHistoryLen); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{FieldAmplitude, p.Amplitude},
		{FieldLambAmplitude, p.LambAmplitude},
		{FieldScale, p.Scale},
		{FieldTimeScale, p.TimeScale},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return configErrorf(f.name, strconv.FormatFloat(f.v, 'g', -1, 64), "must be finite")
		}
		if f.v < 0 {
			return configErrorf(f.name, strconv.FormatFloat(f.v, 'g', -1, 64), "must not be negative")
		}
	}
	return nil
}

// Values renders p back into named strings accepted by ParseParams.
func (p Params) Values() map[string]string {
	return map[string]string{
		FieldFPS:              strconv.Itoa(p.FPS),
		FieldPointsCount:      strconv.Itoa(p.PointsCount),
		FieldHorizontalLines:  strconv.Itoa(p.HorizontalLines),
		FieldVerticalLines:    strconv.Itoa(p.VerticalLines),
		FieldAmplitude:        strconv.FormatFloat(p.Amplitude, 'g', -1, 64),
		FieldLambAmplitude:    strconv.FormatFloat(p.LambAmplitude, 'g', -1, 64),
		FieldScale:            strconv.FormatFloat(p.Scale, 'g', -1, 64),
		FieldTimeScale:        strconv.FormatFloat(p.TimeScale, 'g', -1, 64),
		FieldMarkerHistoryLen: strconv.Itoa(p.MarkerHistoryLen),
	}
}

func checkInt(name string, v, min, max int) error {
	if v < min || v > max {
		return configErrorf(name, strconv.Itoa(v), "must be in [%d, %d]", min, max)
	}
	return nil
}
