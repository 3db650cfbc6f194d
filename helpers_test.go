package main

import (
	"testing"

	"seismicgrid/internal/seismic"
)

var testCanvas = seismic.Canvas{Width: 400, Height: 300}

func testParams() seismic.Params {
	return seismic.Params{
		FPS:              30,
		PointsCount:      5,
		HorizontalLines:  3,
		VerticalLines:    3,
		Amplitude:        10,
		LambAmplitude:    0.1,
		Scale:            1,
		TimeScale:        1,
		MarkerHistoryLen: 5,
	}
}

func newTestController(t *testing.T, p seismic.Params, model string) *controller {
	t.Helper()
	ctrl, err := newController(appConfig{params: p, canvas: testCanvas, model: model})
	if err != nil {
		t.Fatalf("newController: %v", err)
	}
	return ctrl
}
