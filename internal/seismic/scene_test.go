package seismic

import (
	"errors"
	"testing"
)

func newTestScene(t *testing.T, id string) *Scene {
	t.Helper()
	s, err := NewScene(scenarioParams(), scenarioCanvas, id)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s
}

func TestSceneDefaults(t *testing.T) {
	s := newTestScene(t, "swave")
	if s.Model().ID() != "swave" {
		t.Errorf("model = %q", s.Model().ID())
	}
	if want := (MarkerRef{Family: Horizontal, Line: 0, Index: 2}); s.Marker() != want {
		t.Errorf("marker = %+v, want %+v", s.Marker(), want)
	}
	if s.Trail().Cap() != scenarioParams().MarkerHistoryLen || s.Trail().Len() != 0 {
		t.Errorf("trail %d/%d", s.Trail().Len(), s.Trail().Cap())
	}
}

func TestSceneRejectsBadConfig(t *testing.T) {
	p := scenarioParams()
	p.PointsCount = 1
	if _, err := NewScene(p, scenarioCanvas, "pwave"); !errors.Is(err, ErrConfig) {
		t.Errorf("err = %v, want ErrConfig", err)
	}
}

func TestSceneStepRecordsMarker(t *testing.T) {
	s := newTestScene(t, "pwave")
	for i := 0; i < 4; i++ {
		s.Step(0.1)
		latest, ok := s.Trail().Latest()
		if !ok || latest != s.MarkerPosition() {
			t.Fatalf("step %d: latest %v, marker %v", i, latest, s.MarkerPosition())
		}
	}
	if s.Trail().Len() != 4 {
		t.Errorf("trail len = %d, want 4", s.Trail().Len())
	}
	m := s.Marker()
	want := Sub(s.Grid().Current(m.Family, m.Line, m.Index), s.Grid().Rest(m.Family, m.Line, m.Index))
	if s.MarkerDisplacement() != want {
		t.Errorf("displacement = %v, want %v", s.MarkerDisplacement(), want)
	}
}

func TestSceneRetargetClearsTrail(t *testing.T) {
	s := newTestScene(t, "pwave")
	s.Step(0.1)
	s.Step(0.1)
	target := s.Grid().Current(Vertical, 2, 3)
	ref := s.Retarget(target)
	if Distance(Resolve(s.Grid(), ref), target) != 0 {
		t.Errorf("retarget resolved to %+v", ref)
	}
	if s.Marker() != ref {
		t.Errorf("marker = %+v, want %+v", s.Marker(), ref)
	}
	if s.Trail().Len() != 0 {
		t.Errorf("trail len = %d after retarget", s.Trail().Len())
	}
}

func TestSceneSetMarker(t *testing.T) {
	s := newTestScene(t, "pwave")
	s.Step(0.1)
	if s.SetMarker(MarkerRef{Family: Vertical, Line: 9, Index: 0}) {
		t.Error("SetMarker accepted an out-of-range line")
	}
	if s.Trail().Len() != 1 {
		t.Error("rejected SetMarker cleared the trail")
	}
	ref := MarkerRef{Family: Vertical, Line: 1, Index: 4}
	if !s.SetMarker(ref) || s.Marker() != ref || s.Trail().Len() != 0 {
		t.Errorf("SetMarker(%+v) failed: marker %+v, trail %d", ref, s.Marker(), s.Trail().Len())
	}
}

func TestSceneSetModel(t *testing.T) {
	s := newTestScene(t, "pwave")
	s.Step(0.5)
	s.Step(0.25)
	marker := s.Marker()

	if !s.SetModel("rayleighwave") {
		t.Fatal("SetModel rejected a known id")
	}
	if s.Model().ID() != "rayleighwave" {
		t.Errorf("model = %q", s.Model().ID())
	}
	if !near(s.Grid().Time(), 0.75, eps) {
		t.Errorf("time = %v, want 0.75", s.Grid().Time())
	}
	if s.Grid().Region() != HalfRegion(scenarioCanvas) {
		t.Errorf("region = %+v, want half region", s.Grid().Region())
	}
	if s.Marker() != marker {
		t.Errorf("marker changed to %+v", s.Marker())
	}
	if s.Trail().Len() != 0 {
		t.Error("trail not cleared on model switch")
	}

	if s.SetModel("lovewave") {
		t.Error("SetModel accepted an unknown id")
	}
	if s.Model().ID() != DefaultFieldID {
		t.Errorf("unknown id selected %q, want fallback", s.Model().ID())
	}
}

func TestSceneUnknownModelFallsBack(t *testing.T) {
	s := newTestScene(t, "")
	if s.Model().ID() != DefaultFieldID {
		t.Errorf("model = %q, want %q", s.Model().ID(), DefaultFieldID)
	}
}
