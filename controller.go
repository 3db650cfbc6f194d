package main

import (
	"log"

	"seismicgrid/internal/seismic"
)

// controller applies user actions to a scene and advances it one frame at a
// time. Front ends call it from a single goroutine.
type controller struct {
	scene *seismic.Scene
	speed float64
}

// newController builds the scene described by cfg.
func newController(cfg appConfig) (*controller, error) {
	scene, err := seismic.NewScene(cfg.params, cfg.canvas, cfg.model)
	if err != nil {
		return nil, err
	}
	return &controller{scene: scene, speed: defaultSpeed}, nil
}

// frameStep returns the simulated seconds covered by one frame.
func (c *controller) frameStep() float64 {
	return c.speed / float64(c.scene.Params().FPS)
}

// tick advances the scene by one frame.
func (c *controller) tick() {
	c.scene.Step(c.frameStep())
}

// selectModel switches models, logging ids that fall back to the default.
func (c *controller) selectModel(id string) {
	if !c.scene.SetModel(id) {
		log.Printf("unknown model %q, using %s", id, seismic.DefaultFieldID)
		return
	}
	log.Printf("model switched to %s", id)
}

// selectModelIndex switches to the model at menu position i.
func (c *controller) selectModelIndex(i int) {
	ids := seismic.FieldIDs()
	if i < 0 || i >= len(ids) {
		return
	}
	c.selectModel(ids[i])
}

// retarget moves the marker to the grid point nearest (x, y).
func (c *controller) retarget(x, y float64) seismic.MarkerRef {
	return c.scene.Retarget(seismic.Vec{X: x, Y: y})
}

// adjustSpeed changes the playback multiplier, clamped to bounds.
func (c *controller) adjustSpeed(delta float64) {
	c.setSpeed(c.speed + delta)
}

func (c *controller) setSpeed(v float64) {
	if v < minSpeed {
		v = minSpeed
	} else if v > maxSpeed {
		v = maxSpeed
	}
	c.speed = v
}
