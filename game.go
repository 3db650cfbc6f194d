package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Game drives the scene from Ebiten's update loop and renders it in Draw.
type Game struct {
	ctrl *controller

	audioCtx    *audio.Context
	audioStream *markerAudioStream
	audioPlayer *audio.Player
}

// newGame constructs a Game around ctrl, starting audio output when enabled.
func newGame(ctrl *controller, enableAudio bool) *Game {
	g := &Game{ctrl: ctrl}
	if enableAudio {
		ctx := audio.NewContext(audioSampleRate)
		g.audioCtx = ctx
		stream := newMarkerAudioStream()
		g.audioStream = stream
		if player, err := ctx.NewPlayer(stream); err != nil {
			log.Printf("Audio player creation failed: %v", err)
		} else {
			g.audioPlayer = player
			g.audioPlayer.SetBufferSize(audioBufferLatency)
			g.audioPlayer.Play()
		}
	}
	return g
}

// Update handles input and advances the simulation by one frame.
func (g *Game) Update() error {
	g.handleInput()
	g.ctrl.tick()
	if g.audioStream != nil {
		g.audioStream.SetDisplacement(g.ctrl.scene.MarkerDisplacement(), g.ctrl.scene.Params().Amplitude)
	}
	return nil
}

// Layout reports the canvas size as the logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	c := g.ctrl.scene.Canvas()
	return int(c.Width), int(c.Height)
}

// runWindow opens the Ebiten window and blocks until it is closed.
func runWindow(ctrl *controller) error {
	c := ctrl.scene.Canvas()
	ebiten.SetTPS(ctrl.scene.Params().FPS)
	ebiten.SetWindowSize(int(c.Width)*windowScale, int(c.Height)*windowScale)
	ebiten.SetWindowTitle("Seismic Waves")
	return ebiten.RunGame(newGame(ctrl, *enableAudioFlag))
}
