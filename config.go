package main

import "time"

// Rendering, timing, and transport constants shared by the window, terminal,
// and websocket front ends.
const (
	defaultCanvasWidth  = 960
	defaultCanvasHeight = 600
	windowScale         = 1
	markerRadius        = 5
	gridLineWidth       = 1
	trailLineWidth      = 2
	defaultSpeed        = 1.0
	speedStep           = 0.25
	minSpeed            = 0.25
	maxSpeed            = 8.0
	audioSampleRate     = 48000
	audioBufferLatency  = 80 * time.Millisecond
	pcm16MaxValue       = 32767
	wsWriteTimeout      = 2 * time.Second
	wsClientQueue       = 8
	shutdownGrace       = 3 * time.Second
	statusRows          = 1
)

// Front ends selectable with -mode.
const (
	modeWindow   = "window"
	modeTerminal = "terminal"
	modeServe    = "serve"
)
