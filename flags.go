package main

import (
	"flag"

	"seismicgrid/internal/seismic"
)

// Command-line flags that select the front end and override configuration.
// Every grid parameter also gets a flag named after its configuration field
// (see registerParamFlags).
var (
	// modeFlag picks the front end: window, terminal, or serve.
	modeFlag = flag.String("mode", modeWindow, "front end: window, terminal, or serve")

	// modelFlag selects the initial wave model.
	modelFlag = flag.String("model", seismic.DefaultFieldID, "initial wave model id")

	// settingsFlag points at an optional JSON settings file.
	settingsFlag = flag.String("settings", "", "JSON settings file with configuration fields")

	widthFlag  = flag.Float64("width", defaultCanvasWidth, "canvas width in model units")
	heightFlag = flag.Float64("height", defaultCanvasHeight, "canvas height in model units")

	// addrFlag is the listen address for serve mode.
	addrFlag = flag.String("addr", ":8080", "listen address for serve mode")

	// debugFlag enables the FPS and simulation overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and simulation overlay")

	// enableAudioFlag streams the marker displacement as an audio level.
	enableAudioFlag = flag.Bool("enable-audio", false, "play the marker displacement as audio (window mode)")

	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
	logFileFlag    = flag.String("log-file", "", "append log output to this file")
)

// paramFlags holds the per-field flags keyed by configuration field name.
var paramFlags = registerParamFlags(flag.CommandLine)

func registerParamFlags(fs *flag.FlagSet) map[string]*string {
	defaults := seismic.DefaultParams().Values()
	out := make(map[string]*string, len(defaults))
	for _, name := range seismic.FieldNames() {
		out[name] = fs.String(name, defaults[name], "grid parameter "+name)
	}
	return out
}
