package main

import (
	"sync"

	"seismicgrid/internal/seismic"
)

// markerAudioStream turns the marker displacement into a PCM level that
// Ebiten's audio player reads as stereo 16-bit frames.
type markerAudioStream struct {
	mu     sync.Mutex
	sample float32
	dc     float32
}

func newMarkerAudioStream() *markerAudioStream {
	return &markerAudioStream{}
}

// SetDisplacement normalizes d by the wave amplitude and stores it as the
// next sample.
func (s *markerAudioStream) SetDisplacement(d seismic.Vec, amplitude float64) {
	if amplitude <= 0 {
		s.SetSample(0)
		return
	}
	s.SetSample(float32((d.X + d.Y) / (2 * amplitude)))
}

// SetSample clamps v to [-1, 1] and removes a slowly varying DC component.
func (s *markerAudioStream) SetSample(v float32) {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	s.mu.Lock()
	const alpha = 0.001
	s.dc += alpha * (v - s.dc)
	s.sample = v - s.dc
	s.mu.Unlock()
}

// Read fills p with whole stereo frames of the current sample.
func (s *markerAudioStream) Read(p []byte) (int, error) {
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	sample := s.sample
	s.mu.Unlock()
	if sample > 1 {
		sample = 1
	} else if sample < -1 {
		sample = -1
	}

	v := int16(sample * pcm16MaxValue)
	for i := 0; i < frameBytes; i += 4 {
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *markerAudioStream) Close() error {
	return nil
}
