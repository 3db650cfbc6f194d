package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"seismicgrid/internal/seismic"
)

// frameMagic starts every binary frame.
const frameMagic = "SWG1"

const frameHeaderLen = len(frameMagic) + 1 + 1 + 2*6 + 4

var errFrameSize = errors.New("frame size mismatch")

// frame is the decoded form of one broadcast tick.
type frame struct {
	modelIndex int
	marker     seismic.MarkerRef
	points     int
	hLines     int
	vLines     int
	time       float32
	horizontal []float32 // packed x, y
	vertical   []float32
	trail      []float32 // NaN pairs mark unfilled slots
}

// encodeFrame appends the scene's current state to dst: a fixed header
// followed by half-precision coordinates for both families and the trail.
func encodeFrame(dst []byte, s *seismic.Scene) []byte {
	g := s.Grid()
	tr := s.Trail()
	m := s.Marker()
	hl, vl, pc := g.Lines(seismic.Horizontal), g.Lines(seismic.Vertical), g.PointsCount()

	dst = append(dst, frameMagic...)
	dst = append(dst, byte(seismic.FieldIndex(s.Model().ID())), byte(m.Family))
	dst = binary.LittleEndian.AppendUint16(dst, uint16(m.Line))
	dst = binary.LittleEndian.AppendUint16(dst, uint16(m.Index))
	dst = binary.LittleEndian.AppendUint16(dst, uint16(pc))
	dst = binary.LittleEndian.AppendUint16(dst, uint16(hl))
	dst = binary.LittleEndian.AppendUint16(dst, uint16(vl))
	dst = binary.LittleEndian.AppendUint16(dst, uint16(tr.Cap()))
	dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(g.Time())))

	appendPoint := func(_, _ int, p seismic.Vec) {
		dst = appendHalf(dst, float32(p.X))
		dst = appendHalf(dst, float32(p.Y))
	}
	g.Each(seismic.Horizontal, appendPoint)
	g.Each(seismic.Vertical, appendPoint)

	nan := float32(math.NaN())
	for i := 0; i < tr.Cap(); i++ {
		sm := tr.Sample(i)
		if !sm.Filled {
			dst = appendHalf(dst, nan)
			dst = appendHalf(dst, nan)
			continue
		}
		dst = appendHalf(dst, float32(sm.Pos.X))
		dst = appendHalf(dst, float32(sm.Pos.Y))
	}
	return dst
}

// decodeFrame parses a frame produced by encodeFrame.
func decodeFrame(b []byte) (frame, error) {
	if len(b) < frameHeaderLen {
		return frame{}, errFrameSize
	}
	if string(b[:len(frameMagic)]) != frameMagic {
		return frame{}, fmt.Errorf("bad frame magic %q", b[:len(frameMagic)])
	}
	p := b[len(frameMagic):]
	u16 := func(off int) int { return int(binary.LittleEndian.Uint16(p[off:])) }
	f := frame{
		modelIndex: int(p[0]),
		marker: seismic.MarkerRef{
			Family: seismic.Family(p[1]),
			Line:   u16(2),
			Index:  u16(4),
		},
		points: u16(6),
		hLines: u16(8),
		vLines: u16(10),
		time:   math.Float32frombits(binary.LittleEndian.Uint32(p[14:])),
	}
	trailCap := u16(12)
	body := b[frameHeaderLen:]
	want := 4 * (f.points*(f.hLines+f.vLines) + trailCap)
	if len(body) != want {
		return frame{}, fmt.Errorf("frame body is %d bytes, want %d: %w", len(body), want, errFrameSize)
	}
	read := func(n int) []float32 {
		out := make([]float32, n)
		for i := range out {
			out[i] = readHalf(body)
			body = body[2:]
		}
		return out
	}
	f.horizontal = read(2 * f.points * f.hLines)
	f.vertical = read(2 * f.points * f.vLines)
	f.trail = read(2 * trailCap)
	return f, nil
}
