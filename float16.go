package main

import (
	"encoding/binary"
	"math"
)

// appendHalf appends v as a little-endian IEEE 754-2008 binary16 value.
func appendHalf(dst []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint16(dst, halfBits(v))
}

// readHalf decodes a little-endian binary16 value from the first two bytes of b.
func readHalf(b []byte) float32 {
	return halfToFloat32(binary.LittleEndian.Uint16(b))
}

// halfBits rounds f to the nearest binary16 value. Overflow saturates to
// infinity and NaN stays NaN.
func halfBits(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int((bits >> 23) & 0xff)
	mant := bits & 0x7fffff

	if exp == 0xff {
		if mant == 0 {
			return sign | 0x7c00
		}
		mant >>= 13
		if mant == 0 {
			mant = 1
		}
		return sign | 0x7c00 | uint16(mant)
	}
	if exp == 0 && mant == 0 {
		return sign
	}

	e := exp - 127 + 15
	if e >= 0x1f {
		return sign | 0x7c00
	}
	if e <= 0 {
		// subnormal half, or too small to represent
		if e < -10 {
			return sign
		}
		m := (mant | 0x800000) >> uint(1-e)
		m += 0x1000
		return sign | uint16(m>>13)
	}

	mant += 0x1000
	if mant&0x800000 != 0 {
		mant = 0
		e++
		if e >= 0x1f {
			return sign | 0x7c00
		}
	}
	return sign | uint16(e<<10) | uint16(mant>>13)
}

// halfToFloat32 expands a binary16 value.
func halfToFloat32(h uint16) float32 {
	sign := uint32(h>>15) << 31
	exp := int((h >> 10) & 0x1f)
	mant := uint32(h & 0x3ff)

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		exp = -14
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		mant &= 0x3ff
		return math.Float32frombits(sign | uint32((exp+127)<<23) | (mant << 13))
	case 0x1f:
		bits := sign | 0x7f800000 | (mant << 13)
		if mant != 0 {
			bits |= 1
		}
		return math.Float32frombits(bits)
	default:
		return math.Float32frombits(sign | uint32((exp-15+127)<<23) | (mant << 13))
	}
}
