// Package sampling implements deterministic and secure sampling of floating point values.
package sampling

import (
	"encoding/binary"
	"io"
	"math"
)

// RandUint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF read from r.
func RandUint64(r io.Reader) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := io.ReadFull(r, b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandFloat64 returns a random float in [min, max) read from r.
func RandFloat64(r io.Reader, min, max float64) float64 {
	// 53 random bits give a uniform float in [0, 1).
	f := float64(RandUint64(r)>>11) / (1 << 53)
	return min + f*(max-min)
}

// RandComplex128 returns a random complex with the real and imaginary part in [min, max).
func RandComplex128(r io.Reader, min, max float64) complex128 {
	return complex(RandFloat64(r, min, max), RandFloat64(r, min, max))
}

// RandUnitComplex128 returns a random complex of modulus 1.
func RandUnitComplex128(r io.Reader) complex128 {
	theta := RandFloat64(r, 0, 2*math.Pi)
	return complex(math.Cos(theta), math.Sin(theta))
}
