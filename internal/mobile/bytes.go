package mobile

import (
	"encoding/binary"
	"math"
)

// f32bytes packs vertex floats for gl.Context.BufferData.
func f32bytes(vals []float32) []byte {
	out := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}
