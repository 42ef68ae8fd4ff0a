package wire

import "math"

func f32bits(v float32) uint32     { return math.Float32bits(v) }
func f32frombits(b uint32) float32 { return math.Float32frombits(b) }
func f64bits(v float64) uint64     { return math.Float64bits(v) }
func f64frombits(b uint64) float64 { return math.Float64frombits(b) }

// EncodeF32Bits exposes the binary32 bit pattern of v, for callers (such
// as pkg/stream) that write the width themselves instead of going through
// EncodeF32.
func EncodeF32Bits(v float32) uint32 { return f32bits(v) }

// DecodeF32Bits recovers a float32 from its binary32 bit pattern.
func DecodeF32Bits(b uint32) float32 { return f32frombits(b) }

// EncodeF64Bits exposes the binary64 bit pattern of v.
func EncodeF64Bits(v float64) uint64 { return f64bits(v) }

// DecodeF64Bits recovers a float64 from its binary64 bit pattern.
func DecodeF64Bits(b uint64) float64 { return f64frombits(b) }
