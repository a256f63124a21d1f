// Package mapping turns text into colors: single strings by byte sampling and
// word lists by sequential interpolation.
package mapping

import (
	"fmt"

	"github.com/jsvensson/wordhue/internal/color"
)

// Sampler picks three evenly spaced bytes from buf as r, g, b.
// buf always holds at least three bytes.
type Sampler func(buf []byte) [3]byte

// SampleSpread reads bytes floor(i*n/3) for i in 0, 1, 2, spreading the
// samples across the whole buffer.
func SampleSpread(buf []byte) [3]byte {
	n := len(buf)
	return [3]byte{buf[0], buf[n/3], buf[2*n/3]}
}

// SampleStride reads bytes 0, k and 2k where k = floor(n/3), the first three
// positions of a walk with stride k.
func SampleStride(buf []byte) [3]byte {
	k := len(buf) / 3
	return [3]byte{buf[0], buf[k], buf[2*k]}
}

// SamplerByName resolves "spread" or "stride". An empty name means spread.
func SamplerByName(name string) (Sampler, error) {
	switch name {
	case "", "spread":
		return SampleSpread, nil
	case "stride":
		return SampleStride, nil
	default:
		return nil, fmt.Errorf("unknown sampling %q (valid: spread, stride)", name)
	}
}

// FromString maps text to a color by sampling its UTF-8 bytes with
// SampleSpread. Inputs shorter than three bytes are right-padded with zeros.
func FromString(text string) color.Color {
	return FromStringWith(text, SampleSpread)
}

// FromStringWith is FromString with an explicit sampler. A nil sampler means SampleSpread.
func FromStringWith(text string, sample Sampler) color.Color {
	if sample == nil {
		sample = SampleSpread
	}

	buf := []byte(text)
	if len(buf) < 3 {
		padded := make([]byte, 3)
		copy(padded, buf)
		buf = padded
	}

	rgb := sample(buf)
	return color.Color{R: rgb[0], G: rgb[1], B: rgb[2]}
}
