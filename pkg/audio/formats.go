package audio

import (
	"fmt"
	"strings"
)

// Format names a raw, headerless little-endian PCM sample layout.
type Format string

// Supported raw PCM layouts.
const (
	FormatS16LE Format = "s16le" // signed 16-bit
	FormatS32LE Format = "s32le" // signed 32-bit
	FormatF32LE Format = "f32le" // IEEE float, [-1, 1]
)

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatS16LE, FormatS32LE, FormatF32LE:
		return f, nil
	}
	return "", fmt.Errorf("unsupported pcm format %q (want s16le, s32le or f32le)", s)
}

// Width returns the size of one sample in bytes.
func (f Format) Width() int {
	switch f {
	case FormatS16LE:
		return 2
	case FormatS32LE, FormatF32LE:
		return 4
	}
	panic("audio: invalid pcm format " + string(f))
}

// Samples decodes b into a typed sample slice: []int16, []int32 or []float32.
func (f Format) Samples(b []byte) (any, error) {
	switch f {
	case FormatS16LE:
		return LEToPCM[int16](b)
	case FormatS32LE:
		return LEToPCM[int32](b)
	case FormatF32LE:
		return LEToPCM[float32](b)
	}
	return nil, fmt.Errorf("unsupported pcm format %q", f)
}
