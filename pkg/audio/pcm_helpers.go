package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Sample is a PCM sample type.
type Sample interface {
	~int16 | ~int32 | ~float32 | ~float64
}

// PCMInt16ToLE converts int16 samples to raw little-endian bytes.
func PCMInt16ToLE(samples []int16) []byte {
	return PCMToLE(samples)
}

// PCMToLE converts samples to raw little-endian bytes.
func PCMToLE[T Sample](samples []T) []byte {
	var (
		buf  bytes.Buffer
		zero T
	)
	buf.Grow(len(samples) * binary.Size(zero))
	_ = binary.Write(&buf, binary.LittleEndian, samples)
	return buf.Bytes()
}

// LEToPCM converts raw little-endian bytes back to samples. The byte count
// must be a whole number of samples.
func LEToPCM[T Sample](b []byte) ([]T, error) {
	var zero T
	width := binary.Size(zero)
	if len(b)%width != 0 {
		return nil, fmt.Errorf("pcm payload of %d bytes is not a multiple of %d-byte samples", len(b), width)
	}
	out := make([]T, len(b)/width)
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, out); err != nil {
		return nil, fmt.Errorf("read pcm: %w", err)
	}
	return out, nil
}
