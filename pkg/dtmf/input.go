package dtmf

import (
	"fmt"

	"github.com/Raikerian/go-turkish-dtmf/pkg/audio"
)

// Input is a decoder input buffer.
//
// Samples holds interleaved PCM as one of []int16, []int32, []float32 or
// []float64. Integer samples are scaled into [-1, 1] by their width; float
// samples are taken as already normalised. Only the first channel is decoded.
type Input struct {
	SampleRate int
	Channels   int
	Samples    any
}

// Len returns the number of samples per channel.
func (in Input) Len() int {
	if in.Channels <= 0 {
		return 0
	}
	return sampleCount(in.Samples) / in.Channels
}

// mono validates in and returns its first channel normalised to [-1, 1].
func (in Input) mono() ([]float64, error) {
	if in.Samples == nil {
		return nil, fmt.Errorf("%w: no sample buffer", ErrInvalidAudioInput)
	}
	if in.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidAudioInput, in.SampleRate)
	}
	if in.Channels <= 0 {
		return nil, fmt.Errorf("%w: channel count %d", ErrInvalidAudioInput, in.Channels)
	}

	n := sampleCount(in.Samples)
	if n < 0 {
		return nil, fmt.Errorf("%w: unsupported sample type %T", ErrInvalidAudioInput, in.Samples)
	}
	if n%in.Channels != 0 {
		return nil, fmt.Errorf("%w: %d samples do not divide into %d channels",
			ErrInvalidAudioInput, n, in.Channels)
	}

	switch s := in.Samples.(type) {
	case []int16:
		return normalize(audio.FirstChannel(s, in.Channels), int16Divisor), nil
	case []int32:
		return normalize(audio.FirstChannel(s, in.Channels), int32Divisor), nil
	case []float32:
		return normalize(audio.FirstChannel(s, in.Channels), 1), nil
	case []float64:
		return normalize(audio.FirstChannel(s, in.Channels), 1), nil
	default:
		return nil, fmt.Errorf("%w: unsupported sample type %T", ErrInvalidAudioInput, in.Samples)
	}
}

// sampleCount returns the length of a supported sample slice, or -1.
func sampleCount(samples any) int {
	switch s := samples.(type) {
	case []int16:
		return len(s)
	case []int32:
		return len(s)
	case []float32:
		return len(s)
	case []float64:
		return len(s)
	}
	return -1
}

func normalize[T audio.Sample](src []T, divisor float64) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v) / divisor
	}
	return out
}
