package dtmf

import "time"

// Engine constants shared by the encode and decode directions.
const (
	SampleRate     = 44_100                // Hz
	SymbolDuration = 40 * time.Millisecond // one symbol per frame
	FrameLength    = 1764                  // round(SampleRate × SymbolDuration)

	// DefaultPowerThreshold is the minimum Goertzel power both bands must exceed
	// for a frame to count as a tone. Tuned for FrameLength samples of a
	// Hamming-windowed signal normalised to [-1, 1]; recalibrate if either changes.
	DefaultPowerThreshold = 5000.0
)

// Quantization bounds for 16-bit signed PCM.
const (
	int16Scale   = 32767
	int16Divisor = 32768
	int32Divisor = 1 << 31
)
