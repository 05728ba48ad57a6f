package audio

// FirstChannel returns channel 0 of interleaved samples. It does not
// down-mix; the remaining channels are dropped.
func FirstChannel[T Sample](interleaved []T, channels int) []T {
	if channels <= 1 {
		return interleaved
	}
	n := len(interleaved) / channels
	dst := make([]T, n)
	for i := 0; i < n; i++ {
		dst[i] = interleaved[i*channels]
	}
	return dst
}

// Interleave duplicates mono samples across channels.
func Interleave[T Sample](mono []T, channels int) []T {
	if channels <= 1 {
		return mono
	}
	dst := make([]T, len(mono)*channels)
	for i, v := range mono {
		for c := 0; c < channels; c++ {
			dst[i*channels+c] = v
		}
	}
	return dst
}

// SaturateInt16 clamps v to the valid int16 range.
func SaturateInt16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// FloatToInt16 truncates v toward zero and saturates at the int16 range.
func FloatToInt16(v float64) int16 {
	if v >= 32767 {
		return 32767
	}
	if v <= -32768 {
		return -32768
	}
	return SaturateInt16(int32(v))
}
