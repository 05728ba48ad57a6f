package dtmf

import (
	"strings"
	"time"

	"github.com/Raikerian/go-turkish-dtmf/pkg/audio"
)

// Signal is encoder output: mono 16-bit PCM at SampleRate.
type Signal struct {
	SampleRate int
	Samples    []int16
}

// Duration returns the play time of the signal.
func (s Signal) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(s.Samples)) * time.Second / time.Duration(s.SampleRate)
}

// Input converts the signal into a decoder input.
func (s Signal) Input() Input {
	return Input{SampleRate: s.SampleRate, Channels: 1, Samples: s.Samples}
}

// EncodeOptions tunes EncodeWith.
type EncodeOptions struct {
	// SeparateRepeats inserts one silent frame between identical adjacent
	// symbols so the decoder emits both.
	SeparateRepeats bool
}

// Encode maps text to a quantized dual-tone signal. Characters outside the
// alphabet are skipped.
func Encode(text string) Signal {
	return EncodeWith(text, EncodeOptions{})
}

// EncodeWith is Encode with options.
func EncodeWith(text string, opts EncodeOptions) Signal {
	symbols, frames := EncodeFrames(text)

	size := len(frames) * FrameLength
	if opts.SeparateRepeats {
		size += repeats(symbols) * FrameLength
	}

	out := make([]int16, 0, size)
	for i, f := range frames {
		if opts.SeparateRepeats && i > 0 && symbols[i] == symbols[i-1] {
			out = append(out, Quantize(Silence(FrameLength))...)
		}
		out = append(out, Quantize(f)...)
	}

	return Signal{SampleRate: SampleRate, Samples: out}
}

// EncodeFrames returns the recognised symbols of text, upper-cased, and one
// unquantized tone frame per symbol.
func EncodeFrames(text string) ([]Symbol, []Frame) {
	var (
		symbols []Symbol
		frames  []Frame
	)
	for _, r := range strings.ToUpper(text) {
		p, err := alphabet.FrequenciesFor(r)
		if err != nil {
			continue
		}
		symbols = append(symbols, r)
		frames = append(frames, GenerateTone(p.Low, p.High, FrameLength, SampleRate))
	}
	return symbols, frames
}

// Quantize scales samples by 32767 and truncates them to int16, saturating at
// the int16 range.
func Quantize(f Frame) []int16 {
	out := make([]int16, len(f))
	for i, x := range f {
		out[i] = audio.FloatToInt16(x * int16Scale)
	}
	return out
}

func repeats(symbols []Symbol) int {
	n := 0
	for i := 1; i < len(symbols); i++ {
		if symbols[i] == symbols[i-1] {
			n++
		}
	}
	return n
}
