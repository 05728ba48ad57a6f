package dtmf

// Detection is the decoder's verdict on one frame.
type Detection struct {
	Frame     int     // frame index in the input
	Active    bool    // both bands above threshold
	Symbol    Symbol  // resolved symbol, zero when not Active
	Emitted   bool    // Symbol was appended to the output
	LowPower  float64 // strongest low-band power
	HighPower float64 // strongest high-band power
}

// Decoder turns sample buffers back into symbols. It holds only read-only
// state and is safe for concurrent use.
type Decoder struct {
	threshold float64
	window    []float64
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithPowerThreshold overrides DefaultPowerThreshold.
func WithPowerThreshold(threshold float64) DecoderOption {
	return func(d *Decoder) {
		d.threshold = threshold
	}
}

// NewDecoder creates a Decoder for FrameLength frames.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{
		threshold: DefaultPowerThreshold,
		window:    Hamming(FrameLength),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Threshold returns the presence threshold in use.
func (d *Decoder) Threshold() float64 {
	return d.threshold
}

var defaultDecoder = NewDecoder()

// Decode decodes in with the default decoder.
func Decode(in Input) ([]Symbol, error) {
	return defaultDecoder.Decode(in)
}

// DecodeString decodes in with the default decoder and joins the symbols.
func DecodeString(in Input) (string, error) {
	return defaultDecoder.DecodeString(in)
}

// Decode returns the symbols carried by in, in frame order. Consecutive frames
// resolving to the same symbol yield it once; a silent frame in between
// yields it again.
func (d *Decoder) Decode(in Input) ([]Symbol, error) {
	dets, err := d.DecodeFrames(in)
	if err != nil {
		return nil, err
	}

	var out []Symbol
	for _, det := range dets {
		if det.Emitted {
			out = append(out, det.Symbol)
		}
	}
	return out, nil
}

// DecodeString is Decode joined into a string.
func (d *Decoder) DecodeString(in Input) (string, error) {
	symbols, err := d.Decode(in)
	if err != nil {
		return "", err
	}
	return string(symbols), nil
}

// DecodeFrames returns one Detection per complete frame of in. A trailing
// partial frame is ignored.
func (d *Decoder) DecodeFrames(in Input) ([]Detection, error) {
	samples, err := in.mono()
	if err != nil {
		return nil, err
	}

	var (
		debounce Debouncer
		windowed = make([]float64, FrameLength)
		low      = make([]float64, len(lowFrequencies))
		high     = make([]float64, len(highFrequencies))
		frames   = len(samples) / FrameLength
		dets     = make([]Detection, 0, frames)
	)

	for i := 0; i < frames; i++ {
		chunk := samples[i*FrameLength : (i+1)*FrameLength]
		for j, s := range chunk {
			windowed[j] = s * d.window[j]
		}

		det := d.detect(windowed, in.SampleRate, low, high)
		det.Frame = i
		if det.Active {
			det.Emitted = debounce.Detect(det.Symbol)
		} else {
			debounce.Silence()
		}
		dets = append(dets, det)
	}

	return dets, nil
}

// detect runs the eleven Goertzel filters over one windowed frame.
func (d *Decoder) detect(frame []float64, sampleRate int, low, high []float64) Detection {
	row, lowPower := bandPowers(low, frame, lowFrequencies[:], sampleRate)
	col, highPower := bandPowers(high, frame, highFrequencies[:], sampleRate)

	det := Detection{LowPower: lowPower, HighPower: highPower}
	if lowPower > d.threshold && highPower > d.threshold {
		det.Active = true
		det.Symbol = alphabet.SymbolFor(row, col)
	}
	return det
}
