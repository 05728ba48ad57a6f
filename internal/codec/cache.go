package codec

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Raikerian/go-turkish-dtmf/pkg/dtmf"
)

// ToneCache holds quantized tone frames keyed by symbol. Every frame of a
// given symbol is identical, so an encode only synthesises each symbol once.
type ToneCache struct {
	*lru.Cache[dtmf.Symbol, []int16]
}

// NewToneCache creates a ToneCache holding at most size symbols.
func NewToneCache(size int) (*ToneCache, error) {
	lruCache, err := lru.New[dtmf.Symbol, []int16](size)
	if err != nil {
		return nil, err
	}

	return &ToneCache{
		Cache: lruCache,
	}, nil
}

// Frame returns the quantized frame for an upper-case alphabet symbol,
// synthesising it on a miss. The returned slice is shared and must not be
// modified. The boolean reports a cache hit.
func (tc *ToneCache) Frame(s dtmf.Symbol) ([]int16, bool, error) {
	if frame, ok := tc.Cache.Get(s); ok {
		return frame, true, nil
	}

	p, err := dtmf.Alphabet().FrequenciesFor(s)
	if err != nil {
		return nil, false, err
	}
	frame := dtmf.Quantize(dtmf.GenerateTone(p.Low, p.High, dtmf.FrameLength, dtmf.SampleRate))
	tc.Cache.Add(s, frame)

	return frame, false, nil
}
