package dtmf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgmax_FirstMaximumWins(t *testing.T) {
	tests := map[string]struct {
		values    []float64
		wantIndex int
		wantValue float64
	}{
		"single":          {values: []float64{3}, wantIndex: 0, wantValue: 3},
		"all_equal":       {values: []float64{0, 0, 0, 0, 0}, wantIndex: 0, wantValue: 0},
		"strict_max":      {values: []float64{1, 9, 2}, wantIndex: 1, wantValue: 9},
		"later_bins_tie":  {values: []float64{1, 2, 7, 3, 7, 4}, wantIndex: 2, wantValue: 7},
		"last_two_tie":    {values: []float64{1, 2, 3, 8, 8}, wantIndex: 3, wantValue: 8},
		"negative_values": {values: []float64{-1e-9, -1e-9, -2e-9}, wantIndex: 0, wantValue: -1e-9},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			idx, v := argmax(tt.values)
			assert.Equal(t, tt.wantIndex, idx)
			assert.Equal(t, tt.wantValue, v)
		})
	}
}

func TestBandPowers_SilentFrameResolvesToFirstBin(t *testing.T) {
	frame := make([]float64, FrameLength)

	low := make([]float64, len(lowFrequencies))
	idx, power := bandPowers(low, frame, lowFrequencies[:], SampleRate)
	assert.Equal(t, 0, idx)
	assert.Zero(t, power)

	high := make([]float64, len(highFrequencies))
	idx, power = bandPowers(high, frame, highFrequencies[:], SampleRate)
	assert.Equal(t, 0, idx)
	assert.Zero(t, power)
}

func TestBandPowers_StrongestBin(t *testing.T) {
	frame := GenerateTone(lowFrequencies[3], highFrequencies[4], FrameLength, SampleRate)

	low := make([]float64, len(lowFrequencies))
	row, _ := bandPowers(low, frame, lowFrequencies[:], SampleRate)
	assert.Equal(t, 3, row)

	high := make([]float64, len(highFrequencies))
	col, _ := bandPowers(high, frame, highFrequencies[:], SampleRate)
	assert.Equal(t, 4, col)
}
