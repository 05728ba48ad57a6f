// Package dtmf encodes text over a 30-symbol Turkish alphabet into dual-tone
// audio and decodes it back.
//
// Each symbol sits on a 5x6 grid. Its row selects a low tone and its column a
// high tone; a symbol is transmitted as one FrameLength block holding the sum
// of both tones. Decoding cuts the signal into frames of the same length,
// measures the eleven candidate tones with the Goertzel algorithm and resolves
// the strongest low/high pair back to a symbol.
//
// ───────────────────────────── pipeline ─────────────────────────────
//
//	text ──▶ Matrix ──▶ GenerateTone ──▶ Quantize ──▶ Signal (int16)
//	                                                        │
//	text ◀── Debouncer ◀── Matrix ◀── GoertzelPower ◀── Hamming ◀┘
//
// All functions are safe for concurrent use.
package dtmf

import (
	"fmt"
	"unicode"
)

// Symbol is one character of the alphabet.
type Symbol = rune

// Space is the symbol in the last grid cell.
const Space Symbol = ' '

const (
	rows = 5
	cols = 6
)

var (
	lowFrequencies  = [rows]float64{697, 770, 852, 941, 1045}
	highFrequencies = [cols]float64{1209, 1336, 1477, 1633, 1790, 1968}

	grid = [rows][cols]Symbol{
		{'A', 'B', 'C', 'Ç', 'D', 'E'},
		{'F', 'G', 'Ğ', 'H', 'I', 'İ'},
		{'J', 'K', 'L', 'M', 'N', 'O'},
		{'Ö', 'P', 'R', 'S', 'Ş', 'T'},
		{'U', 'Ü', 'V', 'Y', 'Z', Space},
	}
)

// FrequencyPair identifies one grid cell by its two tones.
type FrequencyPair struct {
	Row  int
	Col  int
	Low  float64 // Hz
	High float64 // Hz
}

// Matrix is the immutable symbol ↔ frequency-pair table.
type Matrix struct {
	pairs map[Symbol]FrequencyPair
}

var alphabet = newMatrix()

func newMatrix() Matrix {
	m := Matrix{pairs: make(map[Symbol]FrequencyPair, rows*cols)}
	for r, low := range lowFrequencies {
		for c, high := range highFrequencies {
			m.pairs[grid[r][c]] = FrequencyPair{Row: r, Col: c, Low: low, High: high}
		}
	}
	return m
}

// Alphabet returns the process-wide matrix.
func Alphabet() Matrix {
	return alphabet
}

// FrequenciesFor returns the tone pair of s after folding it to upper case.
func (m Matrix) FrequenciesFor(s Symbol) (FrequencyPair, error) {
	p, ok := m.pairs[unicode.ToUpper(s)]
	if !ok {
		return FrequencyPair{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, s)
	}
	return p, nil
}

// SymbolFor returns the symbol at grid cell (row, col). Indices outside the
// grid panic.
func (m Matrix) SymbolFor(row, col int) Symbol {
	return grid[row][col]
}

// SymbolAt resolves a pair by its grid position.
func (m Matrix) SymbolAt(p FrequencyPair) Symbol {
	return m.SymbolFor(p.Row, p.Col)
}

// Contains reports whether s, folded to upper case, is in the alphabet.
func (m Matrix) Contains(s Symbol) bool {
	_, ok := m.pairs[unicode.ToUpper(s)]
	return ok
}

// Symbols lists the alphabet in row-major grid order.
func (m Matrix) Symbols() []Symbol {
	out := make([]Symbol, 0, rows*cols)
	for r := range grid {
		out = append(out, grid[r][:]...)
	}
	return out
}

// LowFrequencies returns a copy of the row tones.
func LowFrequencies() []float64 {
	return append([]float64(nil), lowFrequencies[:]...)
}

// HighFrequencies returns a copy of the column tones.
func HighFrequencies() []float64 {
	return append([]float64(nil), highFrequencies[:]...)
}
