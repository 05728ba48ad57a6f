package dtmf

import "errors"

var (
	// ErrUnknownSymbol is returned for characters outside the 30-symbol alphabet.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrInvalidAudioInput is returned when a decode input cannot be read as a sample buffer.
	ErrInvalidAudioInput = errors.New("invalid audio input")
)
