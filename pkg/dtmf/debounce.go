package dtmf

// Debouncer suppresses a symbol detected again in the very next frame.
// A silent frame clears it, which lets the same symbol through once more.
//
// The zero value is ready to use. A Debouncer belongs to a single decode and
// must not be shared between goroutines.
//
// Example usage:
//
//	var d Debouncer
//	for _, det := range frames {
//	    if !det.Active {
//	        d.Silence()
//	        continue
//	    }
//	    if d.Detect(det.Symbol) {
//	        out = append(out, det.Symbol)
//	    }
//	}
type Debouncer struct {
	last    Symbol
	hasLast bool
}

// Detect records s as the latest detection and reports whether it should be
// emitted, i.e. whether it differs from the previous frame's detection.
func (d *Debouncer) Detect(s Symbol) bool {
	emit := !d.hasLast || d.last != s
	d.last, d.hasLast = s, true
	return emit
}

// Silence forgets the last detection.
func (d *Debouncer) Silence() {
	d.last, d.hasLast = 0, false
}

// Reset returns the debouncer to its initial state.
func (d *Debouncer) Reset() {
	d.Silence()
}

// Last returns the previous frame's detection, if any.
func (d *Debouncer) Last() (Symbol, bool) {
	return d.last, d.hasLast
}
