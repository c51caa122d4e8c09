package output

import (
	"io"
	"sync"
)

// Sink serializes writes to an underlying writer. Each Write call reaches the
// destination in one piece, so blocks written by concurrent scanners never
// interleave.
type Sink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSink wraps w. A *Sink is returned unchanged.
func NewSink(w io.Writer) *Sink {
	if s, ok := w.(*Sink); ok {
		return s
	}
	return &Sink{w: w}
}

// Write implements io.Writer.
func (s *Sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
