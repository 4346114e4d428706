package quadpipe

import (
	"io"
	"sync"
)

// Sink serializes writes to a shared writer: the bytes of one Write call are never interleaved with another call's.
// It does no buffering of its own, every call goes straight to the underlying writer.
type Sink struct {
	mu     sync.Mutex
	w      io.Writer
	err    error
	writes int
}

// NewSink wraps w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Write writes p to the underlying writer while holding the sink lock. An empty p is a no-op.
func (s *Sink) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	n, err := s.w.Write(p)
	if err != nil && s.err == nil {
		s.err = err
	}
	return n, err
}

// Err returns the first error returned by the underlying writer.
func (s *Sink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Writes returns the number of non empty writes.
func (s *Sink) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
