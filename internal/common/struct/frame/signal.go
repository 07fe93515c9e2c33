// Released under an MIT license. See LICENSE.

package frame

import "sync/atomic"

// Signal is a cooperative abort request.
// It is safe to use from multiple goroutines.
type Signal struct {
	reason atomic.Pointer[string]
}

// Abort requests that evaluations using s stop.
func (s *Signal) Abort(reason string) {
	if reason == "" {
		reason = "Aborted."
	}

	s.reason.Store(&reason)
}

// Aborted returns the reason for an abort request, if there is one.
func (s *Signal) Aborted() (string, bool) {
	p := s.reason.Load()
	if p == nil {
		return "", false
	}

	return *p, true
}

// Reset clears any abort request.
func (s *Signal) Reset() {
	s.reason.Store(nil)
}
