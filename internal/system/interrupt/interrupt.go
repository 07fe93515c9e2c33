// Released under an MIT license. See LICENSE.

// Package interrupt turns keyboard interrupts into abort requests.
package interrupt

import (
	"os"
	"os/signal"
)

// Notify calls abort each time the process is interrupted, until the
// returned function is called.
func Notify(abort func(reason string)) (stop func()) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, signals...)

	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-c:
				abort("Interrupted.")
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(c)
		close(done)
	}
}
