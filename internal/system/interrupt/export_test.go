// Released under an MIT license. See LICENSE.

//go:build unix

package interrupt

import "golang.org/x/sys/unix"

func Raise() error {
	return unix.Kill(unix.Getpid(), unix.SIGINT)
}
