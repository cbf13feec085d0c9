// SPDX-License-Identifier: GPL-3.0-or-later

package xsk

import (
	"errors"
	"syscall"
)

// OSError is the error returned when a kernel primitive fails.
//
// Use [errors.Is] with the errno constants in [golang.org/x/sys/unix]
// to inspect the cause, e.g. errors.Is(err, unix.EPERM).
type OSError struct {
	// Op is the failing primitive, e.g. "socket" or "getsockopt".
	Op string

	// Errno is the error code reported by the operating system.
	Errno syscall.Errno
}

var _ error = &OSError{}

// newOSError wraps the error returned by a kernel primitive. Errors that
// do not carry an errno map to EBADF, since the only way to get there is
// a primitive returning a negative handle without an error.
func newOSError(op string, err error) *OSError {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		errno = errEBADF
	}
	return &OSError{Op: op, Errno: errno}
}

// Error implements error.
func (e *OSError) Error() string {
	return "xsk: " + e.Op + ": " + e.Errno.Error()
}

// Unwrap returns the underlying errno.
func (e *OSError) Unwrap() error {
	return e.Errno
}

// ErrClosed is returned when sharing the descriptor of a socket
// that has already been closed.
var ErrClosed = errors.New("xsk: use of closed socket")
