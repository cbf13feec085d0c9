//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Definition of Kernel.
//

package xsk

import (
	"log/slog"
	"time"
)

// Kernel creates AF_XDP sockets using a set of kernel primitives.
//
// The zero value is ready to use and calls into the operating system.
//
// A [*Kernel] is safe for concurrent use by multiple goroutines as long as
// you don't modify its fields after construction and the functions you
// may set (e.g., SocketFunc) are also safe.
type Kernel struct {
	// CloseFunc is the optional function releasing a socket handle. If
	// this field is nil, we use [unix.Close]. It is called exactly once per
	// handle, when the last reference to a [*SocketFD] is released.
	CloseFunc func(fd int) error

	// GetsockoptUint64Func is the optional function reading a 64-bit socket
	// option. If this field is nil, we use [unix.GetsockoptUint64].
	GetsockoptUint64Func func(fd, level, opt int) (uint64, error)

	// Logger is the optional structured logger for emitting
	// structured diagnostic events. If this field is nil, we
	// will not be emitting structured logs.
	Logger *slog.Logger

	// SocketFunc is the optional function creating a new socket handle.
	// If this field is nil, we use [unix.Socket].
	SocketFunc func(domain, typ, proto int) (int, error)

	// TimeNow is an optional function that returns the current time.
	// If this field is nil, the [time.Now] function will be used.
	TimeNow func() time.Time
}

// DefaultKernel is the default [*Kernel] used by this package.
var DefaultKernel = &Kernel{}

// timeNow is a function that returns the current time.
func (k *Kernel) timeNow() time.Time {
	if k.TimeNow != nil {
		return k.TimeNow()
	}
	return time.Now()
}

func (k *Kernel) socket(domain, typ, proto int) (int, error) {
	if k.SocketFunc != nil {
		return k.SocketFunc(domain, typ, proto)
	}
	return sysSocket(domain, typ, proto)
}

func (k *Kernel) getsockoptUint64(fd, level, opt int) (uint64, error) {
	if k.GetsockoptUint64Func != nil {
		return k.GetsockoptUint64Func(fd, level, opt)
	}
	return sysGetsockoptUint64(fd, level, opt)
}

func (k *Kernel) close(fd int) error {
	if k.CloseFunc != nil {
		return k.CloseFunc(fd)
	}
	return sysClose(fd)
}
