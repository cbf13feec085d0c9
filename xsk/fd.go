//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// AF_XDP descriptor ownership.
//

package xsk

import (
	"log/slog"
	"sync/atomic"

	"github.com/rbmk-project/afxdp/errclass"
	"github.com/rbmk-project/common/runtimex"
)

// SocketFD owns a single AF_XDP socket handle.
//
// A [*SocketFD] is reference counted: every [*Socket] using it holds one
// reference and the handle is closed when the last reference is released.
// The only way to obtain one is through [*Kernel.New] or, for sharing, the
// SharedFD method of an existing socket or UMEM.
type SocketFD struct {
	fd     int
	kernel *Kernel
	refs   atomic.Int32
}

// newSocketFD creates a new AF_XDP socket with a reference count of one.
func (k *Kernel) newSocketFD(iface IfInfo) (*SocketFD, error) {
	t0 := k.timeNow()
	if k.Logger != nil {
		k.Logger.Info(
			"socketStart",
			slog.String("ifname", iface.Name),
			slog.Uint64("ifindex", uint64(iface.Ctx.Ifindex)),
			slog.Uint64("queueID", uint64(iface.Ctx.QueueID)),
			slog.Time("t", t0),
		)
	}

	fd, err := k.socket(afXDP, sockRaw, 0)
	if err != nil || fd < 0 {
		err = newOSError("socket", err)
		fd = -1
	}

	if k.Logger != nil {
		k.Logger.Info(
			"socketDone",
			slog.Any("err", err),
			slog.String("errClass", errclass.New(err)),
			slog.Int("fd", fd),
			slog.String("ifname", iface.Name),
			slog.Uint64("ifindex", uint64(iface.Ctx.Ifindex)),
			slog.Uint64("queueID", uint64(iface.Ctx.QueueID)),
			slog.Time("t0", t0),
			slog.Time("t", k.timeNow()),
		)
	}

	if err != nil {
		return nil, err
	}
	sfd := &SocketFD{fd: fd, kernel: k}
	sfd.refs.Store(1)
	return sfd, nil
}

// FD returns the raw socket handle.
func (s *SocketFD) FD() int {
	return s.fd
}

// Refs returns the number of live references.
func (s *SocketFD) Refs() int32 {
	return s.refs.Load()
}

// acquire adds a reference unless the handle has already been closed.
func (s *SocketFD) acquire() bool {
	for {
		n := s.refs.Load()
		if n <= 0 {
			return false
		}
		if s.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// release drops a reference and closes the handle when it was the last one.
func (s *SocketFD) release() error {
	n := s.refs.Add(-1)
	runtimex.Assert(n >= 0, "xsk: SocketFD released more times than acquired")
	if n > 0 {
		return nil
	}

	err := s.kernel.close(s.fd)
	if s.kernel.Logger != nil {
		s.kernel.Logger.Info(
			"closeDone",
			slog.Any("err", err),
			slog.String("errClass", errclass.New(err)),
			slog.Int("fd", s.fd),
			slog.Time("t", s.kernel.timeNow()),
		)
	}
	return err
}
