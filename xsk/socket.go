//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// AF_XDP socket assembly.
//

package xsk

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/rbmk-project/afxdp/errclass"
)

// FDSource is anything owning a [*SocketFD] that may be shared, such as
// a [*Socket] or the UMEM the socket's rings are registered with.
type FDSource interface {
	// SharedFD returns the owned descriptor or nil once closed.
	SharedFD() *SocketFD
}

// Socket is an AF_XDP socket bound, or about to be bound, to one
// queue of one interface.
//
// Construct using [New], [NewShared] or the equivalent [*Kernel] methods.
type Socket struct {
	closeonce sync.Once
	fd        *SocketFD
	info      IfInfo
	mu        sync.Mutex
	closed    bool
}

var _ FDSource = &Socket{}

// New creates a socket with a new descriptor using [DefaultKernel].
func New(iface IfInfo) (*Socket, error) {
	return DefaultKernel.New(iface)
}

// NewShared creates a socket reusing the descriptor of src
// using [DefaultKernel].
func NewShared(iface IfInfo, src FDSource) (*Socket, error) {
	return DefaultKernel.NewShared(iface, src)
}

// New creates a socket owning a new AF_XDP descriptor.
func (k *Kernel) New(iface IfInfo) (*Socket, error) {
	fd, err := k.newSocketFD(iface)
	if err != nil {
		return nil, err
	}
	return k.newSocket(iface, fd)
}

// NewShared creates a socket reusing the descriptor of src, for example
// to bind another queue to an already registered UMEM.
//
// The caller must only pass interfaces consistent with the UMEM bound to
// the descriptor. Sharing one descriptor across unrelated interfaces is
// not detected and breaks traffic routing.
func (k *Kernel) NewShared(iface IfInfo, src FDSource) (*Socket, error) {
	if src == nil {
		return nil, ErrClosed
	}
	fd := src.SharedFD()
	if fd == nil || !fd.acquire() {
		return nil, ErrClosed
	}
	return k.newSocket(iface, fd)
}

// newSocket assembles a socket and takes ownership of one reference to fd,
// which is released again when assembly fails.
func (k *Kernel) newSocket(iface IfInfo, fd *SocketFD) (*Socket, error) {
	cookie, err := k.netnsCookie(iface, fd)
	if err != nil {
		_ = fd.release()
		return nil, err
	}
	sock := &Socket{
		fd:   fd,
		info: iface.withNetnsCookie(cookie),
	}
	return sock, nil
}

// netnsCookie returns the cookie of the namespace fd was created in, or
// [InitNetnsCookie] when the kernel does not support SO_NETNS_COOKIE.
func (k *Kernel) netnsCookie(iface IfInfo, fd *SocketFD) (uint64, error) {
	t0 := k.timeNow()
	if k.Logger != nil {
		k.Logger.Info(
			"netnsCookieStart",
			slog.Int("fd", fd.fd),
			slog.String("ifname", iface.Name),
			slog.Time("t", t0),
		)
	}

	cookie, err := k.getsockoptUint64(fd.fd, solSocket, soNetnsCookie)
	switch {
	case err == nil:
	case errors.Is(err, errENOPROTOOPT):
		cookie, err = InitNetnsCookie, nil
	default:
		cookie, err = 0, newOSError("getsockopt", err)
	}

	if k.Logger != nil {
		k.Logger.Info(
			"netnsCookieDone",
			slog.Uint64("cookie", cookie),
			slog.Any("err", err),
			slog.String("errClass", errclass.New(err)),
			slog.Int("fd", fd.fd),
			slog.String("ifname", iface.Name),
			slog.Time("t0", t0),
			slog.Time("t", k.timeNow()),
		)
	}
	return cookie, err
}

// FD returns the raw socket handle.
func (s *Socket) FD() int {
	return s.fd.FD()
}

// Info returns a copy of the interface description, including
// the resolved namespace cookie.
func (s *Socket) Info() IfInfo {
	return s.info
}

// NetnsCookie returns the resolved namespace cookie.
func (s *Socket) NetnsCookie() uint64 {
	return s.info.Ctx.NetnsCookie
}

// SameNetns reports whether both sockets live in the same network namespace.
//
// Sockets created on kernels without SO_NETNS_COOKIE all report
// [InitNetnsCookie] and thus compare equal.
func (s *Socket) SameNetns(other *Socket) bool {
	return s.NetnsCookie() == other.NetnsCookie()
}

// SharedFD implements [FDSource].
func (s *Socket) SharedFD() *SocketFD {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	return s.fd
}

// Close releases the socket's reference to its descriptor, closing the
// descriptor if no other socket shares it. Calling Close more than once
// is a no-op returning nil.
func (s *Socket) Close() (err error) {
	s.closeonce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		err = s.fd.release()
	})
	return
}
