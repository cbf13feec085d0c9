//go:build linux

// SPDX-License-Identifier: GPL-3.0-or-later

package xsk

import (
	"runtime"

	"github.com/vishvananda/netns"
)

// NewInNetns is like [New] but uses [DefaultKernel.NewInNetns].
func NewInNetns(ns netns.NsHandle, iface IfInfo) (*Socket, error) {
	return DefaultKernel.NewInNetns(ns, iface)
}

// NewInNetns creates a socket owning a new AF_XDP descriptor created inside
// the network namespace ns. The calling goroutine's OS thread temporarily
// enters ns and returns to its original namespace before NewInNetns returns,
// so the resolved cookie is the one of ns.
func (k *Kernel) NewInNetns(ns netns.NsHandle, iface IfInfo) (*Socket, error) {
	fd, err := k.newSocketFDInNetns(ns, iface)
	if err != nil {
		return nil, err
	}
	return k.newSocket(iface, fd)
}

func (k *Kernel) newSocketFDInNetns(ns netns.NsHandle, iface IfInfo) (*SocketFD, error) {
	runtime.LockOSThread()

	origin, err := netns.Get()
	if err != nil {
		runtime.UnlockOSThread()
		return nil, newOSError("setns", err)
	}
	defer origin.Close()

	if err := netns.Set(ns); err != nil {
		runtime.UnlockOSThread()
		return nil, newOSError("setns", err)
	}

	fd, err := k.newSocketFD(iface)

	if rerr := netns.Set(origin); rerr != nil {
		// The thread stays locked, hence the runtime discards it
		// instead of reusing it when the goroutine exits.
		if fd != nil {
			_ = fd.release()
		}
		return nil, newOSError("setns", rerr)
	}
	runtime.UnlockOSThread()

	return fd, err
}
