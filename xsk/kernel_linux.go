//go:build linux

// SPDX-License-Identifier: GPL-3.0-or-later

package xsk

import "golang.org/x/sys/unix"

const (
	afXDP         = unix.AF_XDP
	sockRaw       = unix.SOCK_RAW
	solSocket     = unix.SOL_SOCKET
	soNetnsCookie = unix.SO_NETNS_COOKIE

	// errENOPROTOOPT is what getsockopt fails with on kernels
	// older than 5.14, which lack SO_NETNS_COOKIE.
	errENOPROTOOPT = unix.ENOPROTOOPT
	errEBADF       = unix.EBADF
)

func sysSocket(domain, typ, proto int) (int, error) {
	return unix.Socket(domain, typ|unix.SOCK_CLOEXEC, proto)
}

func sysGetsockoptUint64(fd, level, opt int) (uint64, error) {
	return unix.GetsockoptUint64(fd, level, opt)
}

func sysClose(fd int) error {
	return unix.Close(fd)
}
