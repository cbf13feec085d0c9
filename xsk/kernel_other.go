//go:build !linux

// SPDX-License-Identifier: GPL-3.0-or-later

package xsk

import "syscall"

// AF_XDP only exists on Linux. We keep the Linux numbers so that a
// [Kernel] with custom functions behaves identically everywhere.
const (
	afXDP         = 44
	sockRaw       = 3
	solSocket     = 1
	soNetnsCookie = 71

	errENOPROTOOPT = syscall.ENOPROTOOPT
	errEBADF       = syscall.EBADF
)

func sysSocket(domain, typ, proto int) (int, error) {
	return -1, syscall.EAFNOSUPPORT
}

func sysGetsockoptUint64(fd, level, opt int) (uint64, error) {
	return 0, errENOPROTOOPT
}

func sysClose(fd int) error {
	return syscall.EBADF
}
