//go:build unix

// SPDX-License-Identifier: GPL-3.0-or-later

package errclass

import "golang.org/x/sys/unix"

const (
	errEACCES       = unix.EACCES
	errEAFNOSUPPORT = unix.EAFNOSUPPORT
	errEBADF        = unix.EBADF
	errEBUSY        = unix.EBUSY
	errEINVAL       = unix.EINVAL
	errEMFILE       = unix.EMFILE
	errENFILE       = unix.ENFILE
	errENODEV       = unix.ENODEV
	errENOMEM       = unix.ENOMEM
	errENOPROTOOPT  = unix.ENOPROTOOPT
	errEPERM        = unix.EPERM
)
