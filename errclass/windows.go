//go:build windows

// SPDX-License-Identifier: GPL-3.0-or-later

package errclass

import "golang.org/x/sys/windows"

const (
	errEACCES       = windows.WSAEACCES
	errEAFNOSUPPORT = windows.WSAEAFNOSUPPORT
	errEBADF        = windows.WSAEBADF
	errEBUSY        = windows.ERROR_BUSY
	errEINVAL       = windows.WSAEINVAL
	errEMFILE       = windows.WSAEMFILE
	errENFILE       = windows.ERROR_TOO_MANY_OPEN_FILES
	errENODEV       = windows.ERROR_DEV_NOT_EXIST
	errENOMEM       = windows.ERROR_NOT_ENOUGH_MEMORY
	errENOPROTOOPT  = windows.WSAENOPROTOOPT
	errEPERM        = windows.ERROR_PRIVILEGE_NOT_HELD
)
