// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package errclass implements error classification.

The general idea is to classify golang errors to an enum of strings
with names resembling standard Unix error names, so that structured
logs emitted while creating AF_XDP sockets are easy to aggregate.

# Design Principles

1. Preserve original error in `err` in the structured logs.

2. Add the classified error as the `errClass` field.

3. Use [errors.Is] for classification.

4. Follow Unix naming.

5. Map the nil error to an empty string.

6. Delegate anything else to [github.com/rbmk-project/common/errclass].

# Socket Setup Errors

- [EPERM] and [EACCES] when lacking CAP_NET_RAW or CAP_NET_ADMIN

- [EAFNOSUPPORT] when the kernel is built without AF_XDP

- [ENOPROTOOPT] when a socket option is not supported

- [EMFILE], [ENFILE], [ENOMEM] for resource exhaustion

- [EBADF], [EBUSY], [EINVAL], [ENODEV] for misuse of a descriptor or
an interface

The actual system error constants are defined in platform-specific files:

- unix.go for Unix-like systems using x/sys/unix

- windows.go for Windows systems using x/sys/windows

# Fallback

- [EGENERIC] for unclassified errors
*/
package errclass

import (
	"errors"

	"github.com/rbmk-project/common/errclass"
)

const (
	// EACCES is the permission denied error.
	EACCES = "EACCES"

	// EAFNOSUPPORT is the address family not supported error.
	EAFNOSUPPORT = "EAFNOSUPPORT"

	// EBADF is the bad file descriptor error.
	EBADF = "EBADF"

	// EBUSY is the device or resource busy error.
	EBUSY = "EBUSY"

	// EINVAL is the invalid argument error.
	EINVAL = errclass.EINVAL

	// EMFILE is the too many open files error.
	EMFILE = "EMFILE"

	// ENFILE is the too many open files in system error.
	ENFILE = "ENFILE"

	// ENODEV is the no such device error.
	ENODEV = "ENODEV"

	// ENOMEM is the out of memory error.
	ENOMEM = "ENOMEM"

	// ENOPROTOOPT is the protocol not available error.
	ENOPROTOOPT = "ENOPROTOOPT"

	// EPERM is the operation not permitted error.
	EPERM = "EPERM"

	// EGENERIC is the generic, unclassified error.
	EGENERIC = errclass.EGENERIC
)

// errorsIsMap contains the errors we can map with [errors.Is].
var errorsIsMap = map[error]string{
	errEACCES:       EACCES,
	errEAFNOSUPPORT: EAFNOSUPPORT,
	errEBADF:        EBADF,
	errEBUSY:        EBUSY,
	errEINVAL:       EINVAL,
	errEMFILE:       EMFILE,
	errENFILE:       ENFILE,
	errENODEV:       ENODEV,
	errENOMEM:       ENOMEM,
	errENOPROTOOPT:  ENOPROTOOPT,
	errEPERM:        EPERM,
}

// New creates a new error class from the given error.
func New(err error) string {
	if err == nil {
		return ""
	}
	for candidate, class := range errorsIsMap {
		if errors.Is(err, candidate) {
			return class
		}
	}
	return errclass.New(err)
}
