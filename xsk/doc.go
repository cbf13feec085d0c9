// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package xsk creates AF_XDP sockets bound to network interfaces.

The package covers socket construction only. Mapping the UMEM, driving
the rings and attaching XDP programs belong to other layers.

# Features

- [New] creates a socket owning a fresh AF_XDP descriptor;

- [NewShared] creates a socket reusing the descriptor of another
socket or UMEM, which is required to bind several queues to one UMEM;

- every socket records the cookie of the network namespace its
descriptor lives in, see [Socket.NetnsCookie].

# Descriptor Ownership

A descriptor is owned by a reference counted [*SocketFD]. Each
[*Socket] holds one reference and [Socket.Close] releases it. The
descriptor is closed once, when the last reference goes away.

# Namespace Cookies

Cookies are read using SO_NETNS_COOKIE. Kernels without support for
this option fail with ENOPROTOOPT, in which case we use [InitNetnsCookie].
Consequently, on such kernels all sockets appear to share a namespace.

# Kernel Primitives

All system calls go through a [*Kernel], whose fields allow replacing
them and enabling structured logging via [log/slog].
*/
package xsk
