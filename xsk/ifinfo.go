// SPDX-License-Identifier: GPL-3.0-or-later

package xsk

// InitNetnsCookie is the cookie of the initial network namespace. We
// use it when the kernel does not support SO_NETNS_COOKIE.
const InitNetnsCookie uint64 = 1

// IfCtx identifies the queue of an interface a socket is bound to.
type IfCtx struct {
	// Ifindex is the interface index.
	Ifindex uint32

	// QueueID is the NIC RX/TX queue.
	QueueID uint32

	// NetnsCookie identifies the network namespace of the socket. Zero
	// means the cookie has not been resolved yet.
	NetnsCookie uint64
}

// IfInfo describes the interface a socket is intended for.
//
// IfInfo is a plain value. Sockets keep a private copy, so
// the caller's value is never modified.
type IfInfo struct {
	Ctx  IfCtx
	Name string
}

// NewIfInfo returns an [IfInfo] with an unresolved namespace cookie.
func NewIfInfo(name string, ifindex, queueID uint32) IfInfo {
	return IfInfo{
		Ctx: IfCtx{
			Ifindex: ifindex,
			QueueID: queueID,
		},
		Name: name,
	}
}

// withNetnsCookie returns a copy of info stamped with cookie.
func (info IfInfo) withNetnsCookie(cookie uint64) IfInfo {
	info.Ctx.NetnsCookie = cookie
	return info
}
