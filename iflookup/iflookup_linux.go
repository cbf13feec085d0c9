//go:build linux

// SPDX-License-Identifier: GPL-3.0-or-later

package iflookup

import (
	"fmt"

	"github.com/rbmk-project/afxdp/xsk"
	"github.com/vishvananda/netlink"
)

// Resolver looks up network interfaces.
//
// The zero value is ready to use and queries the network namespace of
// the calling thread.
type Resolver struct {
	// Handle is the optional netlink handle to use. Set it with
	// [netlink.NewHandleAt] to look up interfaces in another network
	// namespace. If this field is nil, we use the package-level
	// functions of [netlink].
	Handle *netlink.Handle
}

// DefaultResolver is the default [*Resolver] used by this package.
var DefaultResolver = &Resolver{}

// ByName is like [*Resolver.ByName] but uses [DefaultResolver].
func ByName(name string, queueID uint32) (xsk.IfInfo, error) {
	return DefaultResolver.ByName(name, queueID)
}

// ByIndex is like [*Resolver.ByIndex] but uses [DefaultResolver].
func ByIndex(index int, queueID uint32) (xsk.IfInfo, error) {
	return DefaultResolver.ByIndex(index, queueID)
}

// ByName returns the [xsk.IfInfo] for queueID of the interface called name.
func (r *Resolver) ByName(name string, queueID uint32) (xsk.IfInfo, error) {
	var (
		link netlink.Link
		err  error
	)
	if r.Handle != nil {
		link, err = r.Handle.LinkByName(name)
	} else {
		link, err = netlink.LinkByName(name)
	}
	if err != nil {
		return xsk.IfInfo{}, fmt.Errorf("iflookup: link %q: %w", name, err)
	}
	return ifInfoFromLink(link, queueID), nil
}

// ByIndex returns the [xsk.IfInfo] for queueID of the interface with the
// given index.
func (r *Resolver) ByIndex(index int, queueID uint32) (xsk.IfInfo, error) {
	var (
		link netlink.Link
		err  error
	)
	if r.Handle != nil {
		link, err = r.Handle.LinkByIndex(index)
	} else {
		link, err = netlink.LinkByIndex(index)
	}
	if err != nil {
		return xsk.IfInfo{}, fmt.Errorf("iflookup: link #%d: %w", index, err)
	}
	return ifInfoFromLink(link, queueID), nil
}

func ifInfoFromLink(link netlink.Link, queueID uint32) xsk.IfInfo {
	attrs := link.Attrs()
	return xsk.NewIfInfo(attrs.Name, uint32(attrs.Index), queueID)
}
