// SPDX-License-Identifier: GPL-3.0-or-later

// Package iflookup resolves network interfaces into [xsk.IfInfo] values
// using rtnetlink. It only works on Linux.
package iflookup
