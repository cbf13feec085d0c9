// SPDX-License-Identifier: GPL-3.0-or-later

package xsk

import (
	"errors"
	"slices"
	"sync"
)

// Group collects sockets, typically all the sockets sharing one
// UMEM, so that they can be closed in a single operation.
//
// The zero value is ready to use.
type Group struct {
	// sockets contains the sockets to close.
	sockets []*Socket

	// mu provides mutual exclusion.
	mu sync.Mutex
}

// Add adds a given [*Socket] to the group.
func (g *Group) Add(sock *Socket) {
	g.mu.Lock()
	g.sockets = append(g.sockets, sock)
	g.mu.Unlock()
}

// Len returns the number of sockets in the group.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.sockets)
}

// Close closes all the sockets in the group iterating in backward
// order, so the socket that created the shared descriptor is the one
// closing it when it was added first. The returned error is the join
// of all the errors that occurred when closing sockets.
func (g *Group) Close() error {
	g.mu.Lock()
	sockets := g.sockets
	g.sockets = nil
	g.mu.Unlock()

	var errv []error
	for _, sock := range slices.Backward(sockets) {
		if err := sock.Close(); err != nil {
			errv = append(errv, err)
		}
	}
	return errors.Join(errv...)
}
