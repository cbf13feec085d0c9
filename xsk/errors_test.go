// SPDX-License-Identifier: GPL-3.0-or-later

package xsk

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSError(t *testing.T) {
	t.Run("wraps an errno", func(t *testing.T) {
		err := newOSError("socket", syscall.EPERM)
		assert.Equal(t, "xsk: socket: "+syscall.EPERM.Error(), err.Error())
		assert.True(t, errors.Is(err, syscall.EPERM))
		assert.False(t, errors.Is(err, syscall.EACCES))
	})

	t.Run("wrapped errno", func(t *testing.T) {
		err := newOSError("getsockopt", fmt.Errorf("context: %w", syscall.ENOMEM))
		assert.Equal(t, syscall.ENOMEM, err.Errno)
	})

	t.Run("no errno", func(t *testing.T) {
		assert.Equal(t, errEBADF, newOSError("socket", nil).Errno)
		assert.Equal(t, errEBADF, newOSError("socket", errors.New("mocked error")).Errno)
	})
}
