/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"errors"
	"io"
	"testing"

	"github.com/richardlehane/mscfb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEntriesReturnsDirectoryErrors(t *testing.T) {
	errCorrupt := errors.New("corrupt directory")
	next := func() (*mscfb.File, error) {
		return nil, errCorrupt
	}

	_, _, err := readEntries(next)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errCorrupt))
	assert.NotEqual(t, ErrStreamNotFound, err)
}

func TestReadEntriesEmptyDirectory(t *testing.T) {
	next := func() (*mscfb.File, error) {
		return nil, io.EOF
	}

	stream, properties, err := readEntries(next)
	require.NoError(t, err)
	assert.Nil(t, stream)
	assert.Empty(t, properties)
}
