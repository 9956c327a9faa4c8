/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import "errors"

var (
	errTypeCheck      = errors.New("type check error")
	errRangeCheck     = errors.New("range check error")
	errTooDeep        = errors.New("record nesting too deep")
	errNotContainer   = errors.New("record is not a container")
	errRecordAttached = errors.New("record already has a parent")
)

// ErrNotChild is returned when a reference sibling is nil or not a direct child of the parent.
var ErrNotChild = errors.New("reference record is not a child")

const (
	// HeaderSize is the size of a record header in bytes.
	HeaderSize = 8

	// ContainerVersion is the record version marking a container record.
	ContainerVersion = 0xF

	// maxRecordDepth limits container nesting when parsing.
	maxRecordDepth = 64
)
