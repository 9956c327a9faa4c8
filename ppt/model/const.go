/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "errors"

var (
	// ErrSettingsAnchorMissing is returned when a headers/footers container has to be created but
	// the document has no List record to insert it after.
	ErrSettingsAnchorMissing = errors.New("document has no List record to anchor headers/footers")

	// ErrNoDocumentRecord is returned when a record stream lacks the Document container.
	ErrNoDocumentRecord = errors.New("document record not found")

	// ErrNoMasterSheet is returned when a slide show level operation needs a master sheet.
	ErrNoMasterSheet = errors.New("slide show has no master sheet")

	// ErrStreamNotFound is returned when a compound file has no PowerPoint Document stream.
	ErrStreamNotFound = errors.New("PowerPoint Document stream not found")

	errTypeCheck = errors.New("type check error")
)
