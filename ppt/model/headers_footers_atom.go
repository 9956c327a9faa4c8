/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/unidoc/unippt/common"
	"github.com/unidoc/unippt/ppt/core"
)

// Flag bits of the HeadersFootersAtom.
const (
	FlagHasDate        uint16 = 0x0001
	FlagHasTodayDate   uint16 = 0x0002
	FlagHasUserDate    uint16 = 0x0004
	FlagHasSlideNumber uint16 = 0x0008
	FlagHasHeader      uint16 = 0x0010
	FlagHasFooter      uint16 = 0x0020
)

// headersFootersAtomLen is the payload size: int16 format id followed by uint16 flags.
const headersFootersAtomLen = 4

// HeadersFootersAtom holds the display flags and the date format id of a headers/footers container.
type HeadersFootersAtom struct {
	rec *core.Record
}

// NewHeadersFootersAtom returns a new atom with all flags cleared and format id 0.
func NewHeadersFootersAtom() *HeadersFootersAtom {
	rec := core.NewAtom(core.RecordTypeHeadersFootersAtom, 0, make([]byte, headersFootersAtomLen))
	return &HeadersFootersAtom{rec: rec}
}

func newHeadersFootersAtomFromRecord(rec *core.Record) (*HeadersFootersAtom, error) {
	if rec == nil || rec.Type != core.RecordTypeHeadersFootersAtom {
		return nil, errTypeCheck
	}
	if len(rec.Data) < headersFootersAtomLen {
		common.Log.Debug("HeadersFootersAtom too short (%d), padding", len(rec.Data))
		data := make([]byte, headersFootersAtomLen)
		copy(data, rec.Data)
		rec.Data = data
	}
	return &HeadersFootersAtom{rec: rec}, nil
}

// Record returns the underlying record.
func (a *HeadersFootersAtom) Record() *core.Record {
	return a.rec
}

// FormatID returns the id of the format used to render the date.
func (a *HeadersFootersAtom) FormatID() int {
	formatID, _ := a.fields()
	return int(formatID)
}

// SetFormatID sets the date format id. The field is 16 bits wide.
func (a *HeadersFootersAtom) SetFormatID(formatID int) {
	_, flags := a.fields()
	a.setFields(int16(formatID), flags)
}

// Flags returns the raw flag bits.
func (a *HeadersFootersAtom) Flags() uint16 {
	_, flags := a.fields()
	return flags
}

// Flag returns true if all bits of `mask` are set.
func (a *HeadersFootersAtom) Flag(mask uint16) bool {
	return a.Flags()&mask == mask
}

// SetFlag sets or clears the bits of `mask`.
func (a *HeadersFootersAtom) SetFlag(mask uint16, on bool) {
	formatID, flags := a.fields()
	if on {
		flags |= mask
	} else {
		flags &^= mask
	}
	a.setFields(formatID, flags)
}

func (a *HeadersFootersAtom) fields() (formatID int16, flags uint16) {
	if err := core.DecodeFields(a.rec.Data, &formatID, &flags); err != nil {
		common.Log.Debug("ERROR: reading HeadersFootersAtom: %v", err)
	}
	return formatID, flags
}

// setFields overwrites the leading fields of the payload. Trailing bytes are kept.
func (a *HeadersFootersAtom) setFields(formatID int16, flags uint16) {
	data, err := core.EncodeFields(formatID, flags)
	if err != nil {
		common.Log.Debug("ERROR: writing HeadersFootersAtom: %v", err)
		return
	}
	copy(a.rec.Data, data)
}
