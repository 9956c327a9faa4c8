/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/unidoc/unippt/common"
	"github.com/unidoc/unippt/ppt/core"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeUTF16LE decodes little endian UTF-16 `data`.
func decodeUTF16LE(data []byte) string {
	b, err := utf16le.NewDecoder().Bytes(data)
	if err != nil {
		common.Log.Debug("ERROR: unable to decode UTF-16 text: %v", err)
		return ""
	}
	return string(b)
}

// encodeUTF16LE encodes `text` as little endian UTF-16.
func encodeUTF16LE(text string) []byte {
	b, err := utf16le.NewEncoder().Bytes([]byte(text))
	if err != nil {
		common.Log.Debug("ERROR: unable to encode UTF-16 text: %v", err)
		return nil
	}
	return b
}

// decodeLatin1 decodes the 8 bit text of a TextBytesAtom.
func decodeLatin1(data []byte) string {
	b, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		common.Log.Debug("ERROR: unable to decode 8 bit text: %v", err)
		return ""
	}
	return string(b)
}

// CString is an atom holding a single UTF-16LE string. The record instance identifies its role
// within the parent container.
type CString struct {
	rec *core.Record
}

// NewCString returns a new empty CString atom with the given instance.
func NewCString(instance uint16) *CString {
	return &CString{rec: core.NewAtom(core.RecordTypeCString, instance, nil)}
}

func newCStringFromRecord(rec *core.Record) (*CString, error) {
	if rec == nil || rec.Type != core.RecordTypeCString {
		return nil, errTypeCheck
	}
	return &CString{rec: rec}, nil
}

// Record returns the underlying record.
func (cs *CString) Record() *core.Record {
	return cs.rec
}

// Text returns the string held by `cs`.
func (cs *CString) Text() string {
	return decodeUTF16LE(cs.rec.Data)
}

// SetText replaces the string held by `cs`.
func (cs *CString) SetText(text string) {
	cs.rec.Data = encodeUTF16LE(text)
}
