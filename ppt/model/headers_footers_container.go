/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/unidoc/unippt/common"
	"github.com/unidoc/unippt/ppt/core"
)

// HeadersFootersType is the instance of a headers/footers container and tells which kind of sheet
// it applies to.
type HeadersFootersType uint16

// Headers/footers container types. As header option words these are 0x3F and 0x4F.
const (
	SlideHeadersFooters HeadersFootersType = 3
	NotesHeadersFooters HeadersFootersType = 4
)

// CString instances within a headers/footers container.
const (
	userDateAtomInstance = 0
	headerAtomInstance   = 1
	footerAtomInstance   = 2
)

// HeadersFootersContainer holds the header, footer and date settings of one kind of sheet: a
// HeadersFootersAtom and optional CString atoms for the user date, header and footer text.
type HeadersFootersContainer struct {
	rec  *core.Record
	atom *HeadersFootersAtom
}

// NewHeadersFootersContainer returns a detached container of type `hfType` holding a
// HeadersFootersAtom with all flags cleared.
func NewHeadersFootersContainer(hfType HeadersFootersType) *HeadersFootersContainer {
	rec := core.NewContainer(core.RecordTypeHeadersFooters, uint16(hfType))
	atom := NewHeadersFootersAtom()
	if err := rec.AppendChild(atom.rec); err != nil {
		common.Log.Debug("ERROR: %v", err)
	}
	return &HeadersFootersContainer{rec: rec, atom: atom}
}

// newHeadersFootersContainerFromRecord wraps an existing container. A missing HeadersFootersAtom
// is created as the first child.
func newHeadersFootersContainerFromRecord(rec *core.Record) (*HeadersFootersContainer, error) {
	if rec == nil || rec.Type != core.RecordTypeHeadersFooters || !rec.IsContainer() {
		return nil, errTypeCheck
	}

	c := &HeadersFootersContainer{rec: rec}
	if atomRec := rec.FindFirstOfType(core.RecordTypeHeadersFootersAtom); atomRec != nil {
		atom, err := newHeadersFootersAtomFromRecord(atomRec)
		if err != nil {
			return nil, err
		}
		c.atom = atom
		return c, nil
	}

	common.Log.Debug("HeadersFooters container without HeadersFootersAtom, creating one")
	c.atom = NewHeadersFootersAtom()
	var err error
	if children := rec.Children(); len(children) > 0 {
		err = rec.InsertChildBefore(c.atom.rec, children[0])
	} else {
		err = rec.AppendChild(c.atom.rec)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Record returns the underlying container record.
func (c *HeadersFootersContainer) Record() *core.Record {
	return c.rec
}

// Type returns the kind of sheet the container applies to.
func (c *HeadersFootersContainer) Type() HeadersFootersType {
	return HeadersFootersType(c.rec.Instance)
}

// HeadersFootersAtom returns the flags and format atom. It always exists.
func (c *HeadersFootersContainer) HeadersFootersAtom() *HeadersFootersAtom {
	return c.atom
}

// UserDateAtom returns the custom date text atom, or nil.
func (c *HeadersFootersContainer) UserDateAtom() *CString {
	return c.cstring(userDateAtomInstance)
}

// HeaderAtom returns the header text atom, or nil.
func (c *HeadersFootersContainer) HeaderAtom() *CString {
	return c.cstring(headerAtomInstance)
}

// FooterAtom returns the footer text atom, or nil.
func (c *HeadersFootersContainer) FooterAtom() *CString {
	return c.cstring(footerAtomInstance)
}

// AddUserDateAtom returns the custom date text atom, creating it right after the
// HeadersFootersAtom if absent.
func (c *HeadersFootersContainer) AddUserDateAtom() *CString {
	if cs := c.UserDateAtom(); cs != nil {
		return cs
	}
	return c.addCString(userDateAtomInstance, c.atom.rec)
}

// AddHeaderAtom returns the header text atom, creating it after the user date atom (or the
// HeadersFootersAtom) if absent.
func (c *HeadersFootersContainer) AddHeaderAtom() *CString {
	if cs := c.HeaderAtom(); cs != nil {
		return cs
	}
	after := c.atom.rec
	if cs := c.UserDateAtom(); cs != nil {
		after = cs.rec
	}
	return c.addCString(headerAtomInstance, after)
}

// AddFooterAtom returns the footer text atom, creating it after the last of the header, user date
// and HeadersFootersAtom records if absent.
func (c *HeadersFootersContainer) AddFooterAtom() *CString {
	if cs := c.FooterAtom(); cs != nil {
		return cs
	}
	after := c.atom.rec
	if cs := c.HeaderAtom(); cs != nil {
		after = cs.rec
	} else if cs := c.UserDateAtom(); cs != nil {
		after = cs.rec
	}
	return c.addCString(footerAtomInstance, after)
}

func (c *HeadersFootersContainer) addCString(instance uint16, after *core.Record) *CString {
	cs := NewCString(instance)
	if err := c.rec.InsertChildAfter(cs.rec, after); err != nil {
		common.Log.Debug("ERROR: inserting CString %d: %v", instance, err)
		if err = c.rec.AppendChild(cs.rec); err != nil {
			common.Log.Debug("ERROR: appending CString %d: %v", instance, err)
		}
	}
	return cs
}

func (c *HeadersFootersContainer) cstring(instance uint16) *CString {
	for _, ch := range c.rec.Children() {
		if ch.Type == core.RecordTypeCString && ch.Instance == instance {
			return &CString{rec: ch}
		}
	}
	return nil
}
