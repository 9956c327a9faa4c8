/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/unidoc/unippt/common"
	"github.com/unidoc/unippt/ppt/core"
)

// Document wraps the Document container holding the document wide records.
type Document struct {
	rec *core.Record
}

// Record returns the underlying container record.
func (d *Document) Record() *core.Record {
	return d.rec
}

// ListAnchor returns the List record new headers/footers containers are inserted after, or nil.
func (d *Document) ListAnchor() *core.Record {
	return d.rec.FindFirstOfType(core.RecordTypeList)
}

// HeadersFootersContainers returns the headers/footers containers that are direct children of
// the document.
func (d *Document) HeadersFootersContainers() []*HeadersFootersContainer {
	var containers []*HeadersFootersContainer
	for _, rec := range d.rec.FindAllOfType(core.RecordTypeHeadersFooters) {
		c, err := newHeadersFootersContainerFromRecord(rec)
		if err != nil {
			common.Log.Debug("Skipping headers/footers record: %v", err)
			continue
		}
		containers = append(containers, c)
	}
	return containers
}

// HeadersFootersContainer returns the document level container of type `hfType`, or nil.
// Containers of other types are left untouched.
func (d *Document) HeadersFootersContainer(hfType HeadersFootersType) *HeadersFootersContainer {
	for _, rec := range d.rec.FindAllOfType(core.RecordTypeHeadersFooters) {
		if !rec.IsContainer() || HeadersFootersType(rec.Instance) != hfType {
			continue
		}
		c, err := newHeadersFootersContainerFromRecord(rec)
		if err != nil {
			common.Log.Debug("Skipping headers/footers record: %v", err)
			continue
		}
		return c
	}
	return nil
}

// addHeadersFootersContainer creates a container of type `hfType` and inserts it right after the
// List record.
func (d *Document) addHeadersFootersContainer(hfType HeadersFootersType) (*HeadersFootersContainer, error) {
	anchor := d.ListAnchor()
	if anchor == nil {
		common.Log.Debug("ERROR: no List record in document")
		return nil, ErrSettingsAnchorMissing
	}

	c := NewHeadersFootersContainer(hfType)
	if err := d.rec.InsertChildAfter(c.rec, anchor); err != nil {
		return nil, err
	}
	common.Log.Trace("Created headers/footers container type %d", hfType)
	return c, nil
}
