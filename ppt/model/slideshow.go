/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"fmt"
	"io"

	"github.com/unidoc/unippt/common"
	"github.com/unidoc/unippt/ppt/core"
)

// FormatMode tells where a document keeps its header/footer visibility and text.
type FormatMode int

const (
	// FormatLegacy documents keep header/footer state in the headers/footers containers.
	FormatLegacy FormatMode = iota

	// FormatPPT12 documents were saved by a later revision that drives visibility and text
	// through placeholder shapes.
	FormatPPT12
)

// ppt12Tag is the programmable tag of the first master in FormatPPT12 documents.
const ppt12Tag = "___PPT12"

func (m FormatMode) String() string {
	if m == FormatPPT12 {
		return "ppt12"
	}
	return "legacy"
}

// SlideShow is a loaded slide document: its top level records with the Document container and
// the sheets found among them.
type SlideShow struct {
	records []*core.Record
	doc     *Document
	masters []*Sheet
	slides  []*Sheet
	notes   []*Sheet

	properties map[string]string

	mode      FormatMode
	modeKnown bool
}

// NewSlideShow builds a slide show from top level `records`. The last Document container is used.
// Edits appended by incremental saves are not resolved.
func NewSlideShow(records []*core.Record) (*SlideShow, error) {
	ppt := &SlideShow{records: records}

	for _, rec := range records {
		if rec.Type == core.RecordTypeDocument && rec.IsContainer() {
			ppt.doc = &Document{rec: rec}
			continue
		}
		kind, ok := sheetKindFromType(rec.Type)
		if !ok || !rec.IsContainer() {
			continue
		}
		sheet := &Sheet{kind: kind, rec: rec, ppt: ppt}
		switch kind {
		case SheetMaster:
			ppt.masters = append(ppt.masters, sheet)
		case SheetSlide:
			ppt.slides = append(ppt.slides, sheet)
		case SheetNotes:
			ppt.notes = append(ppt.notes, sheet)
		}
	}

	if ppt.doc == nil {
		return nil, ErrNoDocumentRecord
	}
	common.Log.Debug("Slide show: %d masters, %d slides, %d notes",
		len(ppt.masters), len(ppt.slides), len(ppt.notes))
	return ppt, nil
}

// Parse reads a slide show from a raw record stream.
func Parse(rs io.ReadSeeker) (*SlideShow, error) {
	records, err := core.Parse(rs)
	if err != nil {
		return nil, fmt.Errorf("parsing record stream: %w", err)
	}
	return NewSlideShow(records)
}

// Records returns the top level records.
func (ppt *SlideShow) Records() []*core.Record {
	return ppt.records
}

// Document returns the Document container.
func (ppt *SlideShow) Document() *Document {
	return ppt.doc
}

// SlideMasters returns the main masters in stream order.
func (ppt *SlideShow) SlideMasters() []*Sheet {
	return ppt.masters
}

// Slides returns the slides in stream order.
func (ppt *SlideShow) Slides() []*Sheet {
	return ppt.slides
}

// Notes returns the notes pages in stream order.
func (ppt *SlideShow) Notes() []*Sheet {
	return ppt.notes
}

// Properties returns the summary information properties read from the compound file, if any.
func (ppt *SlideShow) Properties() map[string]string {
	return ppt.properties
}

// FormatMode returns the format mode, derived once from the programmable tag of the first master.
func (ppt *SlideShow) FormatMode() FormatMode {
	if ppt.modeKnown {
		return ppt.mode
	}
	ppt.mode = FormatLegacy
	if len(ppt.masters) > 0 && ppt.masters[0].ProgrammableTag() == ppt12Tag {
		ppt.mode = FormatPPT12
	}
	ppt.modeKnown = true
	common.Log.Trace("Format mode: %s", ppt.mode)
	return ppt.mode
}

// SlideHeadersFooters returns the slide header/footer settings, resolved through the first master.
func (ppt *SlideShow) SlideHeadersFooters() (*HeadersFooters, error) {
	if len(ppt.masters) == 0 {
		return nil, ErrNoMasterSheet
	}
	return NewHeadersFooters(ppt.masters[0], SlideHeadersFooters)
}

// NotesHeadersFooters returns the notes header/footer settings, resolved through the first notes
// page or, when there are none, the first master.
func (ppt *SlideShow) NotesHeadersFooters() (*HeadersFooters, error) {
	if len(ppt.notes) > 0 {
		return NewHeadersFooters(ppt.notes[0], NotesHeadersFooters)
	}
	if len(ppt.masters) == 0 {
		return nil, ErrNoMasterSheet
	}
	return NewHeadersFooters(ppt.masters[0], NotesHeadersFooters)
}

// Write serializes the record stream to `w`.
func (ppt *SlideShow) Write(w io.Writer) error {
	return core.WriteRecords(w, ppt.records)
}
