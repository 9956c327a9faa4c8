/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/unidoc/unippt/ppt/core"
)

// SheetKind tells which container a sheet is backed by.
type SheetKind int

// Sheet kinds.
const (
	SheetSlide SheetKind = iota
	SheetNotes
	SheetMaster
)

func (k SheetKind) String() string {
	switch k {
	case SheetSlide:
		return "slide"
	case SheetNotes:
		return "notes"
	case SheetMaster:
		return "master"
	}
	return "unknown"
}

// sheetKindFromType maps a top level record type to its sheet kind.
func sheetKindFromType(t core.RecordType) (SheetKind, bool) {
	switch t {
	case core.RecordTypeSlide:
		return SheetSlide, true
	case core.RecordTypeNotes:
		return SheetNotes, true
	case core.RecordTypeMainMaster:
		return SheetMaster, true
	}
	return 0, false
}

// Sheet is a slide, notes page or master of a slide show.
type Sheet struct {
	kind SheetKind
	rec  *core.Record
	ppt  *SlideShow
}

// Kind returns the kind of the sheet.
func (s *Sheet) Kind() SheetKind {
	return s.kind
}

// Container returns the sheet's container record.
func (s *Sheet) Container() *core.Record {
	return s.rec
}

// SlideShow returns the slide show owning the sheet.
func (s *Sheet) SlideShow() *SlideShow {
	return s.ppt
}

// ProgrammableTag returns the name stored in the sheet's first programmable binary tag, or ""
// when there is none.
func (s *Sheet) ProgrammableTag() string {
	progTags := s.rec.FindFirstOfType(core.RecordTypeProgTags)
	if progTags == nil {
		return ""
	}
	binaryTag := progTags.FindFirstOfType(core.RecordTypeProgBinaryTag)
	if binaryTag == nil {
		return ""
	}
	name, err := newCStringFromRecord(binaryTag.FindFirstOfType(core.RecordTypeCString))
	if err != nil {
		return ""
	}
	return name.Text()
}

// TextShapes returns the text bearing shapes of the sheet's drawing in document order.
func (s *Sheet) TextShapes() []*TextShape {
	drawing := s.rec.FindFirstOfType(core.RecordTypePPDrawing)
	if drawing == nil {
		return nil
	}

	var shapes []*TextShape
	drawing.Walk(func(rec *core.Record, depth int) bool {
		if rec.Type != core.RecordTypeSpContainer {
			return true
		}
		if shape, ok := newTextShape(rec); ok {
			shapes = append(shapes, shape)
		}
		return false
	})
	return shapes
}

// Placeholder returns the first text shape standing in for `role`, or nil.
func (s *Sheet) Placeholder(role PlaceholderRole) *TextShape {
	for _, shape := range s.TextShapes() {
		if shape.PlaceholderRole() == role {
			return shape
		}
	}
	return nil
}

// HeadersFooters returns the header/footer settings of the sheet. Notes use the notes settings,
// slides and masters the slide settings.
func (s *Sheet) HeadersFooters() (*HeadersFooters, error) {
	hfType := SlideHeadersFooters
	if s.kind == SheetNotes {
		hfType = NotesHeadersFooters
	}
	return NewHeadersFooters(s, hfType)
}
