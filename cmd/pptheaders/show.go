/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"fmt"
	"io"

	"github.com/unidoc/unippt/ppt/model"
)

// selectHeadersFooters resolves the settings through slide `slide` (1-based) when positive, else
// through the slide show's default sheet.
func selectHeadersFooters(ppt *model.SlideShow, notes bool, slide int) (*model.HeadersFooters, error) {
	if slide <= 0 {
		if notes {
			return ppt.NotesHeadersFooters()
		}
		return ppt.SlideHeadersFooters()
	}

	sheets := ppt.Slides()
	if notes {
		sheets = ppt.Notes()
	}
	if slide > len(sheets) {
		return nil, fmt.Errorf("sheet %d out of range (%d available)", slide, len(sheets))
	}
	return sheets[slide-1].HeadersFooters()
}

// printHeadersFooters writes the mode and the settings of `hf` one per line.
func printHeadersFooters(w io.Writer, hf *model.HeadersFooters) error {
	text := func(s string, ok bool) string {
		if !ok {
			return "<none>"
		}
		return fmt.Sprintf("%q", s)
	}

	lines := []struct {
		name  string
		value interface{}
	}{
		{"mode", hf.FormatMode()},
		{"header", text(hf.HeaderText())},
		{"header visible", hf.IsHeaderVisible()},
		{"footer", text(hf.FooterText())},
		{"footer visible", hf.IsFooterVisible()},
		{"date", text(hf.DateTimeText())},
		{"date visible", hf.IsDateTimeVisible()},
		{"user date visible", hf.IsUserDateVisible()},
		{"slide number visible", hf.IsSlideNumberVisible()},
		{"date format", hf.DateTimeFormat()},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%-22s %v\n", line.name+":", line.value); err != nil {
			return err
		}
	}
	return nil
}
