/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"github.com/unidoc/unippt/common"
	"github.com/unidoc/unippt/ppt/core"
)

// masterDefaultText is the text of master placeholders the user never filled in. It is not shown.
const masterDefaultText = "*"

// HeadersFooters gives access to the header, footer and date settings of a sheet.
//
// In FormatLegacy documents the settings live in a headers/footers container. In FormatPPT12
// documents visibility and text are read from the sheet's placeholder shapes instead, while
// setters keep writing the container.
type HeadersFooters struct {
	container *HeadersFootersContainer
	sheet     *Sheet
	mode      FormatMode
}

// NewHeadersFooters resolves the settings container governing `sheet`:
//  1. the first headers/footers container in the sheet's own records, whatever its type;
//  2. else the document level container of type `hfType`;
//  3. else a new container of type `hfType` inserted right after the document's List record.
//
// ErrSettingsAnchorMissing is returned when a container must be created and there is no List record.
func NewHeadersFooters(sheet *Sheet, hfType HeadersFootersType) (*HeadersFooters, error) {
	ppt := sheet.SlideShow()
	hf := &HeadersFooters{
		sheet: sheet,
		mode:  ppt.FormatMode(),
	}

	container, err := resolveHeadersFootersContainer(sheet, ppt.Document(), hfType)
	if err != nil {
		return nil, err
	}
	hf.container = container
	return hf, nil
}

func resolveHeadersFootersContainer(sheet *Sheet, doc *Document, hfType HeadersFootersType) (*HeadersFootersContainer, error) {
	if rec := sheet.Container().FindFirstDescendantOfType(core.RecordTypeHeadersFooters); rec != nil {
		common.Log.Trace("Using %s level headers/footers container", sheet.Kind())
		return newHeadersFootersContainerFromRecord(rec)
	}
	if c := doc.HeadersFootersContainer(hfType); c != nil {
		return c, nil
	}
	return doc.addHeadersFootersContainer(hfType)
}

// Container returns the resolved settings container.
func (hf *HeadersFooters) Container() *HeadersFootersContainer {
	return hf.container
}

// FormatMode returns the mode the accessors operate in.
func (hf *HeadersFooters) FormatMode() FormatMode {
	return hf.mode
}

// HeaderText returns the header text. The bool is false when no text is set.
func (hf *HeadersFooters) HeaderText() (string, bool) {
	return hf.placeholderText(PlaceholderMasterHeader, hf.container.HeaderAtom())
}

// SetHeaderText makes the header visible and sets its text.
func (hf *HeadersFooters) SetHeaderText(text string) {
	hf.SetHeaderVisible(true)
	hf.container.AddHeaderAtom().SetText(text)
}

// FooterText returns the footer text. The bool is false when no text is set.
func (hf *HeadersFooters) FooterText() (string, bool) {
	return hf.placeholderText(PlaceholderMasterFooter, hf.container.FooterAtom())
}

// SetFooterText makes the footer visible and sets its text.
func (hf *HeadersFooters) SetFooterText(text string) {
	hf.SetFooterVisible(true)
	hf.container.AddFooterAtom().SetText(text)
}

// DateTimeText returns the custom date shown instead of today's date. The bool is false when no
// text is set.
func (hf *HeadersFooters) DateTimeText() (string, bool) {
	return hf.placeholderText(PlaceholderMasterDate, hf.container.UserDateAtom())
}

// SetDateTimeText shows the date, switches it to the custom text and sets that text.
func (hf *HeadersFooters) SetDateTimeText(text string) {
	hf.SetUserDateVisible(true)
	hf.SetDateTimeVisible(true)
	hf.container.AddUserDateAtom().SetText(text)
}

// IsHeaderVisible returns true if the header is displayed.
func (hf *HeadersFooters) IsHeaderVisible() bool {
	return hf.isVisible(FlagHasHeader, PlaceholderMasterHeader)
}

// SetHeaderVisible sets whether the header is displayed.
func (hf *HeadersFooters) SetHeaderVisible(visible bool) {
	hf.setFlag(FlagHasHeader, visible)
}

// IsFooterVisible returns true if the footer is displayed.
func (hf *HeadersFooters) IsFooterVisible() bool {
	return hf.isVisible(FlagHasFooter, PlaceholderMasterFooter)
}

// SetFooterVisible sets whether the footer is displayed.
func (hf *HeadersFooters) SetFooterVisible(visible bool) {
	hf.setFlag(FlagHasFooter, visible)
}

// IsDateTimeVisible returns true if the date is displayed.
func (hf *HeadersFooters) IsDateTimeVisible() bool {
	return hf.isVisible(FlagHasDate, PlaceholderMasterDate)
}

// SetDateTimeVisible sets whether the date is displayed.
func (hf *HeadersFooters) SetDateTimeVisible(visible bool) {
	hf.setFlag(FlagHasDate, visible)
}

// IsUserDateVisible returns true if the custom date text is used instead of today's date.
func (hf *HeadersFooters) IsUserDateVisible() bool {
	return hf.isVisible(FlagHasUserDate, PlaceholderMasterDate)
}

// SetUserDateVisible sets whether the custom date text is used instead of today's date.
func (hf *HeadersFooters) SetUserDateVisible(visible bool) {
	hf.setFlag(FlagHasUserDate, visible)
}

// IsSlideNumberVisible returns true if the slide number is displayed.
func (hf *HeadersFooters) IsSlideNumberVisible() bool {
	return hf.isVisible(FlagHasSlideNumber, PlaceholderMasterSlideNumber)
}

// SetSlideNumberVisible sets whether the slide number is displayed.
func (hf *HeadersFooters) SetSlideNumberVisible(visible bool) {
	hf.setFlag(FlagHasSlideNumber, visible)
}

// DateTimeFormat returns the id of the format used to render the date.
func (hf *HeadersFooters) DateTimeFormat() int {
	return hf.container.HeadersFootersAtom().FormatID()
}

// SetDateTimeFormat sets the id of the format used to render the date.
func (hf *HeadersFooters) SetDateTimeFormat(formatID int) {
	hf.container.HeadersFootersAtom().SetFormatID(formatID)
}

func (hf *HeadersFooters) isVisible(flag uint16, role PlaceholderRole) bool {
	if hf.mode == FormatPPT12 {
		placeholder := hf.sheet.Placeholder(role)
		if placeholder == nil {
			return false
		}
		text, ok := placeholder.Text()
		return ok && text != ""
	}
	return hf.container.HeadersFootersAtom().Flag(flag)
}

func (hf *HeadersFooters) placeholderText(role PlaceholderRole, cs *CString) (string, bool) {
	if hf.mode != FormatPPT12 {
		if cs == nil {
			return "", false
		}
		return cs.Text(), true
	}

	placeholder := hf.sheet.Placeholder(role)
	if placeholder == nil {
		return "", false
	}
	text, ok := placeholder.Text()
	if !ok || text == "" || text == masterDefaultText {
		return "", false
	}
	return text, true
}

func (hf *HeadersFooters) setFlag(flag uint16, on bool) {
	hf.container.HeadersFootersAtom().SetFlag(flag, on)
}
