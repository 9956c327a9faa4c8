/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"strings"

	"github.com/unidoc/unippt/common"
	"github.com/unidoc/unippt/ppt/core"
)

// PlaceholderRole identifies the placeholder a shape stands in for.
type PlaceholderRole uint8

// Placeholder roles as stored in OEPlaceholderAtom and RoundTripHFPlaceholder12 records.
const (
	PlaceholderNone              PlaceholderRole = 0
	PlaceholderMasterTitle       PlaceholderRole = 1
	PlaceholderMasterBody        PlaceholderRole = 2
	PlaceholderMasterCenterTitle PlaceholderRole = 3
	PlaceholderMasterSubTitle    PlaceholderRole = 4
	PlaceholderMasterNotesImage  PlaceholderRole = 5
	PlaceholderMasterNotesBody   PlaceholderRole = 6
	PlaceholderMasterDate        PlaceholderRole = 7
	PlaceholderMasterSlideNumber PlaceholderRole = 8
	PlaceholderMasterFooter      PlaceholderRole = 9
	PlaceholderMasterHeader      PlaceholderRole = 10
)


// TextShape is a drawing shape that carries text or stands in for a placeholder.
type TextShape struct {
	rec *core.Record
}

// newTextShape wraps the SpContainer `rec` if it carries a text box or a placeholder id.
func newTextShape(rec *core.Record) (*TextShape, bool) {
	s := &TextShape{rec: rec}
	if rec.FindFirstOfType(core.RecordTypeClientTextbox) == nil && s.PlaceholderRole() == PlaceholderNone {
		return nil, false
	}
	return s, true
}

// Record returns the underlying SpContainer record.
func (s *TextShape) Record() *core.Record {
	return s.rec
}

// PlaceholderRole returns the role of the shape, or PlaceholderNone. Files saved by later
// versions may carry the role in a RoundTripHFPlaceholder12 record instead of an
// OEPlaceholderAtom.
func (s *TextShape) PlaceholderRole() PlaceholderRole {
	clientData := s.rec.FindFirstOfType(core.RecordTypeClientData)
	if clientData == nil {
		return PlaceholderNone
	}
	var role uint8
	if oep := clientData.FindFirstOfType(core.RecordTypeOEPlaceholderAtom); oep != nil {
		// int32 placement id, then the placeholder id.
		var placementID int32
		if err := core.DecodeFields(oep.Data, &placementID, &role); err != nil {
			common.Log.Debug("ERROR: reading OEPlaceholderAtom: %v", err)
			return PlaceholderNone
		}
		return PlaceholderRole(role)
	}
	if rt := clientData.FindFirstOfType(core.RecordTypeRoundTripHFPlaceholder12); rt != nil {
		if err := core.DecodeFields(rt.Data, &role); err != nil {
			common.Log.Debug("ERROR: reading RoundTripHFPlaceholder12: %v", err)
			return PlaceholderNone
		}
		return PlaceholderRole(role)
	}
	return PlaceholderNone
}

// Text returns the text of the shape with line breaks as "\n". The bool is false when the shape
// has no text records.
func (s *TextShape) Text() (string, bool) {
	textbox := s.rec.FindFirstOfType(core.RecordTypeClientTextbox)
	if textbox == nil {
		return "", false
	}

	var runs []string
	for _, ch := range textbox.Children() {
		switch ch.Type {
		case core.RecordTypeTextCharsAtom:
			runs = append(runs, decodeUTF16LE(ch.Data))
		case core.RecordTypeTextBytesAtom:
			runs = append(runs, decodeLatin1(ch.Data))
		}
	}
	if len(runs) == 0 {
		return "", false
	}

	text := strings.Join(runs, "\n")
	return strings.NewReplacer("\r", "\n", "\v", "\n").Replace(text), true
}
