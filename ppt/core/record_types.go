/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import "fmt"

// RecordType is the type field of a record header.
type RecordType uint16

// Slide document record types.
const (
	RecordTypeUnknown                  RecordType = 0
	RecordTypeDocument                 RecordType = 1000
	RecordTypeDocumentAtom             RecordType = 1001
	RecordTypeEndDocument              RecordType = 1002
	RecordTypeSlide                    RecordType = 1006
	RecordTypeSlideAtom                RecordType = 1007
	RecordTypeNotes                    RecordType = 1008
	RecordTypeNotesAtom                RecordType = 1009
	RecordTypeEnvironment              RecordType = 1010
	RecordTypeSlidePersistAtom         RecordType = 1011
	RecordTypeMainMaster               RecordType = 1016
	RecordTypeExObjList                RecordType = 1033
	RecordTypePPDrawingGroup           RecordType = 1035
	RecordTypePPDrawing                RecordType = 1036
	RecordTypeList                     RecordType = 2000
	RecordTypeFontCollection           RecordType = 2005
	RecordTypeOEPlaceholderAtom        RecordType = 3011
	RecordTypeTextHeaderAtom           RecordType = 3999
	RecordTypeTextCharsAtom            RecordType = 4000
	RecordTypeStyleTextPropAtom        RecordType = 4001
	RecordTypeTextBytesAtom            RecordType = 4008
	RecordTypeTextSpecInfoAtom         RecordType = 4010
	RecordTypeCString                  RecordType = 4026
	RecordTypeHeadersFooters           RecordType = 4057
	RecordTypeHeadersFootersAtom       RecordType = 4058
	RecordTypeSlideListWithText        RecordType = 4080
	RecordTypeUserEditAtom             RecordType = 4085
	RecordTypeCurrentUserAtom          RecordType = 4086
	RecordTypeRoundTripHFPlaceholder12 RecordType = 4151
	RecordTypeProgTags                 RecordType = 5000
	RecordTypeProgStringTag            RecordType = 5001
	RecordTypeProgBinaryTag            RecordType = 5002
	RecordTypeBinaryTagData            RecordType = 5003
	RecordTypePersistPtrIncremental    RecordType = 6002
)

// Drawing (Escher) record types embedded in PPDrawing containers. They share the record header layout.
const (
	RecordTypeDggContainer   RecordType = 0xF000
	RecordTypeDgContainer    RecordType = 0xF002
	RecordTypeSpgrContainer  RecordType = 0xF003
	RecordTypeSpContainer    RecordType = 0xF004
	RecordTypeSp             RecordType = 0xF00A
	RecordTypeClientTextbox  RecordType = 0xF00D
	RecordTypeClientAnchor   RecordType = 0xF010
	RecordTypeClientData     RecordType = 0xF011
	RecordTypeEscherOpt      RecordType = 0xF00B
	RecordTypeEscherDg       RecordType = 0xF008
	RecordTypeEscherSpgr     RecordType = 0xF009
	RecordTypeEscherChildAnc RecordType = 0xF00F
)

var recordTypeNames = map[RecordType]string{
	RecordTypeUnknown:                  "Unknown",
	RecordTypeDocument:                 "Document",
	RecordTypeDocumentAtom:             "DocumentAtom",
	RecordTypeEndDocument:              "EndDocument",
	RecordTypeSlide:                    "Slide",
	RecordTypeSlideAtom:                "SlideAtom",
	RecordTypeNotes:                    "Notes",
	RecordTypeNotesAtom:                "NotesAtom",
	RecordTypeEnvironment:              "Environment",
	RecordTypeSlidePersistAtom:         "SlidePersistAtom",
	RecordTypeMainMaster:               "MainMaster",
	RecordTypeExObjList:                "ExObjList",
	RecordTypePPDrawingGroup:           "PPDrawingGroup",
	RecordTypePPDrawing:                "PPDrawing",
	RecordTypeList:                     "List",
	RecordTypeFontCollection:           "FontCollection",
	RecordTypeOEPlaceholderAtom:        "OEPlaceholderAtom",
	RecordTypeTextHeaderAtom:           "TextHeaderAtom",
	RecordTypeTextCharsAtom:            "TextCharsAtom",
	RecordTypeStyleTextPropAtom:        "StyleTextPropAtom",
	RecordTypeTextBytesAtom:            "TextBytesAtom",
	RecordTypeTextSpecInfoAtom:         "TextSpecInfoAtom",
	RecordTypeCString:                  "CString",
	RecordTypeHeadersFooters:           "HeadersFooters",
	RecordTypeHeadersFootersAtom:       "HeadersFootersAtom",
	RecordTypeSlideListWithText:        "SlideListWithText",
	RecordTypeUserEditAtom:             "UserEditAtom",
	RecordTypeCurrentUserAtom:          "CurrentUserAtom",
	RecordTypeRoundTripHFPlaceholder12: "RoundTripHFPlaceholder12",
	RecordTypeProgTags:                 "ProgTags",
	RecordTypeProgStringTag:            "ProgStringTag",
	RecordTypeProgBinaryTag:            "ProgBinaryTag",
	RecordTypeBinaryTagData:            "BinaryTagData",
	RecordTypePersistPtrIncremental:    "PersistPtrIncrementalBlock",
	RecordTypeDggContainer:             "DggContainer",
	RecordTypeDgContainer:              "DgContainer",
	RecordTypeSpgrContainer:            "SpgrContainer",
	RecordTypeSpContainer:              "SpContainer",
	RecordTypeSp:                       "Sp",
	RecordTypeClientTextbox:            "ClientTextbox",
	RecordTypeClientAnchor:             "ClientAnchor",
	RecordTypeClientData:               "ClientData",
	RecordTypeEscherOpt:                "Opt",
	RecordTypeEscherDg:                 "Dg",
	RecordTypeEscherSpgr:               "Spgr",
	RecordTypeEscherChildAnc:           "ChildAnchor",
}

// String returns the name of the record type, or its numeric value when unknown.
func (t RecordType) String() string {
	if name, ok := recordTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint16(t))
}
