/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unidoc/unippt/common"
	"github.com/unidoc/unippt/ppt/core"
)

func init() {
	common.SetLogger(common.NewConsoleLogger(common.LogLevelInfo))
}

// mustAppend adds `children` to `parent` in order.
func mustAppend(t *testing.T, parent *core.Record, children ...*core.Record) *core.Record {
	t.Helper()
	for _, ch := range children {
		require.NoError(t, parent.AppendChild(ch))
	}
	return parent
}

// newTestDocument returns a Document container with a DocumentAtom, a List anchor and an
// EndDocument atom.
func newTestDocument(t *testing.T) *core.Record {
	return mustAppend(t, core.NewContainer(core.RecordTypeDocument, 0),
		core.NewAtom(core.RecordTypeDocumentAtom, 1, make([]byte, 40)),
		core.NewContainer(core.RecordTypeList, 0),
		core.NewAtom(core.RecordTypeEndDocument, 0, nil),
	)
}

// newTestMaster returns a MainMaster container, tagged with `tag` when not empty.
func newTestMaster(t *testing.T, tag string, shapes ...*core.Record) *core.Record {
	master := core.NewContainer(core.RecordTypeMainMaster, 0)
	mustAppend(t, master, core.NewAtom(core.RecordTypeSlideAtom, 2, make([]byte, 24)))
	if tag != "" {
		name := NewCString(0)
		name.SetText(tag)
		binaryTag := mustAppend(t, core.NewContainer(core.RecordTypeProgBinaryTag, 0),
			name.Record(),
			core.NewAtom(core.RecordTypeBinaryTagData, 0, []byte{0x01, 0x02}),
		)
		mustAppend(t, master, mustAppend(t, core.NewContainer(core.RecordTypeProgTags, 0), binaryTag))
	}
	mustAppend(t, master, newTestDrawing(t, shapes...))
	return master
}

// newTestSheet returns a sheet container of type `typ` holding `shapes` in its drawing.
func newTestSheet(t *testing.T, typ core.RecordType, shapes ...*core.Record) *core.Record {
	return mustAppend(t, core.NewContainer(typ, 0),
		core.NewAtom(core.RecordTypeSlideAtom, 2, make([]byte, 24)),
		newTestDrawing(t, shapes...),
	)
}

// newTestDrawing returns a PPDrawing container with a group holding `shapes`.
func newTestDrawing(t *testing.T, shapes ...*core.Record) *core.Record {
	group := mustAppend(t, core.NewContainer(core.RecordTypeSpgrContainer, 0),
		mustAppend(t, core.NewContainer(core.RecordTypeSpContainer, 0),
			core.NewAtom(core.RecordTypeEscherSpgr, 1, make([]byte, 16)),
			core.NewAtom(core.RecordTypeSp, 0, make([]byte, 8)),
		),
	)
	mustAppend(t, group, shapes...)
	dg := mustAppend(t, core.NewContainer(core.RecordTypeDgContainer, 0),
		core.NewAtom(core.RecordTypeEscherDg, 1, make([]byte, 8)),
		group,
	)
	return mustAppend(t, core.NewContainer(core.RecordTypePPDrawing, 0), dg)
}

// oePlaceholderData returns the payload of an OEPlaceholderAtom for `role`.
func oePlaceholderData(role PlaceholderRole) []byte {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint32(data[0:4], 0xFFFFFFFF)
	data[4] = byte(role)
	return data
}

// newPlaceholderShape returns a shape standing in for `role` and holding `text`.
func newPlaceholderShape(t *testing.T, role PlaceholderRole, text string) *core.Record {
	shape := newEmptyPlaceholderShape(t, role)
	textbox := mustAppend(t, core.NewContainer(core.RecordTypeClientTextbox, 0),
		core.NewAtom(core.RecordTypeTextHeaderAtom, 0, []byte{4, 0, 0, 0}),
		core.NewAtom(core.RecordTypeTextCharsAtom, 0, encodeUTF16LE(text)),
	)
	return mustAppend(t, shape, textbox)
}

// newEmptyPlaceholderShape returns a shape standing in for `role` without any text records.
func newEmptyPlaceholderShape(t *testing.T, role PlaceholderRole) *core.Record {
	clientData := mustAppend(t, core.NewContainer(core.RecordTypeClientData, 0),
		core.NewAtom(core.RecordTypeOEPlaceholderAtom, 0, oePlaceholderData(role)),
	)
	return mustAppend(t, core.NewContainer(core.RecordTypeSpContainer, 0),
		core.NewAtom(core.RecordTypeSp, 2, make([]byte, 8)),
		clientData,
	)
}

// newTestSlideShow returns a slide show made of a document, a master tagged with `tag` and the
// given sheets.
func newTestSlideShow(t *testing.T, tag string, sheets ...*core.Record) *SlideShow {
	records := []*core.Record{newTestDocument(t), newTestMaster(t, tag)}
	records = append(records, sheets...)
	ppt, err := NewSlideShow(records)
	require.NoError(t, err)
	return ppt
}
