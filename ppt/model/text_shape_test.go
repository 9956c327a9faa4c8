/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidoc/unippt/ppt/core"
)

func TestTextShapeText(t *testing.T) {
	testcases := []struct {
		name  string
		runs  []*core.Record
		text  string
		found bool
	}{
		{
			name:  "chars",
			runs:  []*core.Record{core.NewAtom(core.RecordTypeTextCharsAtom, 0, encodeUTF16LE("a\rb\vc"))},
			text:  "a\nb\nc",
			found: true,
		},
		{
			name:  "bytes",
			runs:  []*core.Record{core.NewAtom(core.RecordTypeTextBytesAtom, 0, []byte{'c', 'a', 'f', 0xE9})},
			text:  "café",
			found: true,
		},
		{
			name: "mixed runs",
			runs: []*core.Record{
				core.NewAtom(core.RecordTypeTextBytesAtom, 0, []byte("one")),
				core.NewAtom(core.RecordTypeStyleTextPropAtom, 0, make([]byte, 10)),
				core.NewAtom(core.RecordTypeTextCharsAtom, 0, encodeUTF16LE("two")),
			},
			text:  "one\ntwo",
			found: true,
		},
		{
			name: "no text atoms",
			runs: []*core.Record{core.NewAtom(core.RecordTypeTextHeaderAtom, 0, make([]byte, 4))},
		},
	}

	for _, tcase := range testcases {
		t.Run(tcase.name, func(t *testing.T) {
			textbox := mustAppend(t, core.NewContainer(core.RecordTypeClientTextbox, 0), tcase.runs...)
			rec := mustAppend(t, core.NewContainer(core.RecordTypeSpContainer, 0), textbox)

			shape, ok := newTextShape(rec)
			require.True(t, ok)
			assert.Equal(t, PlaceholderNone, shape.PlaceholderRole())

			text, found := shape.Text()
			assert.Equal(t, tcase.found, found)
			assert.Equal(t, tcase.text, text)
		})
	}
}

func TestTextShapePlaceholderRole(t *testing.T) {
	shape, ok := newTextShape(newEmptyPlaceholderShape(t, PlaceholderMasterFooter))
	require.True(t, ok)
	assert.Equal(t, PlaceholderMasterFooter, shape.PlaceholderRole())
	_, found := shape.Text()
	assert.False(t, found)

	clientData := mustAppend(t, core.NewContainer(core.RecordTypeClientData, 0),
		core.NewAtom(core.RecordTypeRoundTripHFPlaceholder12, 0, []byte{byte(PlaceholderMasterSlideNumber)}),
	)
	rec := mustAppend(t, core.NewContainer(core.RecordTypeSpContainer, 0), clientData)
	shape, ok = newTextShape(rec)
	require.True(t, ok)
	assert.Equal(t, PlaceholderMasterSlideNumber, shape.PlaceholderRole())

	truncated := mustAppend(t, core.NewContainer(core.RecordTypeClientData, 0),
		core.NewAtom(core.RecordTypeOEPlaceholderAtom, 0, []byte{0xFF, 0xFF, 0xFF, 0xFF}),
	)
	rec = mustAppend(t, core.NewContainer(core.RecordTypeSpContainer, 0),
		truncated,
		core.NewContainer(core.RecordTypeClientTextbox, 0),
	)
	shape, ok = newTextShape(rec)
	require.True(t, ok)
	assert.Equal(t, PlaceholderNone, shape.PlaceholderRole())

	plain := mustAppend(t, core.NewContainer(core.RecordTypeSpContainer, 0), core.NewAtom(core.RecordTypeSp, 0, make([]byte, 8)))
	_, ok = newTextShape(plain)
	assert.False(t, ok)
}

func TestSheetPlaceholder(t *testing.T) {
	slide := newTestSheet(t, core.RecordTypeSlide,
		newPlaceholderShape(t, PlaceholderMasterFooter, "first"),
		newPlaceholderShape(t, PlaceholderMasterFooter, "second"),
		newPlaceholderShape(t, PlaceholderMasterHeader, "head"),
	)
	ppt := newTestSlideShow(t, "", slide)
	sheet := ppt.Slides()[0]

	assert.Len(t, sheet.TextShapes(), 3)

	footer := sheet.Placeholder(PlaceholderMasterFooter)
	require.NotNil(t, footer)
	text, _ := footer.Text()
	assert.Equal(t, "first", text)

	assert.Nil(t, sheet.Placeholder(PlaceholderMasterDate))
	assert.Empty(t, ppt.SlideMasters()[0].TextShapes())
}
