/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidoc/unippt/common"
	"github.com/unidoc/unippt/ppt/core"
	"github.com/unidoc/unippt/ppt/model"
)

func TestResolveLogLevel(t *testing.T) {
	testcases := []struct {
		flag, env string
		level     common.LogLevel
		valid     bool
	}{
		{"", "", common.LogLevelError, true},
		{"", "debug", common.LogLevelDebug, true},
		{"trace", "debug", common.LogLevelTrace, true},
		{"WARNING", "", common.LogLevelWarning, true},
		{"loud", "", common.LogLevelInfo, false},
	}

	for _, tcase := range testcases {
		level, err := resolveLogLevel(tcase.flag, tcase.env)
		if !tcase.valid {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tcase.level, level)
	}
}

func newTestSlideShow(t *testing.T) *model.SlideShow {
	doc := core.NewContainer(core.RecordTypeDocument, 0)
	require.NoError(t, doc.AppendChild(core.NewAtom(core.RecordTypeDocumentAtom, 1, make([]byte, 40))))
	require.NoError(t, doc.AppendChild(core.NewContainer(core.RecordTypeList, 0)))
	master := core.NewContainer(core.RecordTypeMainMaster, 0)
	slide := core.NewContainer(core.RecordTypeSlide, 0)

	ppt, err := model.NewSlideShow([]*core.Record{doc, master, slide})
	require.NoError(t, err)
	return ppt
}

func TestSelectHeadersFooters(t *testing.T) {
	ppt := newTestSlideShow(t)

	hf, err := selectHeadersFooters(ppt, false, 0)
	require.NoError(t, err)
	assert.Equal(t, model.SlideHeadersFooters, hf.Container().Type())

	hf, err = selectHeadersFooters(ppt, true, 0)
	require.NoError(t, err)
	assert.Equal(t, model.NotesHeadersFooters, hf.Container().Type())

	hf, err = selectHeadersFooters(ppt, false, 1)
	require.NoError(t, err)
	assert.Equal(t, model.SlideHeadersFooters, hf.Container().Type())

	_, err = selectHeadersFooters(ppt, false, 2)
	assert.Error(t, err)
	_, err = selectHeadersFooters(ppt, true, 1)
	assert.Error(t, err)
}

func TestPrintHeadersFooters(t *testing.T) {
	ppt := newTestSlideShow(t)
	hf, err := ppt.SlideHeadersFooters()
	require.NoError(t, err)
	hf.SetFooterText("Acme")
	hf.SetSlideNumberVisible(true)

	var buf bytes.Buffer
	require.NoError(t, printHeadersFooters(&buf, hf))

	out := buf.String()
	assert.Contains(t, out, "mode:                  legacy\n")
	assert.Contains(t, out, "header:                <none>\n")
	assert.Contains(t, out, "footer:                \"Acme\"\n")
	assert.Contains(t, out, "footer visible:        true\n")
	assert.Contains(t, out, "slide number visible:  true\n")
	assert.Contains(t, out, "date format:           0\n")
}
