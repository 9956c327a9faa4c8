/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFields(t *testing.T) {
	data := []byte{
		0x07,       // uint8
		0x34, 0x12, // uint16
		0xFE, 0xFF, // int16
		0x78, 0x56, 0x34, 0x12, // uint32
		0xFF, 0xFF, 0xFF, 0xFF, // int32
		0xDA, 0x0F, // RecordType
	}

	var (
		u8  uint8
		u16 uint16
		i16 int16
		u32 uint32
		i32 int32
		typ RecordType
	)
	require.NoError(t, DecodeFields(data, &u8, &u16, &i16, &u32, &i32, &typ))
	assert.Equal(t, uint8(7), u8)
	assert.Equal(t, uint16(0x1234), u16)
	assert.Equal(t, int16(-2), i16)
	assert.Equal(t, uint32(0x12345678), u32)
	assert.Equal(t, int32(-1), i32)
	assert.Equal(t, RecordTypeHeadersFootersAtom, typ)
}

func TestDecodeFieldsErrors(t *testing.T) {
	testcases := []struct {
		name   string
		data   []byte
		fields []interface{}
		err    error
	}{
		{"empty", nil, []interface{}{new(uint16)}, io.ErrUnexpectedEOF},
		{"truncated", []byte{0x01}, []interface{}{new(uint16)}, io.ErrUnexpectedEOF},
		{"second field missing", []byte{0x01, 0x00}, []interface{}{new(uint16), new(uint8)}, io.ErrUnexpectedEOF},
		{"unsupported", []byte{0x01, 0x00}, []interface{}{new(string)}, errTypeCheck},
	}

	for _, tcase := range testcases {
		t.Run(tcase.name, func(t *testing.T) {
			err := DecodeFields(tcase.data, tcase.fields...)
			assert.Equal(t, tcase.err, err)
		})
	}
}

func TestEncodeFields(t *testing.T) {
	data, err := EncodeFields(int16(-3), uint16(0x0021), uint32(1), RecordTypeCString, []byte{0xAA})
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0xFD, 0xFF,
		0x21, 0x00,
		0x01, 0x00, 0x00, 0x00,
		0xBA, 0x0F,
		0xAA,
	}, data)

	_, err = EncodeFields(uint8(1))
	assert.Equal(t, errTypeCheck, err)
}
