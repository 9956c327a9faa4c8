/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"bytes"
	"io"
)

// DecodeFields reads little endian `fields` from the start of the atom payload `data`.
// Each field must be a pointer to one of the types handled by the record reader.
func DecodeFields(data []byte, fields ...interface{}) error {
	r := newByteReader(bytes.NewReader(data))
	err := r.read(fields...)
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// EncodeFields returns the little endian encoding of `fields`.
func EncodeFields(fields ...interface{}) ([]byte, error) {
	var buf bytes.Buffer
	w := newByteWriter(&buf)
	if err := w.write(fields...); err != nil {
		return nil, err
	}
	if err := w.flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
