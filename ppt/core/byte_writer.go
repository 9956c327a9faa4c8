/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/unidoc/unippt/common"
)

// byteWriter encapsulates io.Writer and provides methods to write little endian binary data as fit
// for record streams. Writes are buffered until flushed.
type byteWriter struct {
	w   io.Writer
	len int64

	buffer bytes.Buffer
}

func newByteWriter(w io.Writer) *byteWriter {
	return &byteWriter{
		w: w,
	}
}

func (w *byteWriter) flush() error {
	b := w.buffer.Bytes()
	_, err := w.w.Write(b)
	if err != nil {
		return err
	}

	w.buffer.Reset()
	return nil
}

// Write a series of values to `w`.
func (w *byteWriter) write(fields ...interface{}) error {
	for _, f := range fields {
		switch t := f.(type) {
		case uint16:
			err := w.writeUint16(t)
			if err != nil {
				return err
			}
		case int16:
			err := w.writeInt16(t)
			if err != nil {
				return err
			}
		case uint32:
			err := w.writeUint32(t)
			if err != nil {
				return err
			}
		case RecordType:
			err := w.writeUint16(uint16(t))
			if err != nil {
				return err
			}
		case []byte:
			n, err := w.buffer.Write(t)
			if err != nil {
				return err
			}
			w.len += int64(n)
		default:
			common.Log.Debug("Write type check error: %T", t)
			return errTypeCheck
		}
	}

	return nil
}

func (w *byteWriter) writeUint16(vals ...uint16) error {
	err := binary.Write(&w.buffer, binary.LittleEndian, vals)
	if err != nil {
		return err
	}
	w.len += 2 * int64(len(vals))
	return nil
}

func (w *byteWriter) writeInt16(vals ...int16) error {
	err := binary.Write(&w.buffer, binary.LittleEndian, vals)
	if err != nil {
		return err
	}
	w.len += 2 * int64(len(vals))
	return nil
}

func (w *byteWriter) writeUint32(val uint32) error {
	err := binary.Write(&w.buffer, binary.LittleEndian, val)
	if err != nil {
		return err
	}
	w.len += 4
	return nil
}
