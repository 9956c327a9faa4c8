/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"bytes"
	"io"

	"github.com/unidoc/unippt/common"
)

// Parse reads the record stream from the current position of `rs` to its end and returns the top
// level records.
func Parse(rs io.ReadSeeker) ([]*Record, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	end, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if _, err = rs.Seek(start, io.SeekStart); err != nil {
		return nil, err
	}

	r := newByteReader(rs)
	remaining := end - start

	var records []*Record
	for remaining > 0 {
		rec, size, err := parseRecord(r, remaining, 0)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
		remaining -= size
	}

	common.Log.Trace("Parsed %d top level records (%d bytes)", len(records), end-start)
	return records, nil
}

// ParseBytes parses the record stream in `data`.
func ParseBytes(data []byte) ([]*Record, error) {
	return Parse(bytes.NewReader(data))
}

// parseRecord reads one record and its children from `r`. `limit` is the number of bytes
// available to the record. Returns the record and its serialized size.
func parseRecord(r *byteReader, limit int64, depth int) (*Record, int64, error) {
	if depth > maxRecordDepth {
		return nil, 0, errTooDeep
	}
	if limit < HeaderSize {
		common.Log.Debug("ERROR: %d bytes left at offset %d, need a record header", limit, r.Offset())
		return nil, 0, errRangeCheck
	}

	var h RecordHeader
	if err := h.read(r); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, 0, err
	}

	size := HeaderSize + int64(h.Length)
	if size > limit {
		common.Log.Debug("ERROR: %s length %d exceeds the %d bytes available", h.Type, h.Length, limit-HeaderSize)
		return nil, 0, errRangeCheck
	}

	rec := &Record{
		Version:  h.Version,
		Instance: h.Instance,
		Type:     h.Type,
	}

	if !h.IsContainer() {
		if err := r.readBytes(&rec.Data, int(h.Length)); err != nil {
			return nil, 0, err
		}
		return rec, size, nil
	}

	remaining := int64(h.Length)
	for remaining > 0 {
		child, childSize, err := parseRecord(r, remaining, depth+1)
		if err != nil {
			return nil, 0, err
		}
		child.parent = rec
		rec.children = append(rec.children, child)
		remaining -= childSize
	}

	return rec, size, nil
}

// Write serializes `r` and its children to `w`. Container lengths are computed from the children.
func (r *Record) Write(w io.Writer) error {
	bw := newByteWriter(w)
	if err := r.write(bw); err != nil {
		return err
	}
	return bw.flush()
}

func (r *Record) write(w *byteWriter) error {
	if err := r.Header().write(w); err != nil {
		return err
	}
	if !r.IsContainer() {
		return w.write(r.Data)
	}
	for _, ch := range r.children {
		if err := ch.write(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteRecords serializes `records` in order to `w`.
func WriteRecords(w io.Writer, records []*Record) error {
	bw := newByteWriter(w)
	for _, rec := range records {
		if err := rec.write(bw); err != nil {
			return err
		}
	}
	common.Log.Trace("Wrote %d records (%d bytes)", len(records), bw.len)
	return bw.flush()
}
