/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"fmt"

	"github.com/unidoc/unippt/common"
)

// RecordHeader is the 8 byte header preceding each record.
// The first word packs the version in its low 4 bits and the instance in the upper 12 bits.
type RecordHeader struct {
	Version  uint8
	Instance uint16
	Type     RecordType
	Length   uint32
}

func (h *RecordHeader) read(r *byteReader) error {
	var options uint16
	err := r.read(&options, &h.Type, &h.Length)
	if err != nil {
		return err
	}
	h.Version = uint8(options & 0x000F)
	h.Instance = options >> 4
	return nil
}

func (h RecordHeader) write(w *byteWriter) error {
	return w.write(h.Options(), h.Type, h.Length)
}

// Options returns the packed version/instance word of the header.
func (h RecordHeader) Options() uint16 {
	return uint16(h.Version&0x0F) | h.Instance<<4
}

// IsContainer returns true if the header announces a container record.
func (h RecordHeader) IsContainer() bool {
	return h.Version == ContainerVersion
}

// Record is a node of the record tree. Containers hold child records, atoms hold raw data.
type Record struct {
	Version  uint8
	Instance uint16
	Type     RecordType

	// Data is the payload of an atom. Unused for containers.
	Data []byte

	children []*Record
	parent   *Record
}

// NewContainer returns a new empty container record of type `t`.
func NewContainer(t RecordType, instance uint16) *Record {
	return &Record{
		Version:  ContainerVersion,
		Instance: instance,
		Type:     t,
	}
}

// NewAtom returns a new atom record of type `t` holding `data`.
func NewAtom(t RecordType, instance uint16, data []byte) *Record {
	return &Record{
		Instance: instance,
		Type:     t,
		Data:     data,
	}
}

// IsContainer returns true if `r` is a container record.
func (r *Record) IsContainer() bool {
	return r.Version == ContainerVersion
}

// Children returns the direct children of `r`. The slice must not be modified.
func (r *Record) Children() []*Record {
	return r.children
}

// Parent returns the container holding `r`, or nil for a top level record.
func (r *Record) Parent() *Record {
	return r.parent
}

// Header returns the header of `r` with the length computed from its current content.
func (r *Record) Header() RecordHeader {
	return RecordHeader{
		Version:  r.Version,
		Instance: r.Instance,
		Type:     r.Type,
		Length:   r.payloadLen(),
	}
}

// Size returns the serialized size of `r` in bytes, header included.
func (r *Record) Size() int64 {
	return HeaderSize + int64(r.payloadLen())
}

func (r *Record) payloadLen() uint32 {
	if !r.IsContainer() {
		return uint32(len(r.Data))
	}
	var n uint32
	for _, ch := range r.children {
		n += uint32(ch.Size())
	}
	return n
}

// IndexOf returns the position of `child` among the children of `r`, or -1.
func (r *Record) IndexOf(child *Record) int {
	for i, ch := range r.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// AppendChild adds `child` as the last child of `r`.
func (r *Record) AppendChild(child *Record) error {
	return r.insertChildAt(child, len(r.children))
}

// InsertChildAfter inserts `child` immediately after `after`, which must be a direct child of `r`.
func (r *Record) InsertChildAfter(child, after *Record) error {
	if after == nil {
		return ErrNotChild
	}
	idx := r.IndexOf(after)
	if idx < 0 {
		common.Log.Debug("ERROR: %s is not a child of %s", after.Type, r.Type)
		return ErrNotChild
	}
	return r.insertChildAt(child, idx+1)
}

// InsertChildBefore inserts `child` immediately before `before`, which must be a direct child of `r`.
func (r *Record) InsertChildBefore(child, before *Record) error {
	if before == nil {
		return ErrNotChild
	}
	idx := r.IndexOf(before)
	if idx < 0 {
		return ErrNotChild
	}
	return r.insertChildAt(child, idx)
}

func (r *Record) insertChildAt(child *Record, idx int) error {
	if !r.IsContainer() {
		return fmt.Errorf("%s: %w", r.Type, errNotContainer)
	}
	if child.parent != nil {
		return errRecordAttached
	}

	r.children = append(r.children, nil)
	copy(r.children[idx+1:], r.children[idx:])
	r.children[idx] = child
	child.parent = r
	return nil
}

// FindFirstOfType returns the first direct child of `r` of type `t`, or nil.
func (r *Record) FindFirstOfType(t RecordType) *Record {
	for _, ch := range r.children {
		if ch.Type == t {
			return ch
		}
	}
	return nil
}

// FindAllOfType returns the direct children of `r` of type `t`.
func (r *Record) FindAllOfType(t RecordType) []*Record {
	var found []*Record
	for _, ch := range r.children {
		if ch.Type == t {
			found = append(found, ch)
		}
	}
	return found
}

// FindFirstDescendantOfType searches the subtree below `r` depth first (pre-order) and returns the
// first record of type `t`, or nil. `r` itself is not considered.
func (r *Record) FindFirstDescendantOfType(t RecordType) *Record {
	for _, ch := range r.children {
		if ch.Type == t {
			return ch
		}
		if found := ch.FindFirstDescendantOfType(t); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits `r` and its descendants depth first. Children of a record are skipped when `fn`
// returns false for it.
func (r *Record) Walk(fn func(rec *Record, depth int) bool) {
	r.walk(fn, 0)
}

func (r *Record) walk(fn func(rec *Record, depth int) bool, depth int) {
	if !fn(r, depth) {
		return
	}
	for _, ch := range r.children {
		ch.walk(fn, depth+1)
	}
}

// String returns a short description of `r`.
func (r *Record) String() string {
	if r.IsContainer() {
		return fmt.Sprintf("%s (container, instance=%d, children=%d, len=%d)",
			r.Type, r.Instance, len(r.children), r.payloadLen())
	}
	return fmt.Sprintf("%s (atom, instance=%d, len=%d)", r.Type, r.Instance, len(r.Data))
}
