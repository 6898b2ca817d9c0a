// seehuhn.de/go/exiv - EXIF, IPTC and XMP image metadata in Go
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package exiv

import "fmt"

// Tag is the common interface of [ExifTag], [IptcTag] and [XmpTag].
type Tag interface {
	// Key returns the key of the tag.
	Key() Key

	// Descriptor returns the static information about the tag.
	Descriptor() Descriptor

	// RawValue returns the value of the tag, in the string form used by the
	// metadata engine.
	RawValue() (string, error)

	// SetRawValue sets the value of the tag from its engine string form.
	SetRawValue(string) error
}

var (
	_ Tag = (*ExifTag)(nil)
	_ Tag = (*IptcTag)(nil)
	_ Tag = (*XmpTag)(nil)
)

// tagHandle binds a key to a metadata store.
//
// A handle with md == nil is detached.  A handle whose generation differs
// from the generation of its store is stale.  Detached and stale handles
// can be used to access the descriptor, but not the value.
type tagHandle struct {
	key  Key
	desc Descriptor
	md   *Metadata
	gen  uint64
}

func newDetached(s string, ns Namespace) (tagHandle, error) {
	key, err := parseKeyIn(s, ns)
	if err != nil {
		return tagHandle{}, err
	}
	key = canonicalKey(key)
	return tagHandle{key: key, desc: Lookup(key)}, nil
}

// Key returns the key of the tag.
func (h *tagHandle) Key() Key {
	return h.key
}

// Descriptor returns the static information about the tag.  For tags which
// are not in the built-in tables, the type recorded by the metadata engine
// is filled in.
func (h *tagHandle) Descriptor() Descriptor {
	if h.IsBound() {
		return h.md.descriptor(h.key)
	}
	return h.desc
}

// Name returns the tag name.
func (h *tagHandle) Name() string {
	return h.desc.Name
}

// Description returns a description of the tag.
func (h *tagHandle) Description() string {
	return h.desc.Description
}

// IsBound reports whether the tag is bound to current metadata.
func (h *tagHandle) IsBound() bool {
	return h.md != nil && h.gen == h.md.gen
}

func (h *tagHandle) checkBound() error {
	if !h.IsBound() {
		return fmt.Errorf("%w: %s", ErrNotBound, h.key)
	}
	return nil
}

// raw returns the raw occurrences of the tag.
func (h *tagHandle) raw() ([]string, error) {
	if err := h.checkBound(); err != nil {
		return nil, err
	}
	raw := h.md.raw(h.key)
	if raw == nil {
		return nil, fmt.Errorf("%w: %s", ErrTagNotFound, h.key)
	}
	return raw, nil
}

// value returns the decoded value of the tag.
func (h *tagHandle) value() (Value, error) {
	raw, err := h.raw()
	if err != nil {
		return nil, err
	}
	return CodecFor(h.key.Namespace).Decode(h.md.descriptor(h.key), raw)
}

// setValue stores a new value.  If the tag has been deleted from the
// metadata in the meantime, it is inserted again.
func (h *tagHandle) setValue(v Value) error {
	if err := h.checkBound(); err != nil {
		return err
	}
	return h.md.SetValue(h.key, v)
}
