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

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Selection chooses namespaces for [Metadata.CopyTo].
type Selection uint8

// These are the namespaces which can be selected.
const (
	SelectExif Selection = 1 << iota
	SelectIptc
	SelectXmp

	SelectAll = SelectExif | SelectIptc | SelectXmp
)

// Has reports whether the selection includes the namespace ns.
func (s Selection) Has(ns Namespace) bool {
	switch ns {
	case Exif:
		return s&SelectExif != 0
	case Iptc:
		return s&SelectIptc != 0
	case Xmp:
		return s&SelectXmp != 0
	}
	return false
}

// Metadata holds the EXIF, IPTC and XMP tags of one image.
//
// Tag handles obtained from a Metadata object stay valid until the
// metadata is read again from the image.
type Metadata struct {
	exif []Datum
	iptc []Datum
	xmp  []Datum

	// gen is incremented whenever the stores are replaced.
	gen uint64
}

// NewMetadata returns a new metadata object, holding copies of the given
// datums.
func NewMetadata(exif, iptc, xmp []Datum) (*Metadata, error) {
	m := &Metadata{}
	err := m.reset(exif, iptc, xmp)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// reset replaces the contents of all three stores.  Tag handles bound to
// the previous contents become invalid.
func (m *Metadata) reset(exif, iptc, xmp []Datum) error {
	if err := checkDatums(Exif, exif); err != nil {
		return err
	}
	if err := checkDatums(Iptc, iptc); err != nil {
		return err
	}
	if err := checkDatums(Xmp, xmp); err != nil {
		return err
	}
	m.exif = cloneDatums(exif)
	m.iptc = cloneDatums(iptc)
	m.xmp = cloneDatums(xmp)
	m.gen++
	return nil
}

// store returns the datums of namespace ns, or nil if ns is not a valid
// namespace.
func (m *Metadata) store(ns Namespace) *[]Datum {
	switch ns {
	case Exif:
		return &m.exif
	case Iptc:
		return &m.iptc
	case Xmp:
		return &m.xmp
	default:
		return nil
	}
}

// Datums returns a copy of the raw contents of the store for namespace ns.
// The result is nil if ns is not one of [Exif], [Iptc] and [Xmp].
func (m *Metadata) Datums(ns Namespace) []Datum {
	dd := m.store(ns)
	if dd == nil {
		return nil
	}
	return cloneDatums(*dd)
}

// Keys returns the keys present in the store for namespace ns, in store
// order.  Each key is listed once, even if an IPTC dataset occurs several
// times.
func (m *Metadata) Keys(ns Namespace) []Key {
	if m.store(ns) == nil {
		return nil
	}
	dd := *m.store(ns)
	res := make([]Key, 0, len(dd))
	seen := make(map[Key]bool, len(dd))
	for _, d := range dd {
		if seen[d.Key] {
			continue
		}
		seen[d.Key] = true
		res = append(res, d.Key)
	}
	return res
}

// Has reports whether the given key is present.
func (m *Metadata) Has(key Key) bool {
	return m.find(canonicalKey(key)) >= 0
}

func (m *Metadata) find(key Key) int {
	dd := m.store(key.Namespace)
	if dd == nil {
		return -1
	}
	return slices.IndexFunc(*dd, func(d Datum) bool {
		return d.Key == key
	})
}

// raw returns the raw values stored for key.  The result is nil if the key
// is not present.
func (m *Metadata) raw(key Key) []string {
	if m.store(key.Namespace) == nil {
		return nil
	}
	dd := *m.store(key.Namespace)
	if key.Namespace != Iptc {
		if i := m.find(key); i >= 0 {
			return append([]string{}, dd[i].Values...)
		}
		return nil
	}

	var res []string
	for _, d := range dd {
		if d.Key == key {
			res = append(res, d.Values...)
		}
	}
	return res
}

func (m *Metadata) datumType(key Key) string {
	if i := m.find(key); i >= 0 {
		return (*m.store(key.Namespace))[i].Type
	}
	return ""
}

// descriptor returns the descriptor for key.  For unknown tags, the type
// recorded by the engine is filled in.
func (m *Metadata) descriptor(key Key) Descriptor {
	d := Lookup(key)
	if !d.Known {
		d.Type = m.datumType(key)
	}
	return d
}

// Tag returns a handle for the tag with the given key.
// If the tag is not present, an error wrapping [ErrTagNotFound] is returned.
func (m *Metadata) Tag(key Key) (Tag, error) {
	switch key.Namespace {
	case Exif:
		return m.exifTag(key)
	case Iptc:
		return m.iptcTag(key)
	case Xmp:
		return m.xmpTag(key)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}
}

// ExifTag returns a handle for an EXIF tag.
func (m *Metadata) ExifTag(key string) (*ExifTag, error) {
	k, err := parseKeyIn(key, Exif)
	if err != nil {
		return nil, err
	}
	return m.exifTag(k)
}

// IptcTag returns a handle for an IPTC dataset.
func (m *Metadata) IptcTag(key string) (*IptcTag, error) {
	k, err := parseKeyIn(key, Iptc)
	if err != nil {
		return nil, err
	}
	return m.iptcTag(k)
}

// XmpTag returns a handle for an XMP property.
func (m *Metadata) XmpTag(key string) (*XmpTag, error) {
	k, err := parseKeyIn(key, Xmp)
	if err != nil {
		return nil, err
	}
	return m.xmpTag(k)
}

func (m *Metadata) exifTag(key Key) (*ExifTag, error) {
	h, err := m.bind(key)
	if err != nil {
		return nil, err
	}
	return &ExifTag{h}, nil
}

func (m *Metadata) iptcTag(key Key) (*IptcTag, error) {
	h, err := m.bind(key)
	if err != nil {
		return nil, err
	}
	return &IptcTag{h}, nil
}

func (m *Metadata) xmpTag(key Key) (*XmpTag, error) {
	h, err := m.bind(key)
	if err != nil {
		return nil, err
	}
	return &XmpTag{h}, nil
}

func (m *Metadata) bind(key Key) (tagHandle, error) {
	key = canonicalKey(key)
	if m.find(key) < 0 {
		return tagHandle{}, fmt.Errorf("%w: %s", ErrTagNotFound, key)
	}
	return tagHandle{
		key:  key,
		desc: m.descriptor(key),
		md:   m,
		gen:  m.gen,
	}, nil
}

// Value returns the structured value of a tag.
func (m *Metadata) Value(key Key) (Value, error) {
	if m.store(key.Namespace) == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}
	key = canonicalKey(key)
	raw := m.raw(key)
	if raw == nil {
		return nil, fmt.Errorf("%w: %s", ErrTagNotFound, key)
	}
	return CodecFor(key.Namespace).Decode(m.descriptor(key), raw)
}

// SetValue sets the value of a tag.  If the tag is not present, it is
// appended to the store of its namespace.
//
// For IPTC datasets, existing occurrences are overwritten in place,
// additional values are appended and surplus occurrences are removed.
// Setting an empty [Array] on an IPTC dataset removes all occurrences.
//
// Keys which [ParseKey] would reject are refused with an error wrapping
// [ErrInvalidKey].
func (m *Metadata) SetValue(key Key, v Value) error {
	if m.store(key.Namespace) == nil {
		return fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}
	k, err := ParseKey(key.String())
	if err != nil {
		return err
	}
	if k != key {
		return fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}
	key = canonicalKey(key)
	d := m.descriptor(key)
	raw, err := CodecFor(key.Namespace).Encode(d, v)
	if err != nil {
		return err
	}
	m.setRaw(key, datumTypeFor(d, v), raw)
	return nil
}

// datumTypeFor determines the engine type to record for a new value.
func datumTypeFor(d Descriptor, v Value) string {
	switch d.Key.Namespace {
	case Exif:
		if d.Type == "" {
			return "Ascii"
		}
		return d.Type
	case Iptc:
		if d.Type == "" {
			return "String"
		}
		return d.Type
	default:
		if d.Known {
			return xmpEngineType(d.Type)
		}
		switch v.(type) {
		case LangAlt:
			return XmpLangAlt
		case Array:
			if tp := xmpEngineType(d.Type); tp == XmpSeq || tp == XmpAlt {
				return tp
			}
			return XmpBag
		default:
			return XmpText
		}
	}
}

func (m *Metadata) setRaw(key Key, tp string, raw []string) {
	dd := m.store(key.Namespace)

	if key.Namespace != Iptc {
		if i := m.find(key); i >= 0 {
			(*dd)[i].Type = tp
			(*dd)[i].Values = raw
		} else {
			*dd = append(*dd, Datum{Key: key, Type: tp, Values: raw})
		}
		return
	}

	// IPTC: one datum per occurrence
	res := (*dd)[:0]
	next := 0
	for _, d := range *dd {
		if d.Key != key {
			res = append(res, d)
			continue
		}
		if next < len(raw) {
			d.Type = tp
			d.Values = []string{raw[next]}
			res = append(res, d)
			next++
		}
	}
	for _, s := range raw[next:] {
		res = append(res, Datum{Key: key, Type: tp, Values: []string{s}})
	}
	*dd = res
}

// Delete removes a tag.  For IPTC datasets, all occurrences are removed.
// If the tag is not present, an error wrapping [ErrTagNotFound] is
// returned.
func (m *Metadata) Delete(key Key) error {
	key = canonicalKey(key)
	if m.find(key) < 0 {
		return fmt.Errorf("%w: %s", ErrTagNotFound, key)
	}
	dd := m.store(key.Namespace)
	*dd = slices.DeleteFunc(*dd, func(d Datum) bool {
		return d.Key == key
	})
	return nil
}

// CopyTo copies the selected namespaces into dst.
//
// Tags which are present in m overwrite tags with the same key in dst.
// Tags which are only present in dst are kept.
func (m *Metadata) CopyTo(dst *Metadata, sel Selection) {
	if dst == m {
		return
	}
	for _, ns := range []Namespace{Exif, Iptc, Xmp} {
		if !sel.Has(ns) {
			continue
		}
		for _, key := range m.Keys(ns) {
			dst.setRaw(key, m.datumType(key), m.raw(key))
		}
	}
}

// SetExifTagValue sets the raw value of an EXIF tag.
func (m *Metadata) SetExifTagValue(key, value string) error {
	k, err := parseKeyIn(key, Exif)
	if err != nil {
		return err
	}
	return m.SetValue(k, Text(value))
}

// SetIptcTagValues sets all occurrences of an IPTC dataset.
func (m *Metadata) SetIptcTagValues(key string, values []string) error {
	k, err := parseKeyIn(key, Iptc)
	if err != nil {
		return err
	}
	return m.SetValue(k, Array(values))
}

// SetXmpTagTextValue sets the value of a simple XMP property.
func (m *Metadata) SetXmpTagTextValue(key, value string) error {
	k, err := parseKeyIn(key, Xmp)
	if err != nil {
		return err
	}
	return m.SetValue(k, Text(value))
}

// SetXmpTagArrayValue sets the items of an XMP array.
func (m *Metadata) SetXmpTagArrayValue(key string, values []string) error {
	k, err := parseKeyIn(key, Xmp)
	if err != nil {
		return err
	}
	return m.SetValue(k, Array(values))
}

// SetXmpTagLangAltValue sets all languages of an XMP language alternative.
func (m *Metadata) SetXmpTagLangAltValue(key string, value LangAlt) error {
	k, err := parseKeyIn(key, Xmp)
	if err != nil {
		return err
	}
	return m.SetValue(k, value)
}

func parseKeyIn(s string, ns Namespace) (Key, error) {
	k, err := ParseKey(s)
	if err != nil {
		return Key{}, err
	}
	if k.Namespace != ns {
		return Key{}, keyError(s, "not an "+ns.String()+" key")
	}
	return k, nil
}
