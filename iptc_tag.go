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

import "golang.org/x/exp/slices"

// IptcTag gives access to an IPTC dataset.
type IptcTag struct {
	tagHandle
}

// NewIptcTag returns a detached handle for an IPTC dataset.
// Only the descriptor can be accessed through a detached handle.
func NewIptcTag(key string) (*IptcTag, error) {
	h, err := newDetached(key, Iptc)
	if err != nil {
		return nil, err
	}
	return &IptcTag{h}, nil
}

// Type returns the IPTC type of the dataset, for example "String" or "Date".
func (t *IptcTag) Type() string {
	return t.Descriptor().Type
}

// Title returns a human readable title for the dataset.
func (t *IptcTag) Title() string {
	return t.desc.Label
}

// PhotoshopName returns the name Adobe Photoshop uses for the dataset.
func (t *IptcTag) PhotoshopName() string {
	return t.desc.PhotoshopName
}

// Repeatable reports whether the dataset may occur more than once.
func (t *IptcTag) Repeatable() bool {
	return t.desc.Repeatable
}

// RecordName returns the name of the IPTC record.
func (t *IptcTag) RecordName() string {
	return t.desc.Section
}

// RecordDescription returns a description of the IPTC record.
func (t *IptcTag) RecordDescription() string {
	return t.desc.SectionDescription
}

// RawValues returns all occurrences of the dataset, in store order.
func (t *IptcTag) RawValues() ([]string, error) {
	return t.raw()
}

// SetRawValues replaces all occurrences of the dataset.
func (t *IptcTag) SetRawValues(values []string) error {
	return t.setValue(Array(slices.Clone(values)))
}

// RawValue returns the first occurrence of the dataset.
func (t *IptcTag) RawValue() (string, error) {
	raw, err := t.raw()
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", nil
	}
	return raw[0], nil
}

// SetRawValue replaces all occurrences of the dataset by a single value.
func (t *IptcTag) SetRawValue(s string) error {
	return t.setValue(Text(s))
}

// Value returns the decoded value: an [Array] for repeatable datasets and
// [Text] otherwise.
func (t *IptcTag) Value() (Value, error) {
	return t.value()
}
