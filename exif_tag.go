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

// ExifTag gives access to an EXIF tag.
type ExifTag struct {
	tagHandle
}

// NewExifTag returns a detached handle for an EXIF tag.
// Only the descriptor can be accessed through a detached handle.
func NewExifTag(key string) (*ExifTag, error) {
	h, err := newDetached(key, Exif)
	if err != nil {
		return nil, err
	}
	return &ExifTag{h}, nil
}

// Type returns the TIFF type name of the tag, for example "Rational".
func (t *ExifTag) Type() string {
	return t.Descriptor().Type
}

// Label returns a human readable label for the tag.
func (t *ExifTag) Label() string {
	return t.desc.Label
}

// SectionName returns the name of the section the tag belongs to.
func (t *ExifTag) SectionName() string {
	return t.desc.Section
}

// SectionDescription returns a description of the section the tag belongs to.
func (t *ExifTag) SectionDescription() string {
	return t.desc.SectionDescription
}

// RawValue returns the value of the tag in engine form.  For example,
// rationals are returned as "n/d".
func (t *ExifTag) RawValue() (string, error) {
	v, err := t.value()
	if err != nil {
		return "", err
	}
	return string(v.(Text)), nil
}

// SetRawValue sets the value of the tag.  The value is checked against the
// type of the tag.
func (t *ExifTag) SetRawValue(s string) error {
	return t.setValue(Text(s))
}

// HumanValue returns the value of the tag in human readable form.
func (t *ExifTag) HumanValue() (string, error) {
	raw, err := t.RawValue()
	if err != nil {
		return "", err
	}
	return HumanValue(t.Descriptor(), raw), nil
}
