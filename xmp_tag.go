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
	"strings"

	"golang.org/x/exp/slices"
)

// XmpTag gives access to an XMP property.
type XmpTag struct {
	tagHandle
}

// NewXmpTag returns a detached handle for an XMP property.
// Only the descriptor can be accessed through a detached handle.
func NewXmpTag(key string) (*XmpTag, error) {
	h, err := newDetached(key, Xmp)
	if err != nil {
		return nil, err
	}
	return &XmpTag{h}, nil
}

// Type returns the XMP value type of the property, for example "bag Text"
// or "Lang Alt".
func (t *XmpTag) Type() string {
	return t.Descriptor().Type
}

// Exiv2Type returns the type name used by the metadata engine:
// "XmpText", "XmpBag", "XmpSeq", "XmpAlt" or "LangAlt".
func (t *XmpTag) Exiv2Type() string {
	return xmpEngineType(t.Descriptor().Type)
}

// Title returns a human readable title for the property.
func (t *XmpTag) Title() string {
	return t.desc.Label
}

// TextValue returns the value of a simple property.
func (t *XmpTag) TextValue() (string, error) {
	v, err := t.value()
	if err != nil {
		return "", err
	}
	text, ok := v.(Text)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a simple property", ErrTypeMismatch, t.key)
	}
	return string(text), nil
}

// SetTextValue sets the value of a simple property.
func (t *XmpTag) SetTextValue(s string) error {
	return t.setValue(Text(s))
}

// ArrayValue returns the items of an array property, in storage order.
func (t *XmpTag) ArrayValue() ([]string, error) {
	v, err := t.value()
	if err != nil {
		return nil, err
	}
	a, ok := v.(Array)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an array", ErrTypeMismatch, t.key)
	}
	return a, nil
}

// SetArrayValue replaces the items of an array property.
func (t *XmpTag) SetArrayValue(values []string) error {
	return t.setValue(Array(slices.Clone(values)))
}

// LangAltValue returns the languages and texts of a language alternative.
func (t *XmpTag) LangAltValue() (LangAlt, error) {
	v, err := t.value()
	if err != nil {
		return nil, err
	}
	l, ok := v.(LangAlt)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a language alternative", ErrTypeMismatch, t.key)
	}
	return l, nil
}

// SetLangAltValue replaces all languages of a language alternative.
func (t *XmpTag) SetLangAltValue(l LangAlt) error {
	return t.setValue(cloneValue(l))
}

// Value returns the decoded value of the property.
func (t *XmpTag) Value() (Value, error) {
	return t.value()
}

// RawValue returns the value in joined string form.  Array items are
// separated by ", " and language alternatives use the form
// `lang="x-default" text, lang="de" Text`.
func (t *XmpTag) RawValue() (string, error) {
	v, err := t.value()
	if err != nil {
		return "", err
	}
	switch v := v.(type) {
	case Array:
		return strings.Join(v, ", "), nil
	case LangAlt:
		return FormatLangAlt(v), nil
	default:
		return string(v.(Text)), nil
	}
}

// SetRawValue sets the value from its joined string form, see
// [XmpTag.RawValue].
func (t *XmpTag) SetRawValue(s string) error {
	if err := t.checkBound(); err != nil {
		return err
	}
	desc := t.md.descriptor(t.key)
	switch xmpShape(desc) {
	case KindArray:
		var items []string
		if s != "" {
			items = strings.Split(s, ", ")
		}
		return t.setValue(Array(items))
	case KindLangAlt:
		l, err := ParseLangAlt(s)
		if err != nil {
			return fmt.Errorf("%s: %w", t.key, err)
		}
		return t.setValue(l)
	default:
		return t.setValue(Text(s))
	}
}
