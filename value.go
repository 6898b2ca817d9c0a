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

// Value is the structured form of a tag value.
//
// The concrete types are [Text], [Array] and [LangAlt].
type Value interface {
	// IsZero reports whether the value is empty.
	IsZero() bool

	isValue()
}

// Text is a single string value.
type Text string

// IsZero implements the [Value] interface.
func (t Text) IsZero() bool {
	return t == ""
}

func (Text) isValue() {}

// Array is an ordered list of strings.
//
// This is used for XMP bag, seq and alt types and for all occurrences of a
// repeatable IPTC dataset.  Order and duplicates are preserved.
type Array []string

// IsZero implements the [Value] interface.
func (a Array) IsZero() bool {
	return len(a) == 0
}

func (Array) isValue() {}

// LangAlt maps language tags to text, for XMP "Lang Alt" properties.
// The special tag "x-default" marks the default language.
type LangAlt map[string]string

// IsZero implements the [Value] interface.
func (l LangAlt) IsZero() bool {
	return len(l) == 0
}

func (LangAlt) isValue() {}

// DefaultLanguage is the language tag used for the default entry of a
// [LangAlt] value.
const DefaultLanguage = "x-default"

// Languages returns the language tags of l, with "x-default" first and the
// remaining tags in sorted order.
func (l LangAlt) Languages() []string {
	res := make([]string, 0, len(l))
	for lang := range l {
		if lang != DefaultLanguage {
			res = append(res, lang)
		}
	}
	slices.Sort(res)
	if _, ok := l[DefaultLanguage]; ok {
		res = slices.Insert(res, 0, DefaultLanguage)
	}
	return res
}

// Default returns the text for the default language.  If there is no
// "x-default" entry, the entry with the smallest language tag is used.
func (l LangAlt) Default() string {
	langs := l.Languages()
	if len(langs) == 0 {
		return ""
	}
	return l[langs[0]]
}

// cloneValue returns a deep copy of v.
func cloneValue(v Value) Value {
	switch v := v.(type) {
	case Array:
		return Array(slices.Clone([]string(v)))
	case LangAlt:
		res := make(LangAlt, len(v))
		for lang, text := range v {
			res[lang] = text
		}
		return res
	default:
		return v
	}
}
