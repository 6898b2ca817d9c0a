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

// A Codec converts between the raw occurrences stored by the metadata engine
// and structured values.
type Codec interface {
	// Decode converts the raw occurrences of a tag into a structured value.
	Decode(d Descriptor, raw []string) (Value, error)

	// Encode converts a structured value into raw occurrences.
	// If the shape of v does not fit the tag, an error wrapping
	// [ErrTypeMismatch] is returned.
	Encode(d Descriptor, v Value) ([]string, error)
}

// CodecFor returns the codec for the given namespace.
func CodecFor(ns Namespace) Codec {
	switch ns {
	case Exif:
		return exifCodec{}
	case Iptc:
		return iptcCodec{}
	case Xmp:
		return xmpCodec{}
	default:
		panic("unknown namespace " + ns.String())
	}
}

func shapeError(d Descriptor, v Value) error {
	return fmt.Errorf("%w: %s: cannot store %s value", ErrTypeMismatch, d.Key, shapeName(v))
}

func valueError(d Descriptor, s string) error {
	tp := d.Type
	if tp == "" {
		tp = d.Kind.String()
	}
	return fmt.Errorf("%w: %s: %q is not a valid %s value", ErrTypeMismatch, d.Key, s, tp)
}

func shapeName(v Value) string {
	switch v.(type) {
	case Text:
		return "text"
	case Array:
		return "array"
	case LangAlt:
		return "lang-alt"
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%T", v)
	}
}
