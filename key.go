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
	"strconv"
	"strings"
)

// Namespace identifies one of the three independent tag domains.
type Namespace int

// These are the supported namespaces.
const (
	Exif Namespace = iota + 1
	Iptc
	Xmp
)

func (ns Namespace) String() string {
	switch ns {
	case Exif:
		return "Exif"
	case Iptc:
		return "Iptc"
	case Xmp:
		return "Xmp"
	default:
		return "Namespace(" + strconv.Itoa(int(ns)) + ")"
	}
}

// Key identifies a tag.
//
// For EXIF keys, Group is the IFD (for example "Image", "Photo" or
// "GPSInfo") and Name is the tag name.  For IPTC keys, Group is the record
// name and Name is the dataset name.  For XMP keys, Group is the schema
// prefix and Name is the property path.
type Key struct {
	Namespace Namespace
	Group     string
	Name      string
}

// String returns the canonical textual form of the key,
// for example "Exif.Photo.DateTimeOriginal".
func (k Key) String() string {
	return k.Namespace.String() + "." + k.Group + "." + k.Name
}

// IsZero reports whether k is the zero key.
func (k Key) IsZero() bool {
	return k.Namespace == 0
}

// MustParseKey is like [ParseKey] but panics if the key is invalid.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// ParseKey parses a key like "Exif.Image.Make", "Iptc.Application2.Keywords"
// or "Xmp.dc.subject".
//
// XMP keys must use a registered schema prefix, see [RegisterNamespace].
// In the standard EXIF IFDs and the named IPTC records, tag names which
// are not in the tag table must be given in hexadecimal form "0xNNNN".
// Other EXIF groups and XMP properties do not need to be known.
func ParseKey(s string) (Key, error) {
	family, rest, ok := strings.Cut(s, ".")
	if !ok {
		return Key{}, keyError(s, "missing group")
	}
	group, name, ok := strings.Cut(rest, ".")
	if !ok {
		return Key{}, keyError(s, "missing tag name")
	}

	switch family {
	case "Exif":
		if !isIdentifier(group) {
			return Key{}, keyError(s, "invalid IFD name")
		}
		key := Key{Namespace: Exif, Group: group, Name: name}
		if isHexTag(name) {
			return key, nil
		}
		if !isIdentifier(name) {
			return Key{}, keyError(s, "invalid tag name")
		}
		r := registry()
		if _, known := r.byKey[key]; !known && len(r.exifGroups[group]) > 0 {
			return Key{}, keyError(s, "unknown tag name")
		}
		return key, nil

	case "Iptc":
		if rec, ok := parseHexTag(group); ok {
			if rec == 0 || rec > 0xFF {
				return Key{}, keyError(s, "invalid record number")
			}
		} else if group != iptcEnvelope && group != iptcApplication2 {
			return Key{}, keyError(s, "invalid record name")
		}
		key := Key{Namespace: Iptc, Group: group, Name: name}
		if id, ok := parseHexTag(name); ok {
			if id > 0xFF {
				return Key{}, keyError(s, "invalid dataset number")
			}
			return key, nil
		}
		if !isIdentifier(name) {
			return Key{}, keyError(s, "invalid dataset name")
		}
		if _, known := registry().byKey[key]; !known {
			return Key{}, keyError(s, "unknown dataset name")
		}
		return key, nil

	case "Xmp":
		if _, ok := NamespaceURI(group); !ok {
			return Key{}, keyError(s, "unknown XMP namespace prefix")
		}
		if !isPropertyPath(name) {
			return Key{}, keyError(s, "invalid property path")
		}
		return Key{Namespace: Xmp, Group: group, Name: name}, nil

	default:
		return Key{}, keyError(s, "unknown namespace")
	}
}

func keyError(key, msg string) error {
	return fmt.Errorf("%w: %q: %s", ErrInvalidKey, key, msg)
}

// isPropertyPath reports whether s is a property name, optionally followed
// by struct fields of the form "/pfx:name".  All field prefixes must be
// registered.
func isPropertyPath(s string) bool {
	parts := strings.Split(s, "/")
	if !IsXMLName(parts[0]) {
		return false
	}
	for _, part := range parts[1:] {
		pfx, local, ok := strings.Cut(part, ":")
		if !ok || !IsXMLName(local) {
			return false
		}
		if _, ok := NamespaceURI(pfx); !ok {
			return false
		}
	}
	return true
}

// isIdentifier reports whether s is a non-empty ASCII identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// isHexTag reports whether s has the form "0xNNNN".
func isHexTag(s string) bool {
	_, ok := parseHexTag(s)
	return ok
}

func parseHexTag(s string) (uint16, bool) {
	if len(s) != 6 || s[:2] != "0x" {
		return 0, false
	}
	v, err := strconv.ParseUint(s[2:], 16, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

func formatHexTag(v uint16) string {
	return fmt.Sprintf("0x%04x", v)
}
