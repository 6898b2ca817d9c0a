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
	"strings"
	"sync"

	"golang.org/x/exp/slices"
)

// ValueKind classifies the values a tag can hold.
type ValueKind int

// These are the supported value kinds.
const (
	KindUnknown ValueKind = iota
	KindText
	KindRational
	KindNumber
	KindDate
	KindBytes
	KindLangAlt
	KindArray
)

func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindRational:
		return "rational"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindBytes:
		return "bytes"
	case KindLangAlt:
		return "lang-alt"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Descriptor holds the static information about a tag.
//
// Descriptors are obtained from [Lookup] and must not be modified.
type Descriptor struct {
	Key  Key
	Kind ValueKind

	// Type is the type name used by the metadata engine, for example
	// "Rational" for EXIF, "String" for IPTC or "bag Text" for XMP.
	Type string

	Name        string
	Label       string // EXIF label, IPTC title or XMP title
	Description string

	// Section is the EXIF section, the IPTC record name or the XMP schema
	// prefix.
	Section            string
	SectionDescription string

	Repeatable    bool   // IPTC only
	PhotoshopName string // IPTC only

	ID     uint16 // EXIF tag number or IPTC dataset number
	Record uint16 // IPTC record number

	// Known is false for tags which are not listed in the built-in tables.
	Known bool
}

type tagRegistry struct {
	byKey  map[Key]*Descriptor
	exifID map[exifIDKey]*Descriptor
	iptcID map[iptcIDKey]*Descriptor

	exifGroups map[string][]*Descriptor
	iptcRecord map[string][]*Descriptor
}

type exifIDKey struct {
	group string
	id    uint16
}

type iptcIDKey struct {
	record, dataset uint16
}

var registry = sync.OnceValue(func() *tagRegistry {
	r := &tagRegistry{
		byKey:      make(map[Key]*Descriptor),
		exifID:     make(map[exifIDKey]*Descriptor),
		iptcID:     make(map[iptcIDKey]*Descriptor),
		exifGroups: make(map[string][]*Descriptor),
		iptcRecord: make(map[string][]*Descriptor),
	}
	for _, d := range exifDescriptors() {
		r.byKey[d.Key] = d
		r.exifID[exifIDKey{d.Key.Group, d.ID}] = d
		r.exifGroups[d.Key.Group] = append(r.exifGroups[d.Key.Group], d)
	}
	for _, d := range iptcDescriptors() {
		r.byKey[d.Key] = d
		r.iptcID[iptcIDKey{d.Record, d.ID}] = d
		r.iptcRecord[d.Key.Group] = append(r.iptcRecord[d.Key.Group], d)
	}
	for _, d := range xmpDescriptors() {
		r.byKey[d.Key] = d
	}
	return r
})

// Lookup returns the descriptor for a tag.
//
// For tags which are not in the built-in tables, a descriptor with
// Kind == KindUnknown and Known == false is returned.  EXIF and IPTC keys
// which use a hexadecimal tag number for a known tag are mapped to the
// descriptor of the named tag.
func Lookup(key Key) Descriptor {
	r := registry()
	if d, ok := r.byKey[key]; ok {
		return *d
	}

	switch key.Namespace {
	case Exif:
		if id, ok := parseHexTag(key.Name); ok {
			if d, ok := r.exifID[exifIDKey{key.Group, id}]; ok {
				return *d
			}
			return Descriptor{Key: key, Name: key.Name, ID: id}
		}
	case Iptc:
		record, ok := iptcRecordNumber(key.Group)
		if !ok {
			break
		}
		if dataset, ok := parseHexTag(key.Name); ok {
			if d, ok := r.iptcID[iptcIDKey{record, dataset}]; ok {
				return *d
			}
			return Descriptor{Key: key, Name: key.Name, ID: dataset, Record: record, Section: key.Group}
		}
		return Descriptor{Key: key, Name: key.Name, Record: record, Section: key.Group}
	case Xmp:
		ns, _ := NamespaceURI(key.Group)
		if name, ok := xmpSchemaName[ns]; ok {
			return Descriptor{Key: key, Name: key.Name, Section: key.Group, SectionDescription: name}
		}
		return Descriptor{Key: key, Name: key.Name, Section: key.Group}
	}
	return Descriptor{Key: key, Name: key.Name}
}

// ExifKeyFor returns the key of the EXIF tag with the given number.
// If the tag is not known, the key uses the hexadecimal form "0xNNNN".
func ExifKeyFor(group string, id uint16) Key {
	if d, ok := registry().exifID[exifIDKey{group, id}]; ok {
		return d.Key
	}
	return Key{Namespace: Exif, Group: group, Name: formatHexTag(id)}
}

// IptcKeyFor returns the key of the IPTC dataset with the given record and
// dataset numbers.
func IptcKeyFor(record, dataset uint16) Key {
	if d, ok := registry().iptcID[iptcIDKey{record, dataset}]; ok {
		return d.Key
	}
	return Key{Namespace: Iptc, Group: iptcRecordName(record), Name: formatHexTag(dataset)}
}

// ExifTags returns the descriptors of all known tags in an EXIF group,
// ordered by tag number.
func ExifTags(group string) []Descriptor {
	return sortedCopy(registry().exifGroups[group])
}

// IptcDatasets returns the descriptors of all known datasets in an IPTC
// record, ordered by dataset number.
func IptcDatasets(record string) []Descriptor {
	return sortedCopy(registry().iptcRecord[record])
}

// XmpProperties returns the descriptors of all known properties of an XMP
// schema, ordered by name.
func XmpProperties(prefix string) []Descriptor {
	var res []Descriptor
	for key, d := range registry().byKey {
		if key.Namespace == Xmp && key.Group == prefix {
			res = append(res, *d)
		}
	}
	slices.SortFunc(res, func(a, b Descriptor) int {
		return strings.Compare(a.Name, b.Name)
	})
	return res
}

func sortedCopy(dd []*Descriptor) []Descriptor {
	res := make([]Descriptor, len(dd))
	for i, d := range dd {
		res[i] = *d
	}
	slices.SortFunc(res, func(a, b Descriptor) int {
		return int(a.ID) - int(b.ID)
	})
	return res
}

// canonicalKey maps hexadecimal EXIF and IPTC keys of known tags to the
// named form.
func canonicalKey(key Key) Key {
	if key.Namespace == Xmp {
		return key
	}
	if _, ok := parseHexTag(key.Name); !ok {
		return key
	}
	if d := Lookup(key); d.Known {
		return d.Key
	}
	return key
}
