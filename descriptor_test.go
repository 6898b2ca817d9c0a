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
	"testing"
)

func TestLookupKnown(t *testing.T) {
	cases := []struct {
		key        string
		kind       ValueKind
		tp         string
		section    string
		repeatable bool
	}{
		{"Exif.Image.Make", KindText, "Ascii", "OtherTags", false},
		{"Exif.Image.Orientation", KindNumber, "Short", "ImageStructure", false},
		{"Exif.Photo.DateTimeOriginal", KindDate, "Ascii", "DateTime", false},
		{"Exif.Photo.ExposureTime", KindRational, "Rational", "CaptureCond", false},
		{"Exif.Photo.ExifVersion", KindBytes, "Undefined", "ExifVersion", false},
		{"Iptc.Application2.Keywords", KindText, "String", "Application2", true},
		{"Iptc.Application2.DateCreated", KindDate, "Date", "Application2", false},
		{"Xmp.dc.subject", KindArray, "bag Text", "dc", false},
		{"Xmp.dc.title", KindLangAlt, "Lang Alt", "dc", false},
	}
	for _, c := range cases {
		d := Lookup(MustParseKey(c.key))
		if !d.Known {
			t.Errorf("%s: not known", c.key)
			continue
		}
		if d.Kind != c.kind || d.Type != c.tp || d.Section != c.section || d.Repeatable != c.repeatable {
			t.Errorf("%s: got %s %q %q %t", c.key, d.Kind, d.Type, d.Section, d.Repeatable)
		}
		if d.Label == "" {
			t.Errorf("%s: missing label", c.key)
		}
		if d.Key.String() != c.key {
			t.Errorf("%s: descriptor has key %s", c.key, d.Key)
		}
	}
}

func TestLookupHex(t *testing.T) {
	// hexadecimal keys of known tags map to the named descriptor
	d := Lookup(MustParseKey("Exif.Image.0x010f"))
	if !d.Known || d.Name != "Make" || d.ID != 0x010f {
		t.Errorf("unexpected descriptor %+v", d)
	}
	d = Lookup(MustParseKey("Iptc.Application2.0x0019"))
	if !d.Known || d.Name != "Keywords" || d.Record != IptcApplication2Record {
		t.Errorf("unexpected descriptor %+v", d)
	}

	d = Lookup(MustParseKey("Exif.Photo.0xfff0"))
	if d.Known || d.Kind != KindUnknown || d.ID != 0xfff0 {
		t.Errorf("unexpected descriptor %+v", d)
	}
	d = Lookup(MustParseKey("Iptc.Envelope.0x00f0"))
	if d.Known || d.ID != 0xf0 || d.Record != IptcEnvelopeRecord {
		t.Errorf("unexpected descriptor %+v", d)
	}
}

func TestLookupUnknownXmp(t *testing.T) {
	d := Lookup(MustParseKey("Xmp.dc.nosuchproperty"))
	if d.Known || d.Kind != KindUnknown {
		t.Errorf("unexpected descriptor %+v", d)
	}
	if d.Section != "dc" || d.SectionDescription == "" {
		t.Errorf("missing schema information: %+v", d)
	}
}

func TestKeyFor(t *testing.T) {
	if k := ExifKeyFor(ExifPhoto, 0x829a); k.String() != "Exif.Photo.ExposureTime" {
		t.Errorf("got %s", k)
	}
	if k := ExifKeyFor(ExifPhoto, 0xfff0); k.String() != "Exif.Photo.0xfff0" {
		t.Errorf("got %s", k)
	}
	if k := IptcKeyFor(2, 25); k.String() != "Iptc.Application2.Keywords" {
		t.Errorf("got %s", k)
	}
	if k := IptcKeyFor(7, 10); k.String() != "Iptc.0x0007.0x000a" {
		t.Errorf("got %s", k)
	}
}

func TestTagLists(t *testing.T) {
	for _, group := range []string{ExifImage, ExifPhoto, ExifGPS, ExifIop} {
		dd := ExifTags(group)
		if len(dd) == 0 {
			t.Errorf("no tags in group %s", group)
		}
		for i := 1; i < len(dd); i++ {
			if dd[i-1].ID >= dd[i].ID {
				t.Errorf("%s: tags not ordered: %s, %s", group, dd[i-1].Key, dd[i].Key)
			}
		}
	}
	for _, record := range []string{"Envelope", "Application2"} {
		if len(IptcDatasets(record)) == 0 {
			t.Errorf("no datasets in record %s", record)
		}
	}
	dd := XmpProperties("dc")
	if len(dd) == 0 {
		t.Fatal("no Dublin Core properties")
	}
	for i := 1; i < len(dd); i++ {
		if dd[i-1].Name >= dd[i].Name {
			t.Errorf("properties not ordered: %s, %s", dd[i-1].Name, dd[i].Name)
		}
	}
}

// TestUniqueIDs checks that no two known tags share a number.
func TestUniqueIDs(t *testing.T) {
	seen := make(map[exifIDKey]string)
	for _, d := range exifDescriptors() {
		k := exifIDKey{d.Key.Group, d.ID}
		if other, dup := seen[k]; dup {
			t.Errorf("%s and %s share an ID", other, d.Key)
		}
		seen[k] = d.Key.String()
	}
	seenIptc := make(map[iptcIDKey]string)
	for _, d := range iptcDescriptors() {
		k := iptcIDKey{d.Record, d.ID}
		if other, dup := seenIptc[k]; dup {
			t.Errorf("%s and %s share an ID", other, d.Key)
		}
		seenIptc[k] = d.Key.String()
	}
}
