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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKey(t *testing.T) {
	cases := []struct {
		in   string
		want Key
	}{
		{"Exif.Image.Make", Key{Exif, "Image", "Make"}},
		{"Exif.Photo.DateTimeOriginal", Key{Exif, "Photo", "DateTimeOriginal"}},
		{"Exif.GPSInfo.0x0002", Key{Exif, "GPSInfo", "0x0002"}},
		{"Exif.Canon.ModelID", Key{Exif, "Canon", "ModelID"}},
		{"Exif.Canon.0x0001", Key{Exif, "Canon", "0x0001"}},
		{"Exif.Image.0xfff0", Key{Exif, "Image", "0xfff0"}},
		{"Iptc.Application2.Keywords", Key{Iptc, "Application2", "Keywords"}},
		{"Iptc.Envelope.0x0014", Key{Iptc, "Envelope", "0x0014"}},
		{"Iptc.0x0003.0x0001", Key{Iptc, "0x0003", "0x0001"}},
		{"Xmp.dc.subject", Key{Xmp, "dc", "subject"}},
		{"Xmp.iptc.CreatorContactInfo/iptc:CiAdrCity", Key{Xmp, "iptc", "CreatorContactInfo/iptc:CiAdrCity"}},
		{"Xmp.xmp.Rating.Extra", Key{Xmp, "xmp", "Rating.Extra"}},
		{"Xmp.dc.unknownProperty", Key{Xmp, "dc", "unknownProperty"}},
	}
	for _, c := range cases {
		got, err := ParseKey(c.in)
		if err != nil {
			t.Errorf("%s: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %#v, want %#v", c.in, got, c.want)
		}
		if got.String() != c.in {
			t.Errorf("%s: String() returns %q", c.in, got.String())
		}
	}
}

func TestParseKeyInvalid(t *testing.T) {
	cases := []string{
		"",
		"Exif",
		"Exif.Image",
		"Exif..Make",
		"Exif.Image.",
		"Exif.Image.Ma ke",
		"Exif.1mage.Make",
		"Exif.Image.0x12",
		"Exif.Image.Bogus",
		"Exif.Image.ExposureTime",
		"Exif.Photo.0x12345",
		"Iptc.Application3.Keywords",
		"Iptc.Application2.",
		"Iptc.Application2.Bogus",
		"Iptc.Envelope.0x0100",
		"Iptc.0x0000.0x0001",
		"Iptc.0x0100.0x0001",
		"Iptc.0x0002.Keywords",
		"Xmp.nosuchprefix.title",
		"Xmp.dc.",
		"Xmp.dc.a b",
		"Xmp.dc.subject[1]",
		"Xmp.dc.1st",
		"Xmp.dc.a/b",
		"Xmp.dc.a/nosuchprefix:b",
		"Xmp.dc.a/dc:",
		"Foo.Image.Make",
		"exif.Image.Make",
	}
	for _, s := range cases {
		_, err := ParseKey(s)
		if !errors.Is(err, ErrInvalidKey) {
			t.Errorf("%q: got %v, want ErrInvalidKey", s, err)
		}
	}
}

// TestTableKeysParse checks that all keys of the built-in tables are
// accepted by ParseKey.
func TestTableKeysParse(t *testing.T) {
	for key := range registry().byKey {
		got, err := ParseKey(key.String())
		if err != nil {
			t.Error(err)
			continue
		}
		if got != key {
			t.Errorf("%s: parsed as %#v", key, got)
		}
	}
}

func TestMustParseKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for invalid key")
		}
	}()
	MustParseKey("Exif.Image")
}

func TestHexTag(t *testing.T) {
	for _, id := range []uint16{0, 0x0112, 0xa005, 0xffff} {
		s := formatHexTag(id)
		got, ok := parseHexTag(s)
		if !ok || got != id {
			t.Errorf("%d: %q parsed as %d, %t", id, s, got, ok)
		}
	}
	if d := cmp.Diff("0x010f", formatHexTag(0x010f)); d != "" {
		t.Error(d)
	}
}
