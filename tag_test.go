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

func TestDetachedTags(t *testing.T) {
	exif, err := NewExifTag("Exif.Photo.ExposureTime")
	if err != nil {
		t.Fatal(err)
	}
	if exif.Type() != "Rational" || exif.Label() != "Exposure Time" || exif.SectionName() != "CaptureCond" {
		t.Errorf("unexpected descriptor %+v", exif.Descriptor())
	}
	if exif.IsBound() {
		t.Error("detached tag is bound")
	}
	_, err = exif.RawValue()
	if !errors.Is(err, ErrNotBound) {
		t.Errorf("expected ErrNotBound, got %v", err)
	}
	err = exif.SetRawValue("1/60")
	if !errors.Is(err, ErrNotBound) {
		t.Errorf("expected ErrNotBound, got %v", err)
	}

	iptc, err := NewIptcTag("Iptc.Application2.Keywords")
	if err != nil {
		t.Fatal(err)
	}
	if !iptc.Repeatable() || iptc.Type() != "String" || iptc.RecordName() != "Application2" {
		t.Errorf("unexpected descriptor %+v", iptc.Descriptor())
	}
	_, err = iptc.RawValues()
	if !errors.Is(err, ErrNotBound) {
		t.Errorf("expected ErrNotBound, got %v", err)
	}

	xmp, err := NewXmpTag("Xmp.dc.subject")
	if err != nil {
		t.Fatal(err)
	}
	if xmp.Type() != "bag Text" || xmp.Exiv2Type() != XmpBag {
		t.Errorf("unexpected type %q / %q", xmp.Type(), xmp.Exiv2Type())
	}
	_, err = xmp.ArrayValue()
	if !errors.Is(err, ErrNotBound) {
		t.Errorf("expected ErrNotBound, got %v", err)
	}

	_, err = NewExifTag("Xmp.dc.subject")
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
	_, err = NewXmpTag("Xmp.nosuchprefix.x")
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestExifTagHandle(t *testing.T) {
	m := testMetadata(t)
	tag, err := m.ExifTag("Exif.Photo.ExposureTime")
	if err != nil {
		t.Fatal(err)
	}
	raw, err := tag.RawValue()
	if err != nil {
		t.Fatal(err)
	}
	if raw != "1/60" {
		t.Errorf("got %q", raw)
	}
	human, err := tag.HumanValue()
	if err != nil {
		t.Fatal(err)
	}
	if human != "1/60 s" {
		t.Errorf("got %q", human)
	}

	err = tag.SetRawValue("0.25")
	if err != nil {
		t.Fatal(err)
	}
	raw, _ = tag.RawValue()
	if raw != "1/4" {
		t.Errorf("got %q", raw)
	}

	// writes through the handle are visible in the store
	v, err := m.Value(tag.Key())
	if err != nil {
		t.Fatal(err)
	}
	if v != Text("1/4") {
		t.Errorf("got %v", v)
	}

	_, err = m.ExifTag("Exif.Image.Model")
	if !errors.Is(err, ErrTagNotFound) {
		t.Errorf("expected ErrTagNotFound, got %v", err)
	}
}

// TestExifHumanValueType checks that HumanValue uses the current engine
// type of tags which are not in the built-in tables.
func TestExifHumanValueType(t *testing.T) {
	key := MustParseKey("Exif.Image.0xfff0")
	m, err := NewMetadata([]Datum{{Key: key, Type: "Ascii", Values: []string{"10/2"}}}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	tag, err := m.ExifTag(key.String())
	if err != nil {
		t.Fatal(err)
	}
	human, err := tag.HumanValue()
	if err != nil {
		t.Fatal(err)
	}
	if human != "10/2" {
		t.Errorf("got %q", human)
	}

	src, err := NewMetadata([]Datum{{Key: key, Type: "Rational", Values: []string{"10/2"}}}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	src.CopyTo(m, SelectExif)
	human, err = tag.HumanValue()
	if err != nil {
		t.Fatal(err)
	}
	if human != "5" {
		t.Errorf("got %q", human)
	}
	if tp := tag.Type(); tp != "Rational" {
		t.Errorf("got type %q", tp)
	}
}

func TestIptcTagHandle(t *testing.T) {
	m := testMetadata(t)
	tag, err := m.IptcTag("Iptc.Application2.Keywords")
	if err != nil {
		t.Fatal(err)
	}
	values, err := tag.RawValues()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"a", "b"}, values); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	first, _ := tag.RawValue()
	if first != "a" {
		t.Errorf("got %q", first)
	}

	err = tag.SetRawValues([]string{"c", "d", "e"})
	if err != nil {
		t.Fatal(err)
	}
	v, err := tag.Value()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Array{"c", "d", "e"}, v); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	err = tag.SetRawValue("only")
	if err != nil {
		t.Fatal(err)
	}
	values, _ = tag.RawValues()
	if d := cmp.Diff([]string{"only"}, values); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	date, err := NewIptcTag("Iptc.Application2.DateCreated")
	if err != nil {
		t.Fatal(err)
	}
	if date.Title() != "Date Created" {
		t.Errorf("got title %q", date.Title())
	}
}

func TestXmpTagHandle(t *testing.T) {
	m := testMetadata(t)

	subject, err := m.XmpTag("Xmp.dc.subject")
	if err != nil {
		t.Fatal(err)
	}
	raw, err := subject.RawValue()
	if err != nil {
		t.Fatal(err)
	}
	if raw != "x, y" {
		t.Errorf("got %q", raw)
	}
	err = subject.SetRawValue("one, two, three")
	if err != nil {
		t.Fatal(err)
	}
	items, err := subject.ArrayValue()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"one", "two", "three"}, items); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	_, err = subject.TextValue()
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got %v", err)
	}

	title, err := m.XmpTag("Xmp.dc.title")
	if err != nil {
		t.Fatal(err)
	}
	err = title.SetRawValue(`lang="x-default" Hello, lang="de" Hallo`)
	if err != nil {
		t.Fatal(err)
	}
	l, err := title.LangAltValue()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(LangAlt{"x-default": "Hello", "de": "Hallo"}, l); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	raw, _ = title.RawValue()
	if raw != `lang="x-default" Hello, lang="de" Hallo` {
		t.Errorf("got %q", raw)
	}
	err = title.SetRawValue("no language")
	if !errors.Is(err, ErrMalformedLangAlt) {
		t.Errorf("expected ErrMalformedLangAlt, got %v", err)
	}

	// the stored value is a copy
	l["fr"] = "Bonjour"
	l2, _ := title.LangAltValue()
	if _, ok := l2["fr"]; ok {
		t.Error("modifying the result changed the store")
	}
}

func TestDeletedTag(t *testing.T) {
	m := testMetadata(t)
	tag, err := m.ExifTag("Exif.Image.Make")
	if err != nil {
		t.Fatal(err)
	}
	err = m.Delete(tag.Key())
	if err != nil {
		t.Fatal(err)
	}
	_, err = tag.RawValue()
	if !errors.Is(err, ErrTagNotFound) {
		t.Errorf("expected ErrTagNotFound, got %v", err)
	}

	// setting the value inserts the tag again
	err = tag.SetRawValue("Sony")
	if err != nil {
		t.Fatal(err)
	}
	if !m.Has(tag.Key()) {
		t.Error("tag not inserted")
	}
}

func TestStaleTag(t *testing.T) {
	m := testMetadata(t)
	tag, err := m.XmpTag("Xmp.dc.subject")
	if err != nil {
		t.Fatal(err)
	}
	if !tag.IsBound() {
		t.Fatal("tag not bound")
	}

	err = m.reset(m.Datums(Exif), m.Datums(Iptc), m.Datums(Xmp))
	if err != nil {
		t.Fatal(err)
	}
	if tag.IsBound() {
		t.Error("tag still bound after reset")
	}
	_, err = tag.Value()
	if !errors.Is(err, ErrNotBound) {
		t.Errorf("expected ErrNotBound, got %v", err)
	}
	err = tag.SetArrayValue([]string{"z"})
	if !errors.Is(err, ErrNotBound) {
		t.Errorf("expected ErrNotBound, got %v", err)
	}

	// the descriptor is still available
	if tag.Descriptor().Type != "bag Text" || tag.Name() != "subject" {
		t.Errorf("unexpected descriptor %+v", tag.Descriptor())
	}
}

func TestTagInterface(t *testing.T) {
	m := testMetadata(t)
	for _, s := range []string{"Exif.Image.Make", "Iptc.Application2.Caption", "Xmp.dc.subject"} {
		key := MustParseKey(s)
		tag, err := m.Tag(key)
		if err != nil {
			t.Fatal(err)
		}
		if tag.Key() != key {
			t.Errorf("got key %s, want %s", tag.Key(), key)
		}
		if _, err := tag.RawValue(); err != nil {
			t.Errorf("%s: %v", s, err)
		}
	}
	_, err := m.Tag(Key{})
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}
