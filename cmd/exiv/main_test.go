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

package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"

	"seehuhn.de/go/exiv"
	"seehuhn.de/go/exiv/internal/config"
)

func TestParseSelection(t *testing.T) {
	cases := []struct {
		in   []string
		want exiv.Selection
	}{
		{nil, exiv.SelectAll},
		{[]string{"exif"}, exiv.SelectExif},
		{[]string{"IPTC", "xmp"}, exiv.SelectIptc | exiv.SelectXmp},
	}
	for _, c := range cases {
		got, err := parseSelection(c.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("%v: got %v, want %v", c.in, got, c.want)
		}
	}

	if _, err := parseSelection([]string{"jpeg"}); err == nil {
		t.Error("unknown namespace accepted")
	}
}

func TestSetValue(t *testing.T) {
	md, err := exiv.NewMetadata(nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		key  string
		args []string
		want exiv.Value
	}{
		{"Exif.Image.Artist", []string{"Jane", "Doe"}, exiv.Text("Jane Doe")},
		{"Iptc.Application2.Keywords", []string{"a", "b"}, exiv.Array{"a", "b"}},
		{"Iptc.Application2.City", []string{"Paris"}, exiv.Text("Paris")},
		{"Xmp.dc.subject", []string{"x", "y"}, exiv.Array{"x", "y"}},
		{"Xmp.dc.title", []string{"Hello", "lang=de Hallo Welt"},
			exiv.LangAlt{"x-default": "Hello", "de": "Hallo Welt"}},
		{"Xmp.photoshop.City", []string{"New", "York"}, exiv.Text("New York")},
	}
	for _, c := range cases {
		key := exiv.MustParseKey(c.key)
		err := setValue(md, key, c.args)
		if err != nil {
			t.Errorf("%s: %v", c.key, err)
			continue
		}
		got, err := md.Value(key)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%s: unexpected value (-want +got):\n%s", c.key, d)
		}
	}
}

func TestSetValueUnknownXmp(t *testing.T) {
	md, err := exiv.NewMetadata(nil, nil, []exiv.Datum{
		{Key: exiv.MustParseKey("Xmp.dc.private"), Type: exiv.XmpBag, Values: []string{"a"}},
		{Key: exiv.MustParseKey("Xmp.dc.unknownProperty"), Type: exiv.XmpLangAlt,
			Values: []string{"lang=x-default old"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		key  string
		args []string
		want exiv.Value
	}{
		{"Xmp.dc.private", []string{"x", "y"}, exiv.Array{"x", "y"}},
		{"Xmp.dc.private", []string{"z"}, exiv.Array{"z"}},
		{"Xmp.dc.unknownProperty", []string{"new", "lang=fr neuf"},
			exiv.LangAlt{"x-default": "new", "fr": "neuf"}},
		{"Xmp.dc.nosuchproperty", []string{"a", "b"}, exiv.Text("a b")},
	}
	for _, c := range cases {
		key := exiv.MustParseKey(c.key)
		err := setValue(md, key, c.args)
		if err != nil {
			t.Errorf("%s: %v", c.key, err)
			continue
		}
		got, err := md.Value(key)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%s: unexpected value (-want +got):\n%s", c.key, d)
		}
	}
}

// jpegWithXMP returns a small JPEG file which contains the given XMP packet.
func jpegWithXMP(t *testing.T, packet string) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	err := jpeg.Encode(buf, image.NewGray(image.Rect(0, 0, 8, 8)), nil)
	if err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	payload := append([]byte("http://ns.adobe.com/xap/1.0/\x00"), packet...)
	n := len(payload) + 2
	var out []byte
	out = append(out, data[:2]...) // SOI
	out = append(out, 0xFF, 0xE1, byte(n>>8), byte(n))
	out = append(out, payload...)
	return append(out, data[2:]...)
}

// TestSetCmdFilePrefix checks that "exiv set" accepts keys whose XMP
// prefix is only declared inside the image file.
func TestSetCmdFilePrefix(t *testing.T) {
	const packet = `<x:xmpmeta xmlns:x="adobe:ns:meta/">
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
<rdf:Description rdf:about="" xmlns:settest="http://ns.seehuhn.de/settest/">
<settest:tags><rdf:Bag><rdf:li>old</rdf:li></rdf:Bag></settest:tags>
</rdf:Description>
</rdf:RDF>
</x:xmpmeta>`
	fname := filepath.Join(t.TempDir(), "test.jpg")
	err := os.WriteFile(fname, jpegWithXMP(t, packet), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	a := &app{log: zerolog.Nop()}
	cmd := newSetCmd(a)
	err = cmd.RunE(cmd, []string{fname, "Xmp.settest.tags", "x", "y"})
	if err != nil {
		t.Fatal(err)
	}

	img := exiv.Open(fname)
	err = img.ReadMetadata()
	if err != nil {
		t.Fatal(err)
	}
	got, err := img.Metadata().Value(exiv.MustParseKey("Xmp.settest.tags"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(exiv.Value(exiv.Array{"x", "y"}), got); d != "" {
		t.Errorf("unexpected value (-want +got):\n%s", d)
	}
}

func TestWriteRows(t *testing.T) {
	md, err := exiv.NewMetadata(
		[]exiv.Datum{{Key: exiv.MustParseKey("Exif.Image.Orientation"), Type: "Short", Values: []string{"6"}}},
		[]exiv.Datum{
			{Key: exiv.MustParseKey("Iptc.Application2.Keywords"), Type: "String", Values: []string{"a"}},
			{Key: exiv.MustParseKey("Iptc.Application2.Keywords"), Type: "String", Values: []string{"b"}},
		},
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := metadataRows(md, exiv.SelectAll, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[1].Value != "a, b" || rows[0].Human == "" {
		t.Fatalf("unexpected rows %v", rows)
	}

	for _, format := range []string{"text", "json", "yaml"} {
		buf := &bytes.Buffer{}
		a := &app{cfg: &config.Config{}, out: buf}
		a.cfg.Output.Format = format
		err := a.writeRows(rows)
		if err != nil {
			t.Fatal(err)
		}

		var got []row
		switch format {
		case "text":
			if !strings.Contains(buf.String(), "Iptc.Application2.Keywords") {
				t.Errorf("text output lacks keys:\n%s", buf)
			}
			continue
		case "json":
			err = json.Unmarshal(buf.Bytes(), &got)
		case "yaml":
			err = yaml.Unmarshal(buf.Bytes(), &got)
		}
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(rows, got); d != "" {
			t.Errorf("%s: unexpected output (-want +got):\n%s", format, d)
		}
	}
}
