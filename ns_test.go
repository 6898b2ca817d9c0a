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

import "testing"

// TestDefaultPrefix ensures that the prefixes in the defaultPrefix table are
// unique, non-empty and usable in keys.
func TestDefaultPrefix(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range defaultPrefix {
		if seen[p] {
			t.Errorf("prefix %q is not unique", p)
		}
		if !IsXMLName(p) {
			t.Errorf("prefix %q is not a valid name", p)
		}
		seen[p] = true
	}
}

func TestGetPrefix(t *testing.T) {
	m := map[string]string{
		"a": "http://ns.seehuhn.de/test/a/#",
	}
	p := getPrefix(m, "http://ns.seehuhn.de/test/b/#")
	if p != "b" {
		t.Errorf("unexpected prefix %q", p)
	}
	p = getPrefix(m, "http://ns.seehuhn.de/test/other/a/#")
	if p == "a" {
		t.Errorf("unexpected prefix %q", p)
	}
	p = getPrefix(m, "http://ns.seehuhn.de/xmlish/")
	if p != "_xmlish" {
		t.Errorf("unexpected prefix %q", p)
	}
}

func TestRegisterNamespace(t *testing.T) {
	const ns = "http://ns.seehuhn.de/test/register/"

	pfx := RegisterNamespace(ns, "regtest")
	if pfx != "regtest" {
		t.Errorf("got prefix %q", pfx)
	}
	// registering again keeps the prefix
	if pfx := RegisterNamespace(ns, "other"); pfx != "regtest" {
		t.Errorf("got prefix %q", pfx)
	}
	if got, _ := NamespaceURI("regtest"); got != ns {
		t.Errorf("got namespace %q", got)
	}
	if got, _ := NamespacePrefix(ns); got != "regtest" {
		t.Errorf("got prefix %q", got)
	}

	// a taken prefix is replaced
	pfx = RegisterNamespace("http://ns.seehuhn.de/test/not-dc/", "dc")
	if pfx == "dc" || pfx == "" {
		t.Errorf("got prefix %q", pfx)
	}
	if got, _ := NamespaceURI("dc"); got != "http://purl.org/dc/elements/1.1/" {
		t.Errorf("dc was rebound to %q", got)
	}

	if _, err := ParseKey("Xmp.regtest.prop"); err != nil {
		t.Error(err)
	}
}
