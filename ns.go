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
	"strconv"
	"strings"
	"sync"
)

const (
	// XMLNamespace is the namespace for XML.
	XMLNamespace = "http://www.w3.org/XML/1998/namespace"

	// RDFNamespace is the namespace for RDF.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
)

// defaultPrefix lists the XMP schemas known to the library.
var defaultPrefix = map[string]string{
	"http://purl.org/dc/elements/1.1/":                     "dc",             // Dublin Core
	"http://ns.adobe.com/xap/1.0/":                         "xmp",
	"http://ns.adobe.com/xap/1.0/rights/":                  "xmpRights",      // XMP Rights Management
	"http://ns.adobe.com/xap/1.0/mm/":                      "xmpMM",          // XMP Media Management
	"http://ns.adobe.com/xap/1.0/bj/":                      "xmpBJ",          // Basic Job Ticket
	"http://ns.adobe.com/xap/1.0/t/pg/":                    "xmpTPg",         // Paged-Text
	"http://ns.adobe.com/xmp/1.0/DynamicMedia/":            "xmpDM",
	"http://ns.adobe.com/xap/1.0/sType/ResourceRef#":       "stRef",
	"http://ns.adobe.com/xmp/Identifier/qual/1.0/":         "xmpidq",
	"http://ns.adobe.com/pdf/1.3/":                         "pdf",
	"http://ns.adobe.com/photoshop/1.0/":                   "photoshop",
	"http://ns.adobe.com/camera-raw-settings/1.0/":         "crs",
	"http://ns.adobe.com/tiff/1.0/":                        "tiff",
	"http://ns.adobe.com/exif/1.0/":                        "exif",
	"http://ns.adobe.com/exif/1.0/aux/":                    "aux",
	"http://iptc.org/std/Iptc4xmpCore/1.0/xmlns/":          "iptc",
	"http://iptc.org/std/Iptc4xmpExt/2008-02-29/":          "iptcExt",
	"http://ns.useplus.org/ldf/xmp/1.0/":                   "plus",
	"http://ns.microsoft.com/photo/1.0/":                   "MicrosoftPhoto",
	"http://www.digikam.org/ns/1.0/":                       "digiKam",
	"http://ns.adobe.com/lightroom/1.0/":                   "lr",
	"http://ns.adobe.com/xmp/sType/Area#":                  "stArea",
	"http://www.metadataworkinggroup.com/schemas/regions/": "mwg-rs",
}

// nsTable is the process-wide XMP namespace registry.
var nsTable = struct {
	sync.RWMutex
	nsToPrefix map[string]string
	prefixToNS map[string]string
}{
	nsToPrefix: map[string]string{},
	prefixToNS: map[string]string{},
}

func init() {
	for ns, pfx := range defaultPrefix {
		nsTable.nsToPrefix[ns] = pfx
		nsTable.prefixToNS[pfx] = ns
	}
}

// RegisterNamespace makes an XMP schema available for use in keys.
//
// The preferred prefix is used unless it is empty, not a valid XML name, or
// already bound to a different namespace; in this case a new prefix is
// chosen.  If the namespace is already registered, its existing prefix is
// returned unchanged.  The return value is the prefix bound to ns.
func RegisterNamespace(ns, prefix string) string {
	nsTable.Lock()
	defer nsTable.Unlock()

	if pfx, ok := nsTable.nsToPrefix[ns]; ok {
		return pfx
	}
	if prefix == "" || !IsXMLName(prefix) || nsTable.prefixToNS[prefix] != "" {
		prefix = getPrefix(nsTable.prefixToNS, ns)
	}
	nsTable.nsToPrefix[ns] = prefix
	nsTable.prefixToNS[prefix] = ns
	return prefix
}

// NamespaceURI returns the namespace bound to an XMP prefix.
func NamespaceURI(prefix string) (string, bool) {
	nsTable.RLock()
	defer nsTable.RUnlock()
	ns, ok := nsTable.prefixToNS[prefix]
	return ns, ok
}

// NamespacePrefix returns the prefix bound to an XMP namespace.
func NamespacePrefix(ns string) (string, bool) {
	nsTable.RLock()
	defer nsTable.RUnlock()
	pfx, ok := nsTable.nsToPrefix[ns]
	return pfx, ok
}

// getPrefix chooses a new prefix for the given namespace.
// The new prefix is chosen to be different from the ones already in the
// prefixToNS map.
func getPrefix(prefixToNS map[string]string, ns string) string {
	// The following code is a modified version of code from
	// encoding/xml/marshal.go in the Go standard library.

	// Pick a name. We try to use the final element of the path
	// but fall back to _.
	prefix := strings.TrimRight(ns, "/#")
	if i := strings.LastIndex(prefix, "/"); i >= 0 {
		prefix = prefix[i+1:]
	}
	if prefix == "" || !IsXMLName(prefix) {
		prefix = "_"
	}
	// xmlanything is reserved and any variant of it regardless of
	// case should be matched, so:
	//    (('X'|'x') ('M'|'m') ('L'|'l'))
	// See Section 2.3 of https://www.w3.org/TR/REC-xml/
	if len(prefix) >= 3 && strings.EqualFold(prefix[:3], "xml") {
		prefix = "_" + prefix
	}

	if prefixToNS[prefix] != "" {
		// Name is taken.  Find a better one.
		idx := len(prefixToNS) + 1
		for {
			if id := prefix + "_" + strconv.Itoa(idx); prefixToNS[id] == "" {
				prefix = id
				break
			}
			idx--
		}
	}
	// End of code from encoding/xml/marshal.go

	return prefix
}

// IsXMLName reports whether s can be used as a namespace prefix or as the
// local part of an XMP property name.  Only the ASCII subset of the XML
// name grammar is accepted, and colons are not allowed.
func IsXMLName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case i > 0 && (c >= '0' && c <= '9' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}
