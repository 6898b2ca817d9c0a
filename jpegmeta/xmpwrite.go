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

package jpegmeta

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/exiv"
)

const adobeMetaNS = "adobe:ns:meta/"

// xmpNode is a property or struct field in the tree of XMP properties.
type xmpNode struct {
	name     string // qualified name "pfx:local"
	datum    *exiv.Datum
	children []*xmpNode
}

// xmpTree arranges datums into a tree, following the "/" separators of
// struct field paths.  The returned set contains the prefixes of all
// names used.
func xmpTree(datums []exiv.Datum) ([]*xmpNode, map[string]bool, error) {
	var roots []*xmpNode
	byPath := make(map[string]*xmpNode)
	prefixes := make(map[string]bool)

	for i := range datums {
		d := &datums[i]
		if d.Key.Namespace != exiv.Xmp {
			return nil, nil, fmt.Errorf("%s: not an XMP key", d.Key)
		}
		parts := strings.Split(d.Key.Name, "/")
		parts[0] = d.Key.Group + ":" + parts[0]

		path := ""
		var parent *xmpNode
		for j, name := range parts {
			pfx, local, ok := strings.Cut(name, ":")
			if !ok || !exiv.IsXMLName(local) {
				return nil, nil, fmt.Errorf("%s: invalid XMP path component %q", d.Key, name)
			}
			if _, ok := exiv.NamespaceURI(pfx); !ok {
				return nil, nil, fmt.Errorf("%s: unknown namespace prefix %q", d.Key, pfx)
			}
			prefixes[pfx] = true

			path += "/" + name
			node := byPath[path]
			if node == nil {
				node = &xmpNode{name: name}
				byPath[path] = node
				if parent == nil {
					roots = append(roots, node)
				} else {
					parent.children = append(parent.children, node)
				}
			}
			if j == len(parts)-1 {
				node.datum = d
			}
			if node.datum != nil && (len(node.children) > 0 || j < len(parts)-1) {
				return nil, nil, fmt.Errorf("%s: property is both a struct and a value", d.Key)
			}
			parent = node
		}
	}
	return roots, prefixes, nil
}

// encodeXmp writes the datums as an XMP packet.
func encodeXmp(datums []exiv.Datum) ([]byte, error) {
	roots, prefixes, err := xmpTree(datums)
	if err != nil {
		return nil, err
	}
	prefixes["rdf"] = true

	buf := &bytes.Buffer{}
	e := xml.NewEncoder(buf)
	e.Indent("", " ")

	err = e.EncodeToken(xml.ProcInst{
		Target: "xpacket",
		Inst:   []byte("begin=\"\uFEFF\" id=\"W5M0MpCehiHzreSzNTczkc9d\""),
	})
	if err != nil {
		return nil, err
	}
	err = e.EncodeToken(xml.CharData("\n"))
	if err != nil {
		return nil, err
	}

	meta := xml.Name{Local: "x:xmpmeta"}
	err = e.EncodeToken(xml.StartElement{
		Name: meta,
		Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns:x"}, Value: adobeMetaNS}},
	})
	if err != nil {
		return nil, err
	}

	pfxList := make([]string, 0, len(prefixes))
	for pfx := range prefixes {
		pfxList = append(pfxList, pfx)
	}
	slices.Sort(pfxList)
	var attrs []xml.Attr
	for _, pfx := range pfxList {
		ns, _ := exiv.NamespaceURI(pfx)
		if pfx == "rdf" {
			ns = exiv.RDFNamespace
		}
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "xmlns:" + pfx}, Value: ns})
	}
	rdf := xml.Name{Local: "rdf:RDF"}
	err = e.EncodeToken(xml.StartElement{Name: rdf, Attr: attrs})
	if err != nil {
		return nil, err
	}

	desc := xml.Name{Local: "rdf:Description"}
	err = e.EncodeToken(xml.StartElement{
		Name: desc,
		Attr: []xml.Attr{{Name: xml.Name{Local: "rdf:about"}, Value: ""}},
	})
	if err != nil {
		return nil, err
	}
	for _, node := range roots {
		err = writeNode(e, node)
		if err != nil {
			return nil, err
		}
	}

	for _, name := range []xml.Name{desc, rdf, meta} {
		err = e.EncodeToken(xml.EndElement{Name: name})
		if err != nil {
			return nil, err
		}
	}
	err = e.EncodeToken(xml.CharData("\n"))
	if err != nil {
		return nil, err
	}
	err = e.EncodeToken(xml.ProcInst{
		Target: "xpacket",
		Inst:   []byte("end=\"w\""),
	})
	if err != nil {
		return nil, err
	}
	err = e.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeNode(e *xml.Encoder, node *xmpNode) error {
	name := xml.Name{Local: node.name}

	if node.datum == nil {
		err := e.EncodeToken(xml.StartElement{
			Name: name,
			Attr: []xml.Attr{{Name: xml.Name{Local: "rdf:parseType"}, Value: "Resource"}},
		})
		if err != nil {
			return err
		}
		for _, child := range node.children {
			err = writeNode(e, child)
			if err != nil {
				return err
			}
		}
		return e.EncodeToken(xml.EndElement{Name: name})
	}

	d := node.datum
	err := e.EncodeToken(xml.StartElement{Name: name})
	if err != nil {
		return err
	}
	switch d.Type {
	case exiv.XmpBag, exiv.XmpSeq, exiv.XmpAlt:
		container := xml.Name{Local: "rdf:" + strings.TrimPrefix(d.Type, "Xmp")}
		items := make([]item, len(d.Values))
		for i, v := range d.Values {
			items[i] = item{text: v}
		}
		err = writeContainer(e, container, items)
	case exiv.XmpLangAlt:
		var items []item
		items, err = langAltItems(d)
		if err == nil {
			err = writeContainer(e, xml.Name{Local: "rdf:Alt"}, items)
		}
	default:
		err = e.EncodeToken(xml.CharData(strings.Join(d.Values, ", ")))
	}
	if err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: name})
}

type item struct {
	lang string
	text string
}

func writeContainer(e *xml.Encoder, container xml.Name, items []item) error {
	err := e.EncodeToken(xml.StartElement{Name: container})
	if err != nil {
		return err
	}
	li := xml.Name{Local: "rdf:li"}
	for _, it := range items {
		start := xml.StartElement{Name: li}
		if it.lang != "" {
			start.Attr = []xml.Attr{{Name: xml.Name{Local: "xml:lang"}, Value: it.lang}}
		}
		err = e.EncodeToken(start)
		if err != nil {
			return err
		}
		err = e.EncodeToken(xml.CharData(it.text))
		if err != nil {
			return err
		}
		err = e.EncodeToken(xml.EndElement{Name: li})
		if err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: container})
}

// langAltItems converts the "lang=<tag> <text>" values of a datum, with
// the default language first.
func langAltItems(d *exiv.Datum) ([]item, error) {
	codec := exiv.CodecFor(exiv.Xmp)
	v, err := codec.Decode(exiv.Descriptor{Key: d.Key, Type: exiv.XmpLangAlt}, d.Values)
	if err != nil {
		return nil, err
	}
	alt, ok := v.(exiv.LangAlt)
	if !ok {
		return nil, fmt.Errorf("%s: %w", d.Key, exiv.ErrMalformedLangAlt)
	}
	var items []item
	for _, lang := range alt.Languages() {
		items = append(items, item{lang: lang, text: alt[lang]})
	}
	return items, nil
}
