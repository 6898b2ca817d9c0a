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
	"io"
	"strings"

	"seehuhn.de/go/exiv"
)

var (
	elemRDFRoot        = xml.Name{Space: exiv.RDFNamespace, Local: "RDF"}
	elemRDFDescription = xml.Name{Space: exiv.RDFNamespace, Local: "Description"}
	elemRDFBag         = xml.Name{Space: exiv.RDFNamespace, Local: "Bag"}
	elemRDFSeq         = xml.Name{Space: exiv.RDFNamespace, Local: "Seq"}
	elemRDFAlt         = xml.Name{Space: exiv.RDFNamespace, Local: "Alt"}
	elemRDFLi          = xml.Name{Space: exiv.RDFNamespace, Local: "li"}

	attrRDFParseType = xml.Name{Space: exiv.RDFNamespace, Local: "parseType"}
	attrRDFResource  = xml.Name{Space: exiv.RDFNamespace, Local: "resource"}
	attrXMLLang      = xml.Name{Space: exiv.XMLNamespace, Local: "lang"}
)

// xmpReader collects the properties of an XMP packet as datums.
type xmpReader struct {
	docPrefix map[string]string // prefixes used in the packet, by namespace
	datums    []exiv.Datum
	seen      map[exiv.Key]bool
}

// decodeXmp reads the properties of an XMP packet.
//
// Struct fields are flattened into keys like
// "Xmp.iptc.CreatorContactInfo/iptc:CiAdrCity".  Namespaces found in the
// packet are registered with [exiv.RegisterNamespace].
func decodeXmp(packet []byte) ([]exiv.Datum, error) {
	dec := xml.NewDecoder(bytes.NewReader(packet))
	r := &xmpReader{
		docPrefix: make(map[string]string),
		seen:      make(map[exiv.Key]bool),
	}

	var level int
	descriptionLevel := -1
	propertyLevel := -1
	var propertyElement []xml.Token
tokenLoop:
	for {
		t, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := t.(type) {
		case xml.StartElement:
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" {
					r.docPrefix[a.Value] = a.Name.Local
				}
			}
			if level > 0 || t.Name == elemRDFRoot {
				level++
			} else {
				continue tokenLoop
			}
			if descriptionLevel < 0 && t.Name == elemRDFDescription {
				for _, a := range t.Attr {
					if a.Name.Space == "xmlns" || a.Name.Space == exiv.RDFNamespace ||
						a.Name.Space == exiv.XMLNamespace || a.Name.Space == "" {
						continue
					}
					// Simple unqualified properties may be given as
					// attributes of the rdf:Description element.
					start := xml.StartElement{Name: a.Name}
					r.property(nil, start, []xml.Token{xml.CharData(a.Value)})
				}
				descriptionLevel = level
			} else if descriptionLevel >= 0 && propertyLevel < 0 {
				// start recording the XML tokens which make up a property element
				propertyLevel = level
				propertyElement = nil
			}
		case xml.EndElement:
			if level == propertyLevel {
				// propertyElement contains the XML tokens which make up the property,
				// including the start element, but not the end element.
				start := propertyElement[0].(xml.StartElement)
				r.property(nil, start, propertyElement[1:])
				propertyLevel = -1
			}
			if level == descriptionLevel {
				descriptionLevel = -1
			}
			if level > 0 {
				level--
			}
		}

		if propertyLevel >= 0 {
			propertyElement = append(propertyElement, xml.CopyToken(t))
		}
	}
	return r.datums, nil
}

// key returns the key for a property.  For struct fields, parent is the
// key of the enclosing struct.
func (r *xmpReader) key(parent *exiv.Key, name xml.Name) exiv.Key {
	pfx := exiv.RegisterNamespace(name.Space, r.docPrefix[name.Space])
	if parent == nil {
		return exiv.Key{Namespace: exiv.Xmp, Group: pfx, Name: name.Local}
	}
	return exiv.Key{
		Namespace: exiv.Xmp,
		Group:     parent.Group,
		Name:      parent.Name + "/" + pfx + ":" + name.Local,
	}
}

func (r *xmpReader) add(key exiv.Key, tp string, values []string) {
	if r.seen[key] {
		return
	}
	r.seen[key] = true
	r.datums = append(r.datums, exiv.Datum{Key: key, Type: tp, Values: values})
}

// property converts a property element into datums.  The argument parent
// is the key of the enclosing struct, or nil for top-level properties.
// The tokens are the content of the element, without the start and end
// elements.
func (r *xmpReader) property(parent *exiv.Key, start xml.StartElement, tokens []xml.Token) {
	if start.Name.Space == "" {
		// properties must be in a namespace
		return
	}
	key := r.key(parent, start.Name)

	switch getPropertyElementType(start, tokens) {
	case literalPropertyElt:
		r.add(key, exiv.XmpText, []string{textContent(tokens)})

	case resourcePropertyElt:
		children := childElements(tokens)
		if len(children) == 0 {
			return
		}
		node := children[0]
		switch node.start.Name {
		case elemRDFBag, elemRDFSeq, elemRDFAlt:
			r.array(key, node)
		case elemRDFDescription:
			r.fields(key, node.start.Attr, node.content)
		}

	case parseTypeResourcePropertyElt:
		r.fields(key, nil, tokens)

	case emptyPropertyElt:
		for _, a := range start.Attr {
			if a.Name == attrRDFResource {
				r.add(key, exiv.XmpText, []string{a.Value})
				return
			}
		}
		if hasFieldAttrs(start.Attr) {
			r.fields(key, start.Attr, nil)
			return
		}
		r.add(key, exiv.XmpText, []string{""})
	}
}

// fields reads the fields of a struct value, given either as attributes or
// as property elements.
func (r *xmpReader) fields(key exiv.Key, attrs []xml.Attr, tokens []xml.Token) {
	for _, a := range attrs {
		if !isFieldAttr(a) {
			continue
		}
		r.property(&key, xml.StartElement{Name: a.Name}, []xml.Token{xml.CharData(a.Value)})
	}
	for _, child := range childElements(tokens) {
		r.property(&key, child.start, child.content)
	}
}

// array reads an rdf:Bag, rdf:Seq or rdf:Alt container.  An rdf:Alt where
// every item carries an xml:lang attribute becomes a language alternative.
func (r *xmpReader) array(key exiv.Key, node element) {
	var items, langs []string
	isLangAlt := node.start.Name == elemRDFAlt
	for _, li := range childElements(node.content) {
		if li.start.Name != elemRDFLi || len(childElements(li.content)) > 0 {
			// struct items are not supported
			continue
		}
		lang := ""
		for _, a := range li.start.Attr {
			if a.Name == attrXMLLang {
				lang = a.Value
			}
		}
		if lang == "" {
			isLangAlt = false
		}
		items = append(items, textContent(li.content))
		langs = append(langs, lang)
	}

	if isLangAlt && len(items) > 0 {
		values := make([]string, len(items))
		for i, text := range items {
			values[i] = "lang=" + langs[i] + " " + text
		}
		r.add(key, exiv.XmpLangAlt, values)
		return
	}

	tp := exiv.XmpBag
	switch node.start.Name {
	case elemRDFSeq:
		tp = exiv.XmpSeq
	case elemRDFAlt:
		tp = exiv.XmpAlt
	}
	if items == nil {
		items = []string{}
	}
	r.add(key, tp, items)
}

// element is an XML element, together with its content.
type element struct {
	start   xml.StartElement
	content []xml.Token
}

// childElements splits a token sequence into its top-level elements.
func childElements(tokens []xml.Token) []element {
	var res []element
	depth := 0
	var cur element
	for _, t := range tokens {
		switch t := t.(type) {
		case xml.StartElement:
			if depth == 0 {
				cur = element{start: t}
			} else {
				cur.content = append(cur.content, t)
			}
			depth++
		case xml.EndElement:
			depth--
			if depth == 0 {
				res = append(res, cur)
			} else if depth > 0 {
				cur.content = append(cur.content, t)
			}
		default:
			if depth > 0 {
				cur.content = append(cur.content, t)
			}
		}
	}
	return res
}

// textContent returns the concatenated character data at the top level.
func textContent(tokens []xml.Token) string {
	var b strings.Builder
	depth := 0
	for _, t := range tokens {
		switch t := t.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 {
				b.Write(t)
			}
		}
	}
	return b.String()
}

func isFieldAttr(a xml.Attr) bool {
	switch a.Name.Space {
	case "", "xmlns", exiv.RDFNamespace, exiv.XMLNamespace:
		return false
	}
	return true
}

func hasFieldAttrs(attrs []xml.Attr) bool {
	for _, a := range attrs {
		if isFieldAttr(a) {
			return true
		}
	}
	return false
}

// getPropertyElementType determines the RDF type of a property element.
//
// This implements the rules from appendix C.2.5 (Content of a nodeElement)
// of ISO 16684-1:2011.
func getPropertyElementType(start xml.StartElement, tokens []xml.Token) propertyElementType {
	for _, a := range start.Attr {
		if a.Name != attrRDFParseType {
			continue
		}
		switch a.Value {
		case "Resource":
			return parseTypeResourcePropertyElt
		case "Literal": // not allowed in XMP
			return parseTypeLiteralPropertyElt
		case "Collection": // not allowed in XMP
			return parseTypeCollectionPropertyElt
		default: // not allowed in XMP
			return parseTypeOtherPropertyElt
		}
	}

	hasText := false
	for _, t := range tokens {
		switch t := t.(type) {
		case xml.StartElement:
			return resourcePropertyElt
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				hasText = true
			}
		}
	}
	if hasText {
		return literalPropertyElt
	}
	for _, a := range start.Attr {
		if a.Name == attrRDFResource || isFieldAttr(a) {
			return emptyPropertyElt
		}
	}
	if len(tokens) > 0 {
		// white space only
		return literalPropertyElt
	}
	return emptyPropertyElt
}

type propertyElementType int

const (
	resourcePropertyElt propertyElementType = iota + 1
	literalPropertyElt
	parseTypeLiteralPropertyElt
	parseTypeResourcePropertyElt
	parseTypeCollectionPropertyElt
	parseTypeOtherPropertyElt
	emptyPropertyElt
)
