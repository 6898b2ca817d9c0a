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
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
)

// xmpCodec implements the value model for XMP properties.
//
// Simple properties have a single raw value.  Arrays have one raw value per
// item.  Language alternatives have one raw value per language, in the form
// "lang=<tag> <text>".
type xmpCodec struct{}

func (xmpCodec) Decode(d Descriptor, raw []string) (Value, error) {
	switch xmpShape(d) {
	case KindArray:
		return append(Array{}, raw...), nil
	case KindLangAlt:
		res := make(LangAlt, len(raw))
		for _, entry := range raw {
			lang, text, err := parseLangAltEntry(entry)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", d.Key, err)
			}
			res[lang] = text
		}
		return res, nil
	default:
		if len(raw) == 0 {
			return Text(""), nil
		}
		return Text(raw[0]), nil
	}
}

func (xmpCodec) Encode(d Descriptor, v Value) ([]string, error) {
	shape := xmpShape(d)
	if d.Kind == KindUnknown {
		// any shape is accepted for unknown properties
		switch v.(type) {
		case Text:
			shape = KindText
		case Array:
			shape = KindArray
		case LangAlt:
			shape = KindLangAlt
		}
	}

	switch shape {
	case KindArray:
		a, ok := v.(Array)
		if !ok {
			return nil, shapeError(d, v)
		}
		itemType := xmpItemType(d.Type)
		for _, item := range a {
			if !validXmp(itemType, item) {
				return nil, valueError(d, item)
			}
		}
		return slices.Clone([]string(a)), nil

	case KindLangAlt:
		l, ok := v.(LangAlt)
		if !ok || len(l) == 0 {
			return nil, shapeError(d, v)
		}
		res := make([]string, 0, len(l))
		for _, lang := range l.Languages() {
			if !validLanguage(lang) {
				return nil, fmt.Errorf("%w: %s: invalid language tag %q", ErrMalformedLangAlt, d.Key, lang)
			}
			res = append(res, formatLangAltEntry(lang, l[lang]))
		}
		return res, nil

	default:
		t, ok := v.(Text)
		if !ok {
			return nil, shapeError(d, v)
		}
		if !validXmp(d.Type, string(t)) {
			return nil, valueError(d, string(t))
		}
		return []string{string(t)}, nil
	}
}

// xmpShape returns KindText, KindArray or KindLangAlt, depending on the
// structure of the values of the property.  For properties which are not
// in the built-in table, the engine type is used.
func xmpShape(d Descriptor) ValueKind {
	switch k := xmpKind(d.Type); k {
	case KindArray, KindLangAlt:
		return k
	default:
		return KindText
	}
}

// xmpItemType returns the item type of an array type like "bag Text".
func xmpItemType(tp string) string {
	_, item, ok := strings.Cut(tp, " ")
	if !ok {
		return ""
	}
	return item
}

var (
	xmpIntegerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
	xmpDatePattern    = regexp.MustCompile(`^([0-9]{4})(?:-([0-9]{2})(?:-([0-9]{2})` +
		`(?:T([0-9]{2}):([0-9]{2})(?::([0-9]{2})(?:\.[0-9]+)?)?(Z|[+-][0-9]{2}:[0-9]{2})?)?)?)?$`)
	xmpMIMEPattern = regexp.MustCompile(`^[^\s/]+/[^\s/]+$`)
)

// validXmp checks a simple XMP value against its type.
func validXmp(tp, s string) bool {
	switch tp {
	case "Boolean":
		return s == "True" || s == "False"
	case "Integer":
		return xmpIntegerPattern.MatchString(s)
	case "Real":
		_, err := strconv.ParseFloat(s, 64)
		return err == nil
	case "Rational":
		_, _, err := ParseRational(s, true)
		return err == nil && strings.Contains(s, "/")
	case "Date":
		return validXmpDate(s)
	case "MIMEType":
		return xmpMIMEPattern.MatchString(s)
	case "Locale":
		return validLanguage(s)
	default:
		return true
	}
}

// validXmpDate checks for the subset of ISO 8601 used by XMP: "YYYY",
// "YYYY-MM", "YYYY-MM-DD", optionally followed by "Thh:mm", seconds,
// fractional seconds and a time zone.
func validXmpDate(s string) bool {
	m := xmpDatePattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	num := func(s string) int {
		x, _ := strconv.Atoi(s)
		return x
	}
	if m[2] != "" {
		month := num(m[2])
		if month < 1 || month > 12 {
			return false
		}
		if m[3] != "" {
			day := num(m[3])
			last := time.Date(num(m[1]), time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
			if day < 1 || day > last {
				return false
			}
		}
	}
	if m[4] != "" {
		if num(m[4]) > 23 || num(m[5]) > 59 || m[6] != "" && num(m[6]) > 59 {
			return false
		}
	}
	if tz := m[7]; len(tz) == 6 {
		if num(tz[1:3]) > 23 || num(tz[4:]) > 59 {
			return false
		}
	}
	return true
}

func validLanguage(tag string) bool {
	if tag == DefaultLanguage {
		return true
	} else if tag == "" {
		return false
	}
	_, err := language.Parse(tag)
	return err == nil
}

// parseLangAltEntry splits a raw lang-alt occurrence "lang=<tag> <text>"
// into the language tag and the text.  The tag may be enclosed in double
// quotes.
func parseLangAltEntry(entry string) (string, string, error) {
	rest, ok := strings.CutPrefix(entry, "lang=")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedLangAlt, entry)
	}

	var lang string
	if strings.HasPrefix(rest, `"`) {
		end := strings.IndexByte(rest[1:], '"')
		if end < 0 {
			return "", "", fmt.Errorf("%w: %q", ErrMalformedLangAlt, entry)
		}
		lang, rest = rest[1:end+1], rest[end+2:]
		if rest != "" && rest[0] != ' ' {
			return "", "", fmt.Errorf("%w: %q", ErrMalformedLangAlt, entry)
		}
	} else {
		lang, rest, _ = strings.Cut(rest, " ")
		rest = " " + rest
	}
	if !validLanguage(lang) {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedLangAlt, entry)
	}

	text := strings.TrimPrefix(rest, " ")
	return lang, text, nil
}

func formatLangAltEntry(lang, text string) string {
	return "lang=" + lang + " " + text
}

var langAltSeparator = regexp.MustCompile(`,[ \t]*[^\s,]*lang=`)

// ParseLangAlt parses the joined form of a lang-alt value, for example
// `lang="x-default" some text, lang="fr-FR" du texte`.
func ParseLangAlt(s string) (LangAlt, error) {
	var entries []string
	start := 0
	for _, m := range langAltSeparator.FindAllStringIndex(s, -1) {
		entries = append(entries, s[start:m[0]])
		start = m[0] + 1
		for start < len(s) && (s[start] == ' ' || s[start] == '\t') {
			start++
		}
	}
	entries = append(entries, s[start:])

	res := make(LangAlt, len(entries))
	for _, entry := range entries {
		lang, text, err := parseLangAltEntry(entry)
		if err != nil {
			return nil, err
		}
		res[lang] = text
	}
	return res, nil
}

// FormatLangAlt returns the joined form of a lang-alt value, with the
// default language first.
func FormatLangAlt(l LangAlt) string {
	var parts []string
	for _, lang := range l.Languages() {
		parts = append(parts, `lang="`+lang+`" `+l[lang])
	}
	return strings.Join(parts, ", ")
}
