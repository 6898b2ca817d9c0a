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
	"math"
	"strconv"
	"strings"
)

// exifCodec implements the value model for EXIF tags.  Every EXIF tag holds
// exactly one raw value.
type exifCodec struct{}

func (exifCodec) Decode(d Descriptor, raw []string) (Value, error) {
	if len(raw) == 0 {
		return Text(""), nil
	}
	return Text(raw[0]), nil
}

func (exifCodec) Encode(d Descriptor, v Value) ([]string, error) {
	t, ok := v.(Text)
	if !ok {
		return nil, shapeError(d, v)
	}
	s, err := canonicalExif(d, string(t))
	if err != nil {
		return nil, err
	}
	return []string{s}, nil
}

// canonicalExif checks that s is a valid raw value for the TIFF type of the
// tag and returns its canonical form.
//
// Numeric values consist of one or more components separated by white
// space.  Rationals are written as "n/d"; decimal input is converted to the
// closest fraction.  Undefined values are lists of decimal byte values.
func canonicalExif(d Descriptor, s string) (string, error) {
	switch d.Type {
	case "Byte":
		return canonicalInts(d, s, 0, math.MaxUint8)
	case "SByte":
		return canonicalInts(d, s, math.MinInt8, math.MaxInt8)
	case "Undefined":
		return canonicalInts(d, s, 0, math.MaxUint8)
	case "Short":
		return canonicalInts(d, s, 0, math.MaxUint16)
	case "SShort":
		return canonicalInts(d, s, math.MinInt16, math.MaxInt16)
	case "Long":
		return canonicalInts(d, s, 0, math.MaxUint32)
	case "SLong":
		return canonicalInts(d, s, math.MinInt32, math.MaxInt32)
	case "Rational", "SRational":
		fields := strings.Fields(s)
		if len(fields) == 0 {
			return "", valueError(d, s)
		}
		for i, f := range fields {
			num, den, err := ParseRational(f, d.Type == "SRational")
			if err != nil {
				return "", valueError(d, s)
			}
			fields[i] = formatRational(num, den)
		}
		return strings.Join(fields, " "), nil
	case "Float", "Double":
		fields := strings.Fields(s)
		if len(fields) == 0 {
			return "", valueError(d, s)
		}
		bits := 64
		if d.Type == "Float" {
			bits = 32
		}
		for i, f := range fields {
			x, err := strconv.ParseFloat(f, bits)
			if err != nil {
				return "", valueError(d, s)
			}
			fields[i] = strconv.FormatFloat(x, 'g', -1, bits)
		}
		return strings.Join(fields, " "), nil
	default:
		// Ascii, Comment and types we don't know about
		return s, nil
	}
}

func canonicalInts(d Descriptor, s string, lo, hi int64) (string, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 && d.Type != "Undefined" {
		return "", valueError(d, s)
	}
	for i, f := range fields {
		x, err := strconv.ParseInt(f, 10, 64)
		if err != nil || x < lo || x > hi {
			return "", valueError(d, s)
		}
		fields[i] = strconv.FormatInt(x, 10)
	}
	return strings.Join(fields, " "), nil
}
