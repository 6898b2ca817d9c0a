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
	"time"

	"golang.org/x/exp/slices"
)

// IPTC raw values for Date and Time datasets use the following layouts.
const (
	IptcDateLayout = "2006-01-02"
	IptcTimeLayout = "15:04:05-07:00"
)

// iptcCodec implements the value model for IPTC datasets.  Every occurrence
// of a dataset is stored as a separate raw value.
type iptcCodec struct{}

func (iptcCodec) Decode(d Descriptor, raw []string) (Value, error) {
	if d.Repeatable || !d.Known && len(raw) > 1 {
		return append(Array{}, raw...), nil
	}
	if len(raw) == 0 {
		return Text(""), nil
	}
	return Text(raw[0]), nil
}

func (iptcCodec) Encode(d Descriptor, v Value) ([]string, error) {
	var res []string
	switch v := v.(type) {
	case Text:
		res = []string{string(v)}
	case Array:
		if d.Known && !d.Repeatable && len(v) > 1 {
			return nil, shapeError(d, v)
		}
		res = slices.Clone([]string(v))
	default:
		return nil, shapeError(d, v)
	}
	for _, s := range res {
		if !validIptc(d.Type, s) {
			return nil, valueError(d, s)
		}
	}
	return res, nil
}

func validIptc(tp, s string) bool {
	switch tp {
	case "Digits":
		if s == "" {
			return false
		}
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
		return true
	case "Date":
		_, err := time.Parse(IptcDateLayout, s)
		return err == nil
	case "Time":
		_, err := time.Parse(IptcTimeLayout, s)
		return err == nil
	case "Short":
		_, err := strconv.ParseUint(s, 10, 16)
		return err == nil
	default:
		return true
	}
}
