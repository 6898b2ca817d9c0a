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
	"strings"

	"golang.org/x/exp/slices"
)

// Datum is one entry of a tag store, in the raw form used by the metadata
// engine.
//
// EXIF datums hold exactly one value.  Each occurrence of an IPTC dataset is
// a separate datum with one value.  XMP datums hold one value for simple
// properties, one value per item for arrays, and one "lang=<tag> <text>"
// value per language for language alternatives.
type Datum struct {
	Key    Key
	Type   string
	Values []string
}

func (d Datum) String() string {
	return d.Key.String() + " (" + d.Type + "): " + strings.Join(d.Values, ", ")
}

func (d Datum) clone() Datum {
	d.Values = slices.Clone(d.Values)
	return d
}

func cloneDatums(dd []Datum) []Datum {
	if dd == nil {
		return nil
	}
	res := make([]Datum, len(dd))
	for i, d := range dd {
		res[i] = d.clone()
	}
	return res
}

// checkDatums verifies that all datums belong to the namespace ns and that
// EXIF and XMP keys are unique.
func checkDatums(ns Namespace, dd []Datum) error {
	seen := make(map[Key]bool, len(dd))
	for _, d := range dd {
		if d.Key.Namespace != ns {
			return fmt.Errorf("%w: %s datum in %s store", ErrInvalidKey, d.Key, ns)
		}
		if ns == Iptc {
			if len(d.Values) != 1 {
				return fmt.Errorf("%w: %s: IPTC datum with %d values", ErrTypeMismatch, d.Key, len(d.Values))
			}
			continue
		}
		if seen[d.Key] {
			return fmt.Errorf("%w: %s: duplicate key", ErrInvalidKey, d.Key)
		}
		seen[d.Key] = true
	}
	return nil
}
