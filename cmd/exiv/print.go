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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/exiv"
)

func newPrintCmd(a *app) *cobra.Command {
	var namespaces []string
	var human bool

	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Print the metadata of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := parseSelection(namespaces)
			if err != nil {
				return err
			}
			img, err := a.open(args[0])
			if err != nil {
				return err
			}
			rows, err := metadataRows(img.Metadata(), sel, human)
			if err != nil {
				return err
			}
			return a.writeRows(rows)
		},
	}
	cmd.Flags().StringSliceVarP(&namespaces, "namespace", "n", nil, "namespaces to print (exif, iptc, xmp)")
	cmd.Flags().BoolVarP(&human, "human", "H", false, "show EXIF values in human readable form")
	return cmd
}

// parseSelection converts namespace names into a selection.  An empty
// list selects all namespaces.
func parseSelection(names []string) (exiv.Selection, error) {
	if len(names) == 0 {
		return exiv.SelectAll, nil
	}
	var sel exiv.Selection
	for _, name := range names {
		switch strings.ToLower(name) {
		case "exif":
			sel |= exiv.SelectExif
		case "iptc":
			sel |= exiv.SelectIptc
		case "xmp":
			sel |= exiv.SelectXmp
		default:
			return 0, fmt.Errorf("unknown namespace %q", name)
		}
	}
	return sel, nil
}

func metadataRows(md *exiv.Metadata, sel exiv.Selection, human bool) ([]row, error) {
	var rows []row
	for _, ns := range []exiv.Namespace{exiv.Exif, exiv.Iptc, exiv.Xmp} {
		if !sel.Has(ns) {
			continue
		}
		types := make(map[exiv.Key]string)
		for _, d := range md.Datums(ns) {
			if _, seen := types[d.Key]; !seen {
				types[d.Key] = d.Type
			}
		}

		for _, key := range md.Keys(ns) {
			r := row{Key: key.String(), Type: types[key]}
			var err error
			switch ns {
			case exiv.Exif:
				var tag *exiv.ExifTag
				tag, err = md.ExifTag(r.Key)
				if err == nil {
					r.Value, err = tag.RawValue()
				}
				if err == nil && human {
					r.Human, err = tag.HumanValue()
				}
			case exiv.Iptc:
				var tag *exiv.IptcTag
				tag, err = md.IptcTag(r.Key)
				if err == nil {
					var values []string
					values, err = tag.RawValues()
					r.Value = strings.Join(values, ", ")
				}
			case exiv.Xmp:
				var tag *exiv.XmpTag
				tag, err = md.XmpTag(r.Key)
				if err == nil {
					r.Value, err = tag.RawValue()
				}
			}
			if err != nil {
				return nil, err
			}
			rows = append(rows, r)
		}
	}
	return rows, nil
}
