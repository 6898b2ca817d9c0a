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

func newTagsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tags [exif GROUP | iptc RECORD | xmp PREFIX]",
		Short: "List the known tags",
		Long: "List the known tags of an EXIF group, an IPTC record or an XMP schema.\n" +
			"Without arguments, the available groups are listed.",
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				fmt.Fprintln(a.out, "exif:", strings.Join(exifGroups, " "))
				fmt.Fprintln(a.out, "iptc: Envelope Application2")
				fmt.Fprintln(a.out, "xmp: ", strings.Join(xmpSchemas, " "))
				return nil
			}

			var dd []exiv.Descriptor
			switch strings.ToLower(args[0]) {
			case "exif":
				dd = exiv.ExifTags(args[1])
			case "iptc":
				dd = exiv.IptcDatasets(args[1])
			case "xmp":
				dd = exiv.XmpProperties(args[1])
			default:
				return fmt.Errorf("unknown namespace %q", args[0])
			}
			if len(dd) == 0 {
				return fmt.Errorf("no known tags in %s %s", args[0], args[1])
			}

			rows := make([]row, len(dd))
			for i, d := range dd {
				rows[i] = row{Key: d.Key.String(), Type: d.Type, Value: d.Label}
			}
			return a.writeRows(rows)
		},
	}
}

var exifGroups = []string{exiv.ExifImage, exiv.ExifPhoto, exiv.ExifGPS, exiv.ExifIop}

var xmpSchemas = []string{
	"dc", "xmp", "xmpRights", "xmpMM", "photoshop", "pdf", "tiff", "exif", "aux", "iptc",
}
