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
	"github.com/spf13/cobra"

	"seehuhn.de/go/exiv"
)

func newCopyCmd(a *app) *cobra.Command {
	var exif, iptc, xmp bool

	cmd := &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Copy metadata from one image to another",
		Long: "Copy metadata from one image to another.  Tags of the destination\n" +
			"which are not present in the source are kept.  Without flags, all\n" +
			"namespaces are copied.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sel exiv.Selection
			if exif {
				sel |= exiv.SelectExif
			}
			if iptc {
				sel |= exiv.SelectIptc
			}
			if xmp {
				sel |= exiv.SelectXmp
			}
			if sel == 0 {
				sel = exiv.SelectAll
			}

			src, err := a.open(args[0])
			if err != nil {
				return err
			}
			dst, err := a.open(args[1])
			if err != nil {
				return err
			}
			err = src.CopyMetadata(dst, sel)
			if err != nil {
				return err
			}
			return dst.WriteMetadata()
		},
	}
	cmd.Flags().BoolVar(&exif, "exif", false, "copy EXIF tags")
	cmd.Flags().BoolVar(&iptc, "iptc", false, "copy IPTC datasets")
	cmd.Flags().BoolVar(&xmp, "xmp", false, "copy XMP properties")
	return cmd
}
