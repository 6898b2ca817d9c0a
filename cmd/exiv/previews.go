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
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func newPreviewsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "previews FILE DIR",
		Short: "Extract the preview images embedded in an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := a.open(args[0])
			if err != nil {
				return err
			}
			base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			for i, p := range img.Previews() {
				fname := filepath.Join(args[1], fmt.Sprintf("%s-preview%d%s", base, i+1, p.Extension))
				err := p.WriteFile(fname)
				if err != nil {
					return err
				}
				a.log.Info().Str("file", fname).Int("width", p.Width).Int("height", p.Height).Msg("preview written")
				fmt.Fprintln(a.out, fname)
			}
			return nil
		},
	}
}
