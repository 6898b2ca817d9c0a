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
	"os"
)

// Preview is an embedded preview image, for example an EXIF thumbnail.
type Preview struct {
	MimeType  string
	Extension string // file name extension, including the leading dot
	Size      int
	Width     int
	Height    int
	Data      []byte
}

// WriteFile writes the preview image data to a file.  The extension is not
// added to the file name.
func (p *Preview) WriteFile(path string) error {
	err := os.WriteFile(path, p.Data, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

func clonePreviews(pp []Preview) []Preview {
	if len(pp) == 0 {
		return nil
	}
	res := make([]Preview, len(pp))
	for i, p := range pp {
		p.Data = append([]byte(nil), p.Data...)
		if p.Size == 0 {
			p.Size = len(p.Data)
		}
		res[i] = p
	}
	return res
}
