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

// Package jpegmeta reads and writes EXIF, IPTC and XMP metadata in JPEG
// files.
//
// Importing this package registers the engine with package exiv:
//
//	import _ "seehuhn.de/go/exiv/jpegmeta"
//
// EXIF data is read from the APP1 segment using goexif and is written back
// as a big-endian TIFF structure.  Only the standard IFDs (IFD0, Exif, GPS,
// Interoperability and the thumbnail IFD) are supported; maker notes are
// kept as opaque byte strings.  IPTC data is stored in the Photoshop APP13
// segment and XMP data in a second APP1 segment.  Extended XMP is not
// supported.
package jpegmeta

import (
	"fmt"

	"seehuhn.de/go/exiv"
)

func init() {
	exiv.RegisterEngine("jpeg", []byte{0xFF, markerSOI, 0xFF}, Engine{})
}

// Engine implements [exiv.Engine] for JPEG files.
type Engine struct{}

// Decode implements the [exiv.Engine] interface.
func (Engine) Decode(data []byte) (*exiv.RawMetadata, error) {
	segs, err := parseSegments(data)
	if err != nil {
		return nil, err
	}

	raw := &exiv.RawMetadata{MimeType: "image/jpeg"}
	raw.Width, raw.Height = frameSize(segs)

	var haveExif, haveXmp, haveIptc bool
	for _, seg := range segs {
		switch {
		case !haveExif && seg.hasPrefix(markerAPP1, prefixExif):
			haveExif = true
			datums, thumb, err := decodeExif(seg.data[len(prefixExif):])
			if err != nil {
				return nil, fmt.Errorf("EXIF: %w", err)
			}
			raw.Exif = datums
			if thumb != nil {
				raw.Previews = append(raw.Previews, *thumb)
			}
		case !haveXmp && seg.hasPrefix(markerAPP1, prefixXMP):
			haveXmp = true
			datums, err := decodeXmp(seg.data[len(prefixXMP):])
			if err != nil {
				return nil, fmt.Errorf("XMP: %w", err)
			}
			raw.Xmp = datums
		case !haveIptc && seg.hasPrefix(markerAPP13, prefixPhotosh):
			haveIptc = true
			datums, err := decodeIptc(seg.data)
			if err != nil {
				return nil, fmt.Errorf("IPTC: %w", err)
			}
			raw.Iptc = datums
		}
	}
	return raw, nil
}

// Encode implements the [exiv.Engine] interface.
//
// The metadata segments are replaced and all other segments are copied
// unchanged.  The first JPEG preview in raw.Previews, if any, is stored as
// the EXIF thumbnail.  EXIF datums outside the IFD0, Exif, GPS and
// Interoperability directories are not written and are listed in
// raw.Skipped.
func (Engine) Encode(data []byte, raw *exiv.RawMetadata) ([]byte, error) {
	segs, err := parseSegments(data)
	if err != nil {
		return nil, err
	}

	var oldPhotoshop []byte
	var kept []segment
	for _, seg := range segs {
		switch {
		case seg.hasPrefix(markerAPP1, prefixExif), seg.hasPrefix(markerAPP1, prefixXMP):
			continue
		case seg.hasPrefix(markerAPP13, prefixPhotosh):
			if oldPhotoshop == nil {
				oldPhotoshop = seg.data
			}
			continue
		}
		kept = append(kept, seg)
	}

	var thumb []byte
	for _, p := range raw.Previews {
		if p.MimeType == "image/jpeg" {
			thumb = p.Data
			break
		}
	}

	exif, skipped := splitExif(raw.Exif)
	raw.Skipped = append(raw.Skipped, skipped...)

	var meta []segment
	if len(exif) > 0 || len(thumb) > 0 {
		payload, err := encodeExif(exif, thumb)
		if err != nil {
			return nil, fmt.Errorf("EXIF: %w", err)
		}
		meta = append(meta, segment{marker: markerAPP1, data: payload})
	}
	if len(raw.Xmp) > 0 {
		packet, err := encodeXmp(raw.Xmp)
		if err != nil {
			return nil, fmt.Errorf("XMP: %w", err)
		}
		payload := append(append([]byte{}, prefixXMP...), packet...)
		meta = append(meta, segment{marker: markerAPP1, data: payload})
	}
	payload, err := encodeIptc(oldPhotoshop, raw.Iptc)
	if err != nil {
		return nil, fmt.Errorf("IPTC: %w", err)
	}
	if payload != nil {
		meta = append(meta, segment{marker: markerAPP13, data: payload})
	}

	// Metadata goes after SOI and a JFIF APP0 segment, if present.
	pos := 1
	for pos < len(kept) && kept[pos].marker == markerAPP0 {
		pos++
	}
	out := make([]segment, 0, len(kept)+len(meta))
	out = append(out, kept[:pos]...)
	out = append(out, meta...)
	out = append(out, kept[pos:]...)

	return writeSegments(out)
}
