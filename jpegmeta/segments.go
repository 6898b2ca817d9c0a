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

package jpegmeta

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// JPEG markers
const (
	markerRaw   = 0x00 // entropy coded data after SOS, not a real marker
	markerSOI   = 0xD8
	markerEOI   = 0xD9
	markerSOS   = 0xDA
	markerAPP0  = 0xE0
	markerAPP1  = 0xE1
	markerAPP13 = 0xED
)

// maxSegmentData is the largest payload a marker segment can hold.
const maxSegmentData = 0xFFFF - 2

var (
	errNotJPEG    = errors.New("not a JPEG file")
	errTruncated  = errors.New("truncated JPEG segment")
	errTooLarge   = errors.New("metadata does not fit into a JPEG segment")
	prefixExif    = []byte("Exif\x00\x00")
	prefixXMP     = []byte("http://ns.adobe.com/xap/1.0/\x00")
	prefixPhotosh = []byte("Photoshop 3.0\x00")
)

type segment struct {
	marker byte
	data   []byte
}

func (s segment) hasPrefix(marker byte, prefix []byte) bool {
	return s.marker == marker && bytes.HasPrefix(s.data, prefix)
}

// parseSegments splits a JPEG file into marker segments.  Everything from
// the start of the entropy coded data onwards is kept in a single segment
// with marker markerRaw.
func parseSegments(data []byte) ([]segment, error) {
	if len(data) < 3 || data[0] != 0xFF || data[1] != markerSOI {
		return nil, errNotJPEG
	}
	segs := []segment{{marker: markerSOI}}

	i := 2
	for i < len(data) {
		if data[i] != 0xFF {
			return nil, fmt.Errorf("unexpected byte 0x%02x at offset %d", data[i], i)
		}
		// skip fill bytes
		for i < len(data) && data[i] == 0xFF {
			i++
		}
		if i >= len(data) {
			return nil, errTruncated
		}
		marker := data[i]
		i++

		switch {
		case marker == markerEOI:
			segs = append(segs, segment{marker: marker})
			return segs, nil
		case marker == markerSOI || marker >= 0xD0 && marker <= 0xD7:
			segs = append(segs, segment{marker: marker})
			continue
		}

		if i+2 > len(data) {
			return nil, errTruncated
		}
		segLen := int(binary.BigEndian.Uint16(data[i:i+2])) - 2
		i += 2
		if segLen < 0 || i+segLen > len(data) {
			return nil, errTruncated
		}
		segs = append(segs, segment{marker: marker, data: data[i : i+segLen]})
		i += segLen

		if marker == markerSOS {
			segs = append(segs, segment{marker: markerRaw, data: data[i:]})
			return segs, nil
		}
	}
	return segs, nil
}

// writeSegments joins segments into a JPEG file.
func writeSegments(segs []segment) ([]byte, error) {
	var buf bytes.Buffer
	for _, seg := range segs {
		switch {
		case seg.marker == markerRaw:
			buf.Write(seg.data)
		case seg.marker == markerSOI || seg.marker == markerEOI || seg.marker >= 0xD0 && seg.marker <= 0xD7:
			buf.Write([]byte{0xFF, seg.marker})
		default:
			if len(seg.data) > maxSegmentData {
				return nil, fmt.Errorf("marker 0x%02x: %w", seg.marker, errTooLarge)
			}
			buf.Write([]byte{0xFF, seg.marker})
			var length [2]byte
			binary.BigEndian.PutUint16(length[:], uint16(len(seg.data)+2))
			buf.Write(length[:])
			buf.Write(seg.data)
		}
	}
	return buf.Bytes(), nil
}

// isSOF reports whether marker starts a frame.
func isSOF(marker byte) bool {
	switch marker {
	case 0xC0, 0xC1, 0xC2, 0xC3, 0xC5, 0xC6, 0xC7, 0xC9, 0xCA, 0xCB, 0xCD, 0xCE, 0xCF:
		return true
	}
	return false
}

// frameSize returns the image dimensions from the first SOF segment.
func frameSize(segs []segment) (width, height int) {
	for _, seg := range segs {
		if !isSOF(seg.marker) || len(seg.data) < 5 {
			continue
		}
		// precision (1 byte), height (2 bytes), width (2 bytes)
		height = int(binary.BigEndian.Uint16(seg.data[1:3]))
		width = int(binary.BigEndian.Uint16(seg.data[3:5]))
		return width, height
	}
	return 0, 0
}
