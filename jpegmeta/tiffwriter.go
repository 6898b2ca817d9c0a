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
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/exiv"
)

// TIFF tags which link the IFDs together
const (
	tagExifIFD      = 0x8769
	tagGPSIFD       = 0x8825
	tagInteropIFD   = 0xA005
	tagCompression  = 0x0103
	tagThumbOffset  = 0x0201
	tagThumbLength  = 0x0202
	compressionJPEG = 6
)

var tiffTypeCode = map[string]uint16{
	"Byte":      1,
	"Ascii":     2,
	"Short":     3,
	"Long":      4,
	"Rational":  5,
	"SByte":     6,
	"Undefined": 7,
	"SShort":    8,
	"SLong":     9,
	"SRational": 10,
	"Float":     11,
	"Double":    12,
	"Comment":   7,
}

type ifdEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	data  []byte
}

type ifd struct {
	entries []ifdEntry
}

func (d *ifd) add(e ifdEntry) {
	d.entries = append(d.entries, e)
}

// size returns the number of bytes needed for the directory and the
// values which do not fit into the entries.
func (d *ifd) size() int {
	n := 2 + 12*len(d.entries) + 4
	for _, e := range d.entries {
		if len(e.data) > 4 {
			n += len(e.data) + len(e.data)%2
		}
	}
	return n
}

// encode appends the directory, located at offset pos within the TIFF
// data, to buf.
func (d *ifd) encode(buf []byte, pos uint32, next uint32) []byte {
	slices.SortFunc(d.entries, func(a, b ifdEntry) int {
		return int(a.tag) - int(b.tag)
	})

	be := binary.BigEndian
	dataPos := pos + uint32(2+12*len(d.entries)+4)
	var extra []byte

	buf = be.AppendUint16(buf, uint16(len(d.entries)))
	for _, e := range d.entries {
		buf = be.AppendUint16(buf, e.tag)
		buf = be.AppendUint16(buf, e.typ)
		buf = be.AppendUint32(buf, e.count)
		if len(e.data) <= 4 {
			var inline [4]byte
			copy(inline[:], e.data)
			buf = append(buf, inline[:]...)
			continue
		}
		buf = be.AppendUint32(buf, dataPos+uint32(len(extra)))
		extra = append(extra, e.data...)
		if len(e.data)%2 != 0 {
			extra = append(extra, 0)
		}
	}
	buf = be.AppendUint32(buf, next)
	return append(buf, extra...)
}

func offsetEntry(tag uint16, offset uint32) ifdEntry {
	return ifdEntry{
		tag:   tag,
		typ:   4,
		count: 1,
		data:  binary.BigEndian.AppendUint32(nil, offset),
	}
}

// splitExif separates the datums which can be stored in the IFDs written
// by [encodeExif] from datums in other groups, for example maker notes.
func splitExif(datums []exiv.Datum) ([]exiv.Datum, []exiv.Key) {
	var keep []exiv.Datum
	var skipped []exiv.Key
	for _, d := range datums {
		switch d.Key.Group {
		case exiv.ExifImage, exiv.ExifPhoto, exiv.ExifGPS, exiv.ExifIop:
			keep = append(keep, d)
		default:
			skipped = append(skipped, d.Key)
		}
	}
	return keep, skipped
}

// encodeExif builds the payload of an EXIF APP1 segment, including the
// "Exif\0\0" prefix.  The TIFF structure is written in big-endian byte
// order.  If thumb is not empty, it is stored in IFD1.
func encodeExif(datums []exiv.Datum, thumb []byte) ([]byte, error) {
	var ifd0, exifIFD, gpsIFD, iopIFD, ifd1 ifd
	for _, d := range datums {
		e, err := exifEntry(d)
		if err != nil {
			return nil, err
		}
		switch d.Key.Group {
		case exiv.ExifImage:
			ifd0.add(e)
		case exiv.ExifPhoto:
			exifIFD.add(e)
		case exiv.ExifGPS:
			gpsIFD.add(e)
		case exiv.ExifIop:
			iopIFD.add(e)
		default:
			return nil, fmt.Errorf("%s: cannot write EXIF group %q", d.Key, d.Key.Group)
		}
	}

	hasIop := len(iopIFD.entries) > 0
	hasExif := len(exifIFD.entries) > 0 || hasIop
	hasGPS := len(gpsIFD.entries) > 0
	hasThumb := len(thumb) > 0

	// Placeholders keep the directory sizes fixed while the offsets are
	// being computed.
	if hasExif {
		ifd0.add(offsetEntry(tagExifIFD, 0))
	}
	if hasGPS {
		ifd0.add(offsetEntry(tagGPSIFD, 0))
	}
	if hasIop {
		exifIFD.add(offsetEntry(tagInteropIFD, 0))
	}
	if hasThumb {
		ifd1.add(ifdEntry{tag: tagCompression, typ: 3, count: 1,
			data: binary.BigEndian.AppendUint16(nil, compressionJPEG)})
		ifd1.add(offsetEntry(tagThumbOffset, 0))
		ifd1.add(offsetEntry(tagThumbLength, uint32(len(thumb))))
	}

	pos := uint32(8)
	ifd0Pos := pos
	pos += uint32(ifd0.size())
	var exifPos, iopPos, gpsPos, ifd1Pos, thumbPos uint32
	if hasExif {
		exifPos = pos
		pos += uint32(exifIFD.size())
	}
	if hasIop {
		iopPos = pos
		pos += uint32(iopIFD.size())
	}
	if hasGPS {
		gpsPos = pos
		pos += uint32(gpsIFD.size())
	}
	if hasThumb {
		ifd1Pos = pos
		pos += uint32(ifd1.size())
		thumbPos = pos
		pos += uint32(len(thumb))
	}
	if int(pos)+len(prefixExif) > maxSegmentData {
		return nil, fmt.Errorf("EXIF data: %w", errTooLarge)
	}

	setOffset(&ifd0, tagExifIFD, exifPos)
	setOffset(&ifd0, tagGPSIFD, gpsPos)
	setOffset(&exifIFD, tagInteropIFD, iopPos)
	setOffset(&ifd1, tagThumbOffset, thumbPos)

	buf := make([]byte, 0, len(prefixExif)+int(pos))
	buf = append(buf, prefixExif...)
	buf = append(buf, 'M', 'M', 0, 42)
	buf = binary.BigEndian.AppendUint32(buf, ifd0Pos)
	buf = ifd0.encode(buf, ifd0Pos, ifd1Pos)
	if hasExif {
		buf = exifIFD.encode(buf, exifPos, 0)
	}
	if hasIop {
		buf = iopIFD.encode(buf, iopPos, 0)
	}
	if hasGPS {
		buf = gpsIFD.encode(buf, gpsPos, 0)
	}
	if hasThumb {
		buf = ifd1.encode(buf, ifd1Pos, 0)
		buf = append(buf, thumb...)
	}
	return buf, nil
}

func setOffset(d *ifd, tag uint16, offset uint32) {
	for i := range d.entries {
		if d.entries[i].tag == tag {
			binary.BigEndian.PutUint32(d.entries[i].data, offset)
		}
	}
}

// exifEntry converts a datum into a TIFF directory entry.
func exifEntry(d exiv.Datum) (ifdEntry, error) {
	desc := exiv.Lookup(d.Key)
	if !desc.Known && !strings.HasPrefix(d.Key.Name, "0x") {
		return ifdEntry{}, fmt.Errorf("%s: unknown EXIF tag", d.Key)
	}
	tp := d.Type
	if tp == "" {
		tp = desc.Type
	}
	code, ok := tiffTypeCode[tp]
	if !ok {
		return ifdEntry{}, fmt.Errorf("%s: unknown TIFF type %q", d.Key, tp)
	}
	var raw string
	if len(d.Values) > 0 {
		raw = d.Values[0]
	}

	e := ifdEntry{tag: desc.ID, typ: code}
	be := binary.BigEndian
	fields := strings.Fields(raw)
	var err error
	switch tp {
	case "Ascii":
		e.data = append([]byte(raw), 0)
		e.count = uint32(len(e.data))
		return e, nil
	case "Comment":
		e.data, err = encodeComment(raw)
		e.count = uint32(len(e.data))
	case "Byte", "Undefined", "SByte":
		for _, f := range fields {
			var x int64
			x, err = strconv.ParseInt(f, 10, 16)
			if err != nil {
				break
			}
			e.data = append(e.data, byte(x))
		}
		e.count = uint32(len(e.data))
	case "Short", "SShort":
		for _, f := range fields {
			var x int64
			x, err = strconv.ParseInt(f, 10, 32)
			if err != nil {
				break
			}
			e.data = be.AppendUint16(e.data, uint16(x))
		}
		e.count = uint32(len(fields))
	case "Long", "SLong":
		for _, f := range fields {
			var x int64
			x, err = strconv.ParseInt(f, 10, 64)
			if err != nil {
				break
			}
			e.data = be.AppendUint32(e.data, uint32(x))
		}
		e.count = uint32(len(fields))
	case "Rational", "SRational":
		for _, f := range fields {
			var num, den int64
			num, den, err = exiv.ParseRational(f, tp == "SRational")
			if err != nil {
				break
			}
			e.data = be.AppendUint32(e.data, uint32(num))
			e.data = be.AppendUint32(e.data, uint32(den))
		}
		e.count = uint32(len(fields))
	case "Float":
		for _, f := range fields {
			var x float64
			x, err = strconv.ParseFloat(f, 32)
			if err != nil {
				break
			}
			e.data = be.AppendUint32(e.data, math.Float32bits(float32(x)))
		}
		e.count = uint32(len(fields))
	case "Double":
		for _, f := range fields {
			var x float64
			x, err = strconv.ParseFloat(f, 64)
			if err != nil {
				break
			}
			e.data = be.AppendUint64(e.data, math.Float64bits(x))
		}
		e.count = uint32(len(fields))
	}
	if err != nil {
		return ifdEntry{}, fmt.Errorf("%s: invalid value %q: %w", d.Key, raw, err)
	}
	return e, nil
}
