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
	"errors"
	"fmt"
	"image/jpeg"
	"strconv"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
	"golang.org/x/exp/slices"
	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/exiv"
)

// tiffTypeName maps TIFF field types to the type names used in datums.
var tiffTypeName = map[tiff.DataType]string{
	tiff.DTByte:      "Byte",
	tiff.DTAscii:     "Ascii",
	tiff.DTShort:     "Short",
	tiff.DTLong:      "Long",
	tiff.DTRational:  "Rational",
	tiff.DTSByte:     "SByte",
	tiff.DTUndefined: "Undefined",
	tiff.DTSShort:    "SShort",
	tiff.DTSLong:     "SLong",
	tiff.DTSRational: "SRational",
	tiff.DTFloat:     "Float",
	tiff.DTDouble:    "Double",
}

// fields which describe the file layout and are recreated on write
var exifStructural = map[exif.FieldName]bool{
	exif.ExifIFDPointer:                   true,
	exif.GPSInfoIFDPointer:                true,
	exif.InteroperabilityIFDPointer:       true,
	exif.ThumbJPEGInterchangeFormat:       true,
	exif.ThumbJPEGInterchangeFormatLength: true,
}

// groupOrder fixes the order of EXIF datums by IFD.
var groupOrder = map[string]int{
	exiv.ExifImage: 0,
	exiv.ExifPhoto: 1,
	exiv.ExifGPS:   2,
	exiv.ExifIop:   3,
}

type exifWalker struct {
	bigEndian bool
	datums    []exiv.Datum
	ids       map[exiv.Key]uint16
	errs      []error
}

func (w *exifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if exifStructural[name] {
		return nil
	}

	var key exiv.Key
	switch {
	case strings.HasPrefix(string(name), "GPS"):
		key = exiv.ExifKeyFor(exiv.ExifGPS, tag.Id)
	case name == exif.InteroperabilityIndex:
		key = exiv.ExifKeyFor(exiv.ExifIop, tag.Id)
	default:
		key = exiv.ExifKeyFor(exiv.ExifImage, tag.Id)
		if !exiv.Lookup(key).Known {
			key = exiv.ExifKeyFor(exiv.ExifPhoto, tag.Id)
		}
	}

	tp, ok := tiffTypeName[tag.Type]
	if !ok {
		w.errs = append(w.errs, fmt.Errorf("%s: unsupported TIFF type %d", key, tag.Type))
		return nil
	}
	if d := exiv.Lookup(key); d.Type == "Comment" && tag.Type == tiff.DTUndefined {
		tp = "Comment"
	}

	val, err := w.rawValue(tp, tag)
	if err != nil {
		w.errs = append(w.errs, fmt.Errorf("%s: %w", key, err))
		return nil
	}
	w.datums = append(w.datums, exiv.Datum{Key: key, Type: tp, Values: []string{val}})
	w.ids[key] = tag.Id
	return nil
}

// rawValue converts a TIFF field into the textual form used in datums.
func (w *exifWalker) rawValue(tp string, tag *tiff.Tag) (string, error) {
	n := int(tag.Count)
	switch tp {
	case "Ascii":
		val := tag.Val
		if i := bytes.IndexByte(val, 0); i >= 0 {
			val = val[:i]
		}
		return string(val), nil

	case "Comment":
		return decodeComment(tag.Val, w.bigEndian)

	case "Byte", "Undefined":
		val := tag.Val
		if len(val) > n {
			val = val[:n]
		}
		parts := make([]string, len(val))
		for i, b := range val {
			parts[i] = strconv.Itoa(int(b))
		}
		return strings.Join(parts, " "), nil

	case "SByte":
		val := tag.Val
		if len(val) > n {
			val = val[:n]
		}
		parts := make([]string, len(val))
		for i, b := range val {
			parts[i] = strconv.Itoa(int(int8(b)))
		}
		return strings.Join(parts, " "), nil

	case "Rational", "SRational":
		parts := make([]string, n)
		for i := range parts {
			num, den, err := tag.Rat2(i)
			if err != nil {
				return "", err
			}
			parts[i] = strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10)
		}
		return strings.Join(parts, " "), nil

	case "Float", "Double":
		bits := 64
		if tp == "Float" {
			bits = 32
		}
		parts := make([]string, n)
		for i := range parts {
			x, err := tag.Float(i)
			if err != nil {
				return "", err
			}
			parts[i] = strconv.FormatFloat(x, 'g', -1, bits)
		}
		return strings.Join(parts, " "), nil

	default: // integer types
		parts := make([]string, n)
		for i := range parts {
			x, err := tag.Int64(i)
			if err != nil {
				return "", err
			}
			parts[i] = strconv.FormatInt(x, 10)
		}
		return strings.Join(parts, " "), nil
	}
}

// Character code prefixes of EXIF comment fields.
var (
	commentASCII   = []byte("ASCII\x00\x00\x00")
	commentUnicode = []byte("UNICODE\x00")
	commentJIS     = []byte("JIS\x00\x00\x00\x00\x00")
)

// decodeComment strips the character code prefix from an EXIF comment.
func decodeComment(val []byte, bigEndian bool) (string, error) {
	if len(val) < 8 {
		return strings.TrimRight(string(val), "\x00 "), nil
	}
	head, body := val[:8], val[8:]
	switch {
	case bytes.Equal(head, commentUnicode):
		order := unicode.LittleEndian
		if bigEndian {
			order = unicode.BigEndian
		}
		dec := unicode.UTF16(order, unicode.IgnoreBOM).NewDecoder()
		text, err := dec.Bytes(body)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(text), "\x00 "), nil
	case bytes.Equal(head, commentJIS):
		return "", errors.New("JIS encoded comments are not supported")
	default:
		// ASCII or undefined character code
		return strings.TrimRight(string(body), "\x00 "), nil
	}
}

// encodeComment prepends the character code prefix to an EXIF comment.
// Non-ASCII text is stored as UTF-16 in the byte order of the file.
func encodeComment(text string) ([]byte, error) {
	isASCII := true
	for i := 0; i < len(text); i++ {
		if text[i] >= 0x80 {
			isASCII = false
			break
		}
	}
	if isASCII {
		return append(slices.Clone(commentASCII), text...), nil
	}
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	body, err := enc.Bytes([]byte(text))
	if err != nil {
		return nil, err
	}
	return append(slices.Clone(commentUnicode), body...), nil
}

// decodeExif reads the EXIF datums and the embedded thumbnail from the
// payload of an APP1 segment, without the "Exif\0\0" prefix.
func decodeExif(tiffData []byte) ([]exiv.Datum, *exiv.Preview, error) {
	x, err := exif.Decode(bytes.NewReader(tiffData))
	if err != nil && (x == nil || exif.IsCriticalError(err)) {
		return nil, nil, err
	}

	w := &exifWalker{
		bigEndian: bytes.HasPrefix(tiffData, []byte("MM")),
		ids:       make(map[exiv.Key]uint16),
	}
	err = x.Walk(w)
	if err != nil {
		return nil, nil, err
	}
	if len(w.errs) > 0 && len(w.datums) == 0 {
		return nil, nil, errors.Join(w.errs...)
	}

	// Walk visits the fields in random order
	slices.SortFunc(w.datums, func(a, b exiv.Datum) int {
		if d := groupOrder[a.Key.Group] - groupOrder[b.Key.Group]; d != 0 {
			return d
		}
		return int(w.ids[a.Key]) - int(w.ids[b.Key])
	})

	var thumb *exiv.Preview
	if data, err := x.JpegThumbnail(); err == nil && len(data) > 0 {
		thumb = &exiv.Preview{
			MimeType:  "image/jpeg",
			Extension: ".jpg",
			Size:      len(data),
			Data:      data,
		}
		if cfg, err := jpeg.DecodeConfig(bytes.NewReader(data)); err == nil {
			thumb.Width = cfg.Width
			thumb.Height = cfg.Height
		}
	}

	return w.datums, thumb, nil
}
