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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/exiv"
)

const (
	resourceIPTC = 0x0404 // Photoshop image resource holding IPTC-IIM data
	iimTagMarker = 0x1C
)

var (
	signature8BIM      = []byte("8BIM")
	errMalformedIPTC   = errors.New("malformed IPTC data")
	errMalformedPSData = errors.New("malformed Photoshop resource block")
)

// psResource is one image resource block in a Photoshop APP13 segment.
type psResource struct {
	id   uint16
	name []byte // Pascal string, including the length byte and padding
	data []byte
}

// parseResources splits the payload of an APP13 segment, without the
// "Photoshop 3.0\0" prefix, into resource blocks.
func parseResources(data []byte) ([]psResource, error) {
	var res []psResource
	i := 0
	for i+4 <= len(data) {
		if string(data[i:i+4]) != string(signature8BIM) {
			// some writers pad the segment with zero bytes
			break
		}
		i += 4
		if i+3 > len(data) {
			return nil, errMalformedPSData
		}
		id := binary.BigEndian.Uint16(data[i : i+2])
		i += 2

		nameLen := 1 + int(data[i])
		nameLen += nameLen % 2
		if i+nameLen+4 > len(data) {
			return nil, errMalformedPSData
		}
		name := data[i : i+nameLen]
		i += nameLen

		size := int(binary.BigEndian.Uint32(data[i : i+4]))
		i += 4
		if size < 0 || i+size > len(data) {
			return nil, errMalformedPSData
		}
		res = append(res, psResource{id: id, name: name, data: data[i : i+size]})
		i += size + size%2
	}
	return res, nil
}

// writeResources is the inverse of parseResources.
func writeResources(res []psResource) []byte {
	var buf []byte
	for _, r := range res {
		buf = append(buf, signature8BIM...)
		buf = binary.BigEndian.AppendUint16(buf, r.id)
		if len(r.name) == 0 {
			buf = append(buf, 0, 0)
		} else {
			buf = append(buf, r.name...)
		}
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(r.data)))
		buf = append(buf, r.data...)
		if len(r.data)%2 != 0 {
			buf = append(buf, 0)
		}
	}
	return buf
}

// decodeIIM reads the datasets of an IPTC-IIM stream.  Each occurrence of
// a dataset becomes a separate datum.
func decodeIIM(data []byte) ([]exiv.Datum, error) {
	var res []exiv.Datum
	i := 0
	for i+5 <= len(data) {
		if data[i] != iimTagMarker {
			break
		}
		record := uint16(data[i+1])
		dataset := uint16(data[i+2])
		size := int(binary.BigEndian.Uint16(data[i+3 : i+5]))
		i += 5
		if size&0x8000 != 0 {
			// extended dataset, the low bits give the size of the length field
			n := size & 0x7FFF
			if n > 4 || i+n > len(data) {
				return res, errMalformedIPTC
			}
			size = 0
			for _, b := range data[i : i+n] {
				size = size<<8 | int(b)
			}
			i += n
		}
		if i+size > len(data) {
			return res, errMalformedIPTC
		}
		val := data[i : i+size]
		i += size

		key := exiv.IptcKeyFor(record, dataset)
		tp := exiv.Lookup(key).Type
		if tp == "" {
			tp = "String"
		}
		res = append(res, exiv.Datum{
			Key:    key,
			Type:   tp,
			Values: []string{iimToRaw(tp, val)},
		})
	}
	return res, nil
}

// iimToRaw converts the binary form of a dataset into the raw text form.
func iimToRaw(tp string, val []byte) string {
	s := string(val)
	switch tp {
	case "Short":
		if len(val) == 2 {
			return strconv.Itoa(int(binary.BigEndian.Uint16(val)))
		}
	case "Date":
		// CCYYMMDD
		if len(s) == 8 && isDigits(s) {
			return s[:4] + "-" + s[4:6] + "-" + s[6:]
		}
	case "Time":
		// HHMMSS±HHMM
		switch {
		case len(s) == 11 && isDigits(s[:6]) && (s[6] == '+' || s[6] == '-') && isDigits(s[7:]):
			return s[:2] + ":" + s[2:4] + ":" + s[4:6] + s[6:9] + ":" + s[9:]
		case len(s) == 6 && isDigits(s):
			return s[:2] + ":" + s[2:4] + ":" + s[4:] + "+00:00"
		}
	}
	return s
}

// rawToIIM is the inverse of iimToRaw.
func rawToIIM(tp, s string) ([]byte, error) {
	switch tp {
	case "Short":
		x, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return nil, err
		}
		return binary.BigEndian.AppendUint16(nil, uint16(x)), nil
	case "Date":
		if len(s) == 10 && s[4] == '-' && s[7] == '-' {
			return []byte(strings.ReplaceAll(s, "-", "")), nil
		}
	case "Time":
		if len(s) == 14 && s[2] == ':' && s[5] == ':' && s[11] == ':' {
			return []byte(strings.ReplaceAll(s, ":", "")), nil
		}
	}
	return []byte(s), nil
}

// encodeIIM writes datums as an IPTC-IIM stream.  Envelope datasets are
// written before the application record, the order within a record is
// preserved.
func encodeIIM(datums []exiv.Datum) ([]byte, error) {
	type dataset struct {
		record, number uint16
		val            []byte
	}
	var all []dataset
	for _, d := range datums {
		desc := exiv.Lookup(d.Key)
		if !desc.Known && !strings.HasPrefix(d.Key.Name, "0x") {
			return nil, fmt.Errorf("%s: unknown IPTC dataset", d.Key)
		}
		if desc.Record == 0 || desc.Record > 0xFF || desc.ID > 0xFF {
			return nil, fmt.Errorf("%s: invalid record or dataset number", d.Key)
		}
		tp := d.Type
		if tp == "" {
			tp = desc.Type
		}
		for _, v := range d.Values {
			val, err := rawToIIM(tp, v)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid value %q: %w", d.Key, v, err)
			}
			all = append(all, dataset{record: desc.Record, number: desc.ID, val: val})
		}
	}
	slices.SortStableFunc(all, func(a, b dataset) int {
		return int(a.record) - int(b.record)
	})

	var buf []byte
	for _, ds := range all {
		buf = append(buf, iimTagMarker, byte(ds.record), byte(ds.number))
		if len(ds.val) < 0x8000 {
			buf = binary.BigEndian.AppendUint16(buf, uint16(len(ds.val)))
		} else {
			buf = binary.BigEndian.AppendUint16(buf, 0x8004)
			buf = binary.BigEndian.AppendUint32(buf, uint32(len(ds.val)))
		}
		buf = append(buf, ds.val...)
	}
	return buf, nil
}

// decodeIptc reads the IPTC datums from the payload of a Photoshop APP13
// segment.
func decodeIptc(app13 []byte) ([]exiv.Datum, error) {
	res, err := parseResources(app13[len(prefixPhotosh):])
	if err != nil {
		return nil, err
	}
	var datums []exiv.Datum
	for _, r := range res {
		if r.id != resourceIPTC {
			continue
		}
		dd, err := decodeIIM(r.data)
		datums = append(datums, dd...)
		if err != nil {
			return datums, err
		}
	}
	return datums, nil
}

// encodeIptc returns the new payload of the Photoshop APP13 segment.
// Resource blocks other than the IPTC block are taken over from old,
// which may be nil.  The result is nil if no resources remain.
func encodeIptc(old []byte, datums []exiv.Datum) ([]byte, error) {
	var res []psResource
	if old != nil {
		var err error
		res, err = parseResources(old[len(prefixPhotosh):])
		if err != nil {
			return nil, err
		}
	}

	pos := slices.IndexFunc(res, func(r psResource) bool { return r.id == resourceIPTC })
	res = slices.DeleteFunc(res, func(r psResource) bool { return r.id == resourceIPTC })
	if len(datums) > 0 {
		iim, err := encodeIIM(datums)
		if err != nil {
			return nil, err
		}
		if pos < 0 {
			pos = len(res)
		}
		res = slices.Insert(res, pos, psResource{id: resourceIPTC, data: iim})
	}
	if len(res) == 0 {
		return nil, nil
	}

	buf := append([]byte{}, prefixPhotosh...)
	buf = append(buf, writeResources(res)...)
	if len(buf) > maxSegmentData {
		return nil, fmt.Errorf("IPTC data: %w", errTooLarge)
	}
	return buf, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
