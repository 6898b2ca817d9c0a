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
	"strconv"
	"strings"
)

// HumanValue renders the raw value of an EXIF tag in human readable form.
//
// Rationals are reduced ("5/1" becomes "5") and a number of well-known tags
// are interpreted, for example "1/60" for ExposureTime becomes "1/60 s".
// Values which cannot be interpreted are returned unchanged.
func HumanValue(d Descriptor, raw string) string {
	if f, ok := exifInterpreters[d.Key.Name]; ok && d.Known {
		if s, ok := f(raw); ok {
			return s
		}
	}

	switch d.Type {
	case "Rational", "SRational":
		var parts []string
		for _, f := range strings.Fields(raw) {
			num, den, ok := splitRational(f)
			if !ok {
				return raw
			}
			parts = append(parts, humanRational(num, den))
		}
		return strings.Join(parts, " ")
	case "Undefined":
		if d.Kind == KindBytes && isVersionTag(d.Key.Name) {
			if s, ok := versionString(raw); ok {
				return s
			}
		}
	}
	return raw
}

func isVersionTag(name string) bool {
	switch name {
	case "ExifVersion", "FlashpixVersion", "InteroperabilityVersion":
		return true
	}
	return false
}

// versionString renders a version stored as four ASCII digits,
// e.g. "48 50 51 48" becomes "2.30".
func versionString(raw string) (string, bool) {
	bytes, ok := parseBytes(raw)
	if !ok || len(bytes) != 4 {
		return "", false
	}
	for _, b := range bytes {
		if b < '0' || b > '9' {
			return "", false
		}
	}
	major, _ := strconv.Atoi(string(bytes[:2]))
	return fmt.Sprintf("%d.%s", major, bytes[2:]), true
}

func parseBytes(raw string) ([]byte, bool) {
	fields := strings.Fields(raw)
	res := make([]byte, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseUint(f, 10, 8)
		if err != nil {
			return nil, false
		}
		res[i] = byte(x)
	}
	return res, true
}

func splitRational(s string) (int64, int64, bool) {
	a, b, ok := strings.Cut(s, "/")
	if !ok {
		return 0, 0, false
	}
	num, err1 := strconv.ParseInt(a, 10, 64)
	den, err2 := strconv.ParseInt(b, 10, 64)
	return num, den, err1 == nil && err2 == nil
}

func singleRational(raw string) (float64, bool) {
	num, den, ok := splitRational(strings.TrimSpace(raw))
	if !ok || den == 0 {
		return 0, false
	}
	return float64(num) / float64(den), true
}

func enumInterpreter(names map[int64]string) func(string) (string, bool) {
	return func(raw string) (string, bool) {
		x, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return "", false
		}
		s, ok := names[x]
		if !ok {
			return fmt.Sprintf("(%d)", x), true
		}
		return s, true
	}
}

var exifInterpreters = map[string]func(string) (string, bool){
	"Orientation": enumInterpreter(map[int64]string{
		1: "top, left",
		2: "top, right",
		3: "bottom, right",
		4: "bottom, left",
		5: "left, top",
		6: "right, top",
		7: "right, bottom",
		8: "left, bottom",
	}),
	"ResolutionUnit": enumInterpreter(map[int64]string{
		1: "none",
		2: "inch",
		3: "cm",
	}),
	"FocalPlaneResolutionUnit": enumInterpreter(map[int64]string{
		1: "none",
		2: "inch",
		3: "cm",
	}),
	"ExposureProgram": enumInterpreter(map[int64]string{
		0: "Not defined",
		1: "Manual",
		2: "Auto",
		3: "Aperture priority",
		4: "Shutter priority",
		5: "Creative program",
		6: "Action program",
		7: "Portrait mode",
		8: "Landscape mode",
	}),
	"MeteringMode": enumInterpreter(map[int64]string{
		0:   "Unknown",
		1:   "Average",
		2:   "Center weighted average",
		3:   "Spot",
		4:   "Multi-spot",
		5:   "Multi-segment",
		6:   "Partial",
		255: "Other",
	}),
	"ColorSpace": enumInterpreter(map[int64]string{
		1:      "sRGB",
		2:      "Adobe RGB",
		0xffff: "Uncalibrated",
	}),
	"WhiteBalance": enumInterpreter(map[int64]string{
		0: "Auto",
		1: "Manual",
	}),
	"ExposureMode": enumInterpreter(map[int64]string{
		0: "Auto",
		1: "Manual",
		2: "Auto bracket",
	}),
	"SceneCaptureType": enumInterpreter(map[int64]string{
		0: "Standard",
		1: "Landscape",
		2: "Portrait",
		3: "Night scene",
	}),
	"YCbCrPositioning": enumInterpreter(map[int64]string{
		1: "Centered",
		2: "Co-sited",
	}),
	"GPSAltitudeRef": enumInterpreter(map[int64]string{
		0: "Above sea level",
		1: "Below sea level",
	}),
	"ExposureTime": func(raw string) (string, bool) {
		num, den, ok := splitRational(strings.TrimSpace(raw))
		if !ok || den == 0 || num == 0 {
			return "", false
		}
		if num >= den {
			return formatFloat(float64(num)/float64(den)) + " s", true
		}
		if den%num == 0 {
			return fmt.Sprintf("1/%d s", den/num), true
		}
		return fmt.Sprintf("1/%s s", formatFloat(float64(den)/float64(num))), true
	},
	"FNumber": func(raw string) (string, bool) {
		x, ok := singleRational(raw)
		if !ok {
			return "", false
		}
		return "F" + strconv.FormatFloat(x, 'f', 1, 64), true
	},
	"FocalLength": func(raw string) (string, bool) {
		x, ok := singleRational(raw)
		if !ok {
			return "", false
		}
		return strconv.FormatFloat(x, 'f', 1, 64) + " mm", true
	},
	"GPSAltitude": func(raw string) (string, bool) {
		x, ok := singleRational(raw)
		if !ok {
			return "", false
		}
		return formatFloat(x) + " m", true
	},
	"Flash": func(raw string) (string, bool) {
		x, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 16)
		if err != nil {
			return "", false
		}
		if x&1 == 0 {
			return "No flash", true
		}
		s := "Fired"
		switch (x >> 1) & 3 {
		case 2:
			s += ", return light not detected"
		case 3:
			s += ", return light detected"
		}
		switch (x >> 3) & 3 {
		case 1:
			s += ", compulsory"
		case 3:
			s += ", auto"
		}
		if x&0x40 != 0 {
			s += ", red-eye reduction"
		}
		return s, true
	},
	"GPSVersionID": func(raw string) (string, bool) {
		bytes, ok := parseBytes(raw)
		if !ok || len(bytes) == 0 {
			return "", false
		}
		parts := make([]string, len(bytes))
		for i, b := range bytes {
			parts[i] = strconv.Itoa(int(b))
		}
		return strings.Join(parts, "."), true
	},
	"GPSLatitude":  gpsCoordinate,
	"GPSLongitude": gpsCoordinate,
	"GPSTimeStamp": func(raw string) (string, bool) {
		fields := strings.Fields(raw)
		if len(fields) != 3 {
			return "", false
		}
		var v [3]float64
		for i, f := range fields {
			x, ok := singleRational(f)
			if !ok {
				return "", false
			}
			v[i] = x
		}
		sec := strconv.FormatFloat(v[2], 'f', -1, 64)
		if v[2] < 10 {
			sec = "0" + sec
		}
		return fmt.Sprintf("%02d:%02d:%s", int(v[0]), int(v[1]), sec), true
	},
}

// gpsCoordinate renders degrees, minutes and seconds like "52deg 31' 12.5"".
func gpsCoordinate(raw string) (string, bool) {
	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return "", false
	}
	var v [3]float64
	for i, f := range fields {
		x, ok := singleRational(f)
		if !ok {
			return "", false
		}
		v[i] = x
	}
	return fmt.Sprintf("%sdeg %s' %s\"", formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2])), true
}
