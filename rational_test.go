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

import "testing"

func TestParseRational(t *testing.T) {
	cases := []struct {
		in       string
		signed   bool
		num, den int64
	}{
		{"1/3", false, 1, 3},
		{"2/4", false, 2, 4}, // fractions are not reduced
		{"72/1", false, 72, 1},
		{"2", false, 2, 1},
		{"0", false, 0, 1},
		{"0.125", false, 1, 8},
		{"2.5", false, 5, 2},
		{"0.3333333333333333", false, 1, 3},
		{"-0.5", true, -1, 2},
		{"-1/2", true, -1, 2},
		{"1/-2", true, -1, 2},
		{"4294967295/1", false, 4294967295, 1},
		{"2147483647/1", true, 2147483647, 1},
		{"-2147483648/1", true, -2147483648, 1},
		{"2147483647/-2147483647", true, -2147483647, 2147483647},
	}
	for _, c := range cases {
		num, den, err := ParseRational(c.in, c.signed)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if num != c.num || den != c.den {
			t.Errorf("%q: got %d/%d, want %d/%d", c.in, num, den, c.num, c.den)
		}
	}
}

func TestParseRationalInvalid(t *testing.T) {
	cases := []struct {
		in     string
		signed bool
	}{
		{"", false},
		{"abc", false},
		{"1/", false},
		{"/2", false},
		{"1e3", false},
		{"-1/2", false},
		{"-0.5", false},
		{"4294967296/1", false},
		{"2147483648/1", true},
		{"1/-2147483648", true},
		{"-2147483648/-1", true},
		{"1/-1", false},
		{"99999999999", false},
	}
	for _, c := range cases {
		_, _, err := ParseRational(c.in, c.signed)
		if err == nil {
			t.Errorf("%q (signed=%t): missing error", c.in, c.signed)
		}
	}
}

// TestRationalQuantization checks that decimal input is replaced by a
// close fraction within the 32 bit limits.
func TestRationalQuantization(t *testing.T) {
	cases := []string{"3.14159265358979", "0.000000001", "123456.789", "0.1"}
	for _, s := range cases {
		num, den, err := ParseRational(s, false)
		if err != nil {
			t.Errorf("%q: %v", s, err)
			continue
		}
		if den <= 0 || den > 0xFFFFFFFF || num > 0xFFFFFFFF {
			t.Errorf("%q: %d/%d out of range", s, num, den)
		}
	}

	num, den, _ := ParseRational("0.1", false)
	if num != 1 || den != 10 {
		t.Errorf("0.1: got %d/%d", num, den)
	}
}

func TestHumanRational(t *testing.T) {
	cases := []struct {
		num, den int64
		want     string
	}{
		{5, 1, "5"},
		{10, 2, "5"},
		{1, 4, "0.25"},
		{1, 3, "0.3333"},
		{-3, 2, "-1.5"},
		{1, 0, "(1/0)"},
	}
	for _, c := range cases {
		if got := humanRational(c.num, c.den); got != c.want {
			t.Errorf("%d/%d: got %q, want %q", c.num, c.den, got, c.want)
		}
	}
}
