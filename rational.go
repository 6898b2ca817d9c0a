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
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ParseRational parses a rational number.
//
// The input can either be a fraction "n/d" or a decimal number like "2" or
// "0.125".  Decimal numbers are converted to the closest fraction whose
// numerator and denominator fit into 32 bits (unsigned if signed is false,
// signed otherwise).  Fractions are returned unchanged, as long as both
// terms are in range.
func ParseRational(s string, signed bool) (num, den int64, err error) {
	lo, hi := int64(0), int64(math.MaxUint32)
	if signed {
		lo, hi = math.MinInt32, math.MaxInt32
	}

	if a, b, ok := strings.Cut(s, "/"); ok {
		num, err1 := strconv.ParseInt(a, 10, 64)
		den, err2 := strconv.ParseInt(b, 10, 64)
		if err1 != nil || err2 != nil {
			return 0, 0, fmt.Errorf("invalid rational %q", s)
		}
		if den < 0 {
			num, den = -num, -den
		}
		if num < lo || num > hi || den < lo || den > hi {
			return 0, 0, fmt.Errorf("invalid rational %q", s)
		}
		return num, den, nil
	}

	x, ok := new(big.Rat).SetString(s)
	if !ok || strings.ContainsAny(s, "eE/") {
		return 0, 0, fmt.Errorf("invalid rational %q", s)
	}
	neg := x.Sign() < 0
	if neg && !signed {
		return 0, 0, fmt.Errorf("negative value %q for unsigned rational", s)
	}
	limit := hi
	if neg {
		limit = -lo
	}
	num, den, ok = approximate(new(big.Rat).Abs(x), limit, hi)
	if !ok {
		return 0, 0, fmt.Errorf("rational %q out of range", s)
	}
	if neg {
		num = -num
	}
	return num, den, nil
}

// approximate finds the best continued fraction convergent p/q of x with
// p <= numLimit and q <= denLimit.
func approximate(x *big.Rat, numLimit, denLimit int64) (int64, int64, bool) {
	if x.Num().IsInt64() && x.Denom().IsInt64() {
		p, q := x.Num().Int64(), x.Denom().Int64()
		if p <= numLimit && q <= denLimit {
			return p, q, true
		}
	}

	// convergents h/k, starting with h_{-1}/k_{-1} = 1/0 and h_{-2}/k_{-2} = 0/1
	h1, k1 := big.NewInt(1), big.NewInt(0)
	h2, k2 := big.NewInt(0), big.NewInt(1)
	maxNum, maxDen := big.NewInt(numLimit), big.NewInt(denLimit)

	num := new(big.Int).Set(x.Num())
	den := new(big.Int).Set(x.Denom())
	found := false
	var bestP, bestQ int64
	for den.Sign() != 0 {
		a, r := new(big.Int).QuoRem(num, den, new(big.Int))
		h := new(big.Int).Add(new(big.Int).Mul(a, h1), h2)
		k := new(big.Int).Add(new(big.Int).Mul(a, k1), k2)
		if h.Cmp(maxNum) > 0 || k.Cmp(maxDen) > 0 {
			break
		}
		bestP, bestQ, found = h.Int64(), k.Int64(), true
		h2, k2, h1, k1 = h1, k1, h, k
		num, den = den, r
	}
	return bestP, bestQ, found
}

func formatRational(num, den int64) string {
	return strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10)
}

// humanRational renders a rational for display: "5/1" becomes "5" and
// "1/4" becomes "0.25".
func humanRational(num, den int64) string {
	if den == 0 {
		return "(" + formatRational(num, den) + ")"
	}
	if num%den == 0 {
		return strconv.FormatInt(num/den, 10)
	}
	return formatFloat(float64(num) / float64(den))
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(math.Round(x*1e4)/1e4, 'f', -1, 64)
}
