// This file is part of Controlmapper.
//
// Controlmapper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Controlmapper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Controlmapper.  If not, see <https://www.gnu.org/licenses/>.

package layout

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// the number of fractional bits in a 52.12 fixed point value
const fracBits = 12

// unity in 52.12 fixed point
const unity = fixed.Int52_12(1 << fracBits)

// I converts an integer into 52.12 fixed point.
func I(n int) fixed.Int52_12 {
	return fixed.Int52_12(int64(n) << fracBits)
}

// F converts a floating point value into 52.12 fixed point. The value is
// rounded to the nearest representable value.
func F(f float64) fixed.Int52_12 {
	return fixed.Int52_12(math.Round(f * float64(unity)))
}

// ToFloat converts a 52.12 fixed point value into a floating point value.
func ToFloat(v fixed.Int52_12) float64 {
	return float64(v) / float64(unity)
}

// divide a by b. the fixed package does not provide division for 52.12 values
func div(a fixed.Int52_12, b fixed.Int52_12) fixed.Int52_12 {
	if b == 0 {
		return 0
	}
	return fixed.Int52_12((int64(a) << fracBits) / int64(b))
}

// remove the fractional part. rounds towards negative infinity
func floor(a fixed.Int52_12) fixed.Int52_12 {
	return a &^ (unity - 1)
}

// remove the fractional part. rounds towards positive infinity
func ceil(a fixed.Int52_12) fixed.Int52_12 {
	return floor(a + unity - 1)
}

// integer part of a, rounded towards zero
func trunc(a fixed.Int52_12) int {
	return int(a / unity)
}

// fraction part of a
func frac(a fixed.Int52_12) fixed.Int52_12 {
	return a & (unity - 1)
}
