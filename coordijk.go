// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package h3grid

import "math"

// CoordIJK is a cell's position in the redundant three-axis IJK+ lattice:
// three 120-degree-apart axes spanning a 2D hex grid, one more than strictly
// needed. The extra axis is what lets most of the operations below -- adding
// a unit step, scaling, rotating -- stay pure integer arithmetic instead of
// needing the two-axis IJ system's degenerate-case handling.
type CoordIJK struct {
	i int
	j int
	k int
}

// unitVecs holds the IJK unit vector for each of the 7 H3 digits, digit 0
// (CENTER_DIGIT) being the zero vector.
var unitVecs = [...]CoordIJK{
	{0, 0, 0},
	{0, 0, 1},
	{0, 1, 0},
	{0, 1, 1},
	{1, 0, 0},
	{1, 0, 1},
	{1, 1, 0},
}

// setIJK sets an IJK coordinate to the given component values.
func setIJK(ijk *CoordIJK, i, j, k int) {
	ijk.i = i
	ijk.j = j
	ijk.k = k
}

// ijkToHex2d projects ijk+ coordinates down to the 2D face-local cartesian
// plane, discarding the redundant axis.
func ijkToHex2d(h *CoordIJK, v *Vec2d) {
	i := h.i - h.k
	j := h.j - h.k

	v.x = float64(i) - 0.5*float64(j)
	v.y = float64(j) * M_SIN60
}

// hex2dToCoordIJK quantizes a 2D cartesian coordinate vector to the ijk+
// coordinates of the hex containing it.
//
// This inverts ijkToHex2d but is not a closed-form inverse: a point almost
// never lands exactly on a lattice vertex, so the bulk of the function is
// classifying which of the six triangles surrounding the nearest lattice
// point the input actually falls in.
func hex2dToCoordIJK(v *Vec2d, h *CoordIJK) {
	var a1, a2 float64
	var x1, x2 float64
	var m1, m2 int
	var r1, r2 float64

	h.k = 0

	a1 = math.Abs(v.x)
	a2 = math.Abs(v.y)

	// un-project back into the ij skew basis
	x2 = a2 / M_SIN60
	x1 = a1 + x2/2.0

	m1 = int(x1)
	m2 = int(x2)

	// fractional remainders decide which of the two candidate hexes (m,
	// or m+1 along one axis) the point actually falls in
	r1 = x1 - float64(m1)
	r2 = x2 - float64(m2)

	if r1 < 0.5 {
		if r1 < 1.0/3.0 {
			if r2 < (1.0+r1)/2.0 {
				h.i = m1
				h.j = m2
			} else {
				h.i = m1
				h.j = m2 + 1
			}
		} else {
			if r2 < (1.0 - r1) {
				h.j = m2
			} else {
				h.j = m2 + 1
			}

			if (1.0-r1) <= r2 && r2 < (2.0*r1) {
				h.i = m1 + 1
			} else {
				h.i = m1
			}
		}
	} else {
		if r1 < 2.0/3.0 {
			if r2 < (1.0 - r1) {
				h.j = m2
			} else {
				h.j = m2 + 1
			}

			if (2.0*r1-1.0) < r2 && r2 < (1.0-r1) {
				h.i = m1
			} else {
				h.i = m1 + 1
			}
		} else {
			if r2 < (r1 / 2.0) {
				h.i = m1 + 1
				h.j = m2
			} else {
				h.i = m1 + 1
				h.j = m2 + 1
			}
		}
	}

	// the quantization above only handles the first quadrant; fold the
	// other three back across the axes the signs of the input indicate
	if v.x < 0.0 {
		if (h.j % 2) == 0 {
			axisi := int64(h.j) / int64(2)
			diff := int64(h.i) - axisi
			h.i = int(int64(h.i) - 2*diff)
		} else {
			axisi := int64(h.j+1) / 2
			diff := int64(h.i) - axisi
			h.i = int(int64(h.i) - (2*diff + 1))
		}
	}

	if v.y < 0.0 {
		h.i = h.i - (2*h.j+1)/2
		h.j = -1 * h.j
	}

	ijkNormalize(h)
}

// ijkMatches reports whether two ijk+ coordinates have identical components.
func ijkMatches(c1, c2 *CoordIJK) bool {
	return c1.i == c2.i && c1.j == c2.j && c1.k == c2.k
}

// ijkAdd adds two ijk+ coordinates component-wise into sum.
func ijkAdd(h1, h2 *CoordIJK, sum *CoordIJK) {
	sum.i = h1.i + h2.i
	sum.j = h1.j + h2.j
	sum.k = h1.k + h2.k
}

// ijkSub subtracts h2 from h1 component-wise into diff.
func ijkSub(h1, h2 *CoordIJK, diff *CoordIJK) {
	diff.i = h1.i - h2.i
	diff.j = h1.j - h2.j
	diff.k = h1.k - h2.k
}

// ijkScale uniformly scales ijk+ coordinates by a scalar, in place.
func ijkScale(c *CoordIJK, factor int) {
	c.i *= factor
	c.j *= factor
	c.k *= factor
}

// ijkNormalize reduces ijk+ coordinates to their canonical, smallest-valued
// form: every valid (i, j, k) triple has infinitely many representations
// (adding the same constant to all three components denotes the same cell),
// and this picks the one with a zero minimum component and no negatives.
func ijkNormalize(c *CoordIJK) {
	if c.i < 0 {
		c.j -= c.i
		c.k -= c.i
		c.i = 0
	}

	if c.j < 0 {
		c.i -= c.j
		c.k -= c.j
		c.j = 0
	}

	if c.k < 0 {
		c.i -= c.k
		c.j -= c.k
		c.k = 0
	}

	min := c.i
	if c.j < min {
		min = c.j
	}
	if c.k < min {
		min = c.k
	}

	if min > 0 {
		c.i -= min
		c.j -= min
		c.k -= min
	}
}

// unitIjkToDigit identifies which of the 7 H3 digit directions a (necessarily
// unit-length, post-normalization) ijk+ vector points along, or
// INVALID_DIGIT if it matches none of them.
func unitIjkToDigit(ijk *CoordIJK) Direction {
	c := *ijk
	ijkNormalize(&c)

	digit := INVALID_DIGIT
	for i := CENTER_DIGIT; i < Direction(NUM_DIGITS); i++ {
		if ijkMatches(&c, &unitVecs[i]) {
			digit = i
			break
		}
	}

	return digit
}

// upAp7 walks ijk+ coordinates one aperture-7 resolution coarser, along the
// counter-clockwise-rotating child sequence. Works in place.
func upAp7(ijk *CoordIJK) {
	i := ijk.i - ijk.k
	j := ijk.j - ijk.k

	ijk.i = int(math.Round(float64(3*i-j) / 7.0))
	ijk.j = int(math.Round(float64(i+2*j) / 7.0))
	ijk.k = 0
	ijkNormalize(ijk)
}

// upAp7r is upAp7 for the clockwise-rotating child sequence.
func upAp7r(ijk *CoordIJK) {
	i := ijk.i - ijk.k
	j := ijk.j - ijk.k

	ijk.i = int(math.Round(float64(2*i+j) / 7.0))
	ijk.j = int(math.Round(float64(3*j-i) / 7.0))
	ijk.k = 0
	ijkNormalize(ijk)
}

// downAp7 walks ijk+ coordinates one aperture-7 resolution finer, along the
// counter-clockwise-rotating child sequence, recentering on the same cell.
// Works in place.
func downAp7(ijk *CoordIJK) {
	iVec := CoordIJK{3, 0, 1}
	jVec := CoordIJK{1, 3, 0}
	kVec := CoordIJK{0, 1, 3}

	ijkScale(&iVec, ijk.i)
	ijkScale(&jVec, ijk.j)
	ijkScale(&kVec, ijk.k)

	ijkAdd(&iVec, &jVec, ijk)
	ijkAdd(ijk, &kVec, ijk)

	ijkNormalize(ijk)
}

// downAp7r is downAp7 for the clockwise-rotating child sequence.
func downAp7r(ijk *CoordIJK) {
	iVec := CoordIJK{3, 1, 0}
	jVec := CoordIJK{0, 3, 1}
	kVec := CoordIJK{1, 0, 3}

	ijkScale(&iVec, ijk.i)
	ijkScale(&jVec, ijk.j)
	ijkScale(&kVec, ijk.k)

	ijkAdd(&iVec, &jVec, ijk)
	ijkAdd(ijk, &kVec, ijk)

	ijkNormalize(ijk)
}

// neighborIJK steps ijk+ coordinates one cell in the given digit direction.
// Works in place; a CENTER_DIGIT or out-of-range digit leaves ijk unchanged.
func neighborIJK(ijk *CoordIJK, digit Direction) {
	if digit > CENTER_DIGIT && digit < Direction(NUM_DIGITS) {
		ijkAdd(ijk, &unitVecs[digit], ijk)
		ijkNormalize(ijk)
	}
}

// ijkRotate60ccw rotates ijk+ coordinates 60 degrees counter-clockwise about
// the origin. Works in place.
func ijkRotate60ccw(ijk *CoordIJK) {
	iVec := CoordIJK{1, 1, 0}
	jVec := CoordIJK{0, 1, 1}
	kVec := CoordIJK{1, 0, 1}

	ijkScale(&iVec, ijk.i)
	ijkScale(&jVec, ijk.j)
	ijkScale(&kVec, ijk.k)

	ijkAdd(&iVec, &jVec, ijk)
	ijkAdd(ijk, &kVec, ijk)

	ijkNormalize(ijk)
}

// ijkRotate60cw is ijkRotate60ccw rotated the other way.
func ijkRotate60cw(ijk *CoordIJK) {
	iVec := CoordIJK{1, 0, 1}
	jVec := CoordIJK{1, 1, 0}
	kVec := CoordIJK{0, 1, 1}

	ijkScale(&iVec, ijk.i)
	ijkScale(&jVec, ijk.j)
	ijkScale(&kVec, ijk.k)

	ijkAdd(&iVec, &jVec, ijk)
	ijkAdd(ijk, &kVec, ijk)

	ijkNormalize(ijk)
}

// downAp3 walks ijk+ coordinates one aperture-3 resolution finer, along the
// counter-clockwise-rotating child sequence. Aperture 3 is only used, paired
// with downAp3r, to build the substrate grid that carries cell vertices as
// lattice points. Works in place.
func downAp3(ijk *CoordIJK) {
	iVec := CoordIJK{2, 0, 1}
	jVec := CoordIJK{1, 2, 0}
	kVec := CoordIJK{0, 1, 2}

	ijkScale(&iVec, ijk.i)
	ijkScale(&jVec, ijk.j)
	ijkScale(&kVec, ijk.k)

	ijkAdd(&iVec, &jVec, ijk)
	ijkAdd(ijk, &kVec, ijk)

	ijkNormalize(ijk)
}

// downAp3r is downAp3 for the clockwise-rotating child sequence.
func downAp3r(ijk *CoordIJK) {
	iVec := CoordIJK{2, 1, 0}
	jVec := CoordIJK{0, 2, 1}
	kVec := CoordIJK{1, 0, 2}

	ijkScale(&iVec, ijk.i)
	ijkScale(&jVec, ijk.j)
	ijkScale(&kVec, ijk.k)

	ijkAdd(&iVec, &jVec, ijk)
	ijkAdd(ijk, &kVec, ijk)

	ijkNormalize(ijk)
}

// ijkDistance returns the grid distance between two ijk+ coordinates: the
// minimum number of single-cell steps connecting them.
func ijkDistance(c1, c2 *CoordIJK) int {
	var diff CoordIJK
	ijkSub(c1, c2, &diff)
	ijkNormalize(&diff)

	return max(abs(diff.i), max(abs(diff.j), abs(diff.k)))
}

// ijkToIj drops the redundant k axis, converting ijk+ coordinates to the
// two-axis IJ system.
func ijkToIj(ijk *CoordIJK, ij *CoordIJ) {
	ij.i = ijk.i - ijk.k
	ij.j = ijk.j - ijk.k
}

// ijToIjk restores a zeroed k axis, converting IJ coordinates back to
// normalized ijk+.
func ijToIjk(ij *CoordIJ, ijk *CoordIJK) {
	ijk.i = ij.i
	ijk.j = ij.j
	ijk.k = 0

	ijkNormalize(ijk)
}

// ijkToCube converts ijk+ coordinates to cube coordinates, in place. Cube
// coordinates are the representation ring-distance math is simplest in:
// i + j + k == 0 always holds once converted.
func ijkToCube(ijk *CoordIJK) {
	ijk.i = -ijk.i + ijk.k
	ijk.j = ijk.j - ijk.k
	ijk.k = -ijk.i - ijk.j
}

// cubeToIjk is the inverse of ijkToCube, in place.
func cubeToIjk(ijk *CoordIJK) {
	ijk.i = -ijk.i
	ijk.k = 0
	ijkNormalize(ijk)
}
