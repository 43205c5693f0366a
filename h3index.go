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

import (
	"math"
	"strconv"
)

// H3Index is a 64-bit bit-packed cell address: a mode, a resolution, the
// base cell the address descends from, and one base-7 digit per resolution
// level from 1 up to the address's own resolution, each digit one of the 7
// Direction values (INVALID_DIGIT, 7, fills the unused slots past the
// address's own resolution).
type H3Index uint64

// Bit layout of an H3Index: field offsets, widths (as masks), and their
// complements for clearing a field before OR-ing in a new value.
const (
	H3_NUM_BITS   = 64
	H3_MAX_OFFSET = 63

	H3_MODE_OFFSET       = 59
	H3_RESERVED_OFFSET   = 56
	H3_RES_OFFSET        = 52
	H3_BC_OFFSET         = 45
	H3_PER_DIGIT_OFFSET  = 3

	H3_HIGH_BIT_MASK          = uint64(1) << H3_MAX_OFFSET
	H3_HIGH_BIT_MASK_NEGATIVE = ^H3_HIGH_BIT_MASK

	H3_MODE_MASK          = uint64(15) << H3_MODE_OFFSET
	H3_MODE_MASK_NEGATIVE = ^H3_MODE_MASK

	H3_BC_MASK          = uint64(127) << H3_BC_OFFSET
	H3_BC_MASK_NEGATIVE = ^H3_BC_MASK

	H3_RES_MASK          = uint64(15) << H3_RES_OFFSET
	H3_RES_MASK_NEGATIVE = ^H3_RES_MASK

	H3_RESERVED_MASK          = uint64(7) << H3_RESERVED_OFFSET
	H3_RESERVED_MASK_NEGATIVE = ^H3_RESERVED_MASK

	H3_DIGIT_MASK          = uint64(7)
	H3_DIGIT_MASK_NEGATIVE = ^H3_DIGIT_MASK
)

// H3_INIT is mode 0, res 0, base cell 0, every digit set to INVALID_DIGIT
// (7). Every real index is built by taking this value and overwriting its
// mode, resolution, base cell, and digits in turn -- starting from anything
// else risks leaving a stale digit below the target resolution.
const H3_INIT = H3Index(35184372088831)

// H3_NULL denotes no cell, the bit-packed analogue of NaN: GeoToH3 and
// friends return it on invalid input instead of a panic or an error value.
const H3_NULL = H3Index(0)

// GetHighBit reads the index's unused top bit (always 0 for a valid cell).
func (h3 H3Index) GetHighBit() int {
	return int((uint64(h3) & H3_HIGH_BIT_MASK) >> H3_MAX_OFFSET)
}

// SetHighBit sets the index's unused top bit to v.
func (h3 *H3Index) SetHighBit(v int) {
	*h3 = H3Index((uint64(*h3) & H3_HIGH_BIT_MASK_NEGATIVE) | (uint64(v) << H3_MAX_OFFSET))
}

// GetMode reads the index's mode field.
func (h3 H3Index) GetMode() int {
	return int((uint64(h3) & H3_MODE_MASK) >> H3_MODE_OFFSET)
}

// SetMode sets the index's mode field to v.
func (h3 *H3Index) SetMode(v int) {
	*h3 = H3Index((uint64(*h3) & H3_MODE_MASK_NEGATIVE) | (uint64(v) << H3_MODE_OFFSET))
}

// GetBaseCell reads the index's base cell field.
func (h3 H3Index) GetBaseCell() int {
	return int((uint64(h3) & H3_BC_MASK) >> H3_BC_OFFSET)
}

// SetBaseCell sets the index's base cell field to bc.
func (h3 *H3Index) SetBaseCell(bc int) {
	*h3 = H3Index((uint64(*h3) & H3_BC_MASK_NEGATIVE) | (uint64(bc) << H3_BC_OFFSET))
}

// GetResolution reads the index's resolution field.
func (h3 H3Index) GetResolution() int {
	return int((uint64(h3) & H3_RES_MASK) >> H3_RES_OFFSET)
}

// SetResolution sets the index's resolution field to res.
func (h3 *H3Index) SetResolution(res int) {
	*h3 = H3Index((uint64(*h3) & H3_RES_MASK_NEGATIVE) | (uint64(res) << H3_RES_OFFSET))
}

// GetReservedBits reads the index's reserved field, which should always be
// zero for a valid cell.
func (h3 H3Index) GetReservedBits() int {
	return int((uint64(h3) & H3_RESERVED_MASK) >> H3_RESERVED_OFFSET)
}

// SetReservedBits sets the index's reserved field. Setting it to non-zero
// produces an invalid index.
func (h3 *H3Index) SetReservedBits(v int) {
	*h3 = H3Index((uint64(*h3) & H3_RESERVED_MASK_NEGATIVE) | (uint64(v) << H3_RESERVED_OFFSET))
}

// GetIndexDigit reads the digit (0-7) at resolution res.
func (h3 H3Index) GetIndexDigit(res int) Direction {
	shift := (MAX_H3_RES - res) * H3_PER_DIGIT_OFFSET
	return Direction((uint64(h3) >> shift) & H3_DIGIT_MASK)
}

// SetIndexDigit sets the digit (0-7) at resolution res.
func (h3 *H3Index) SetIndexDigit(res int, digit Direction) {
	shift := (MAX_H3_RES - res) * H3_PER_DIGIT_OFFSET
	*h3 = H3Index((uint64(*h3) & ^(H3_DIGIT_MASK << shift)) | (uint64(digit) << shift))
}

// StringToH3 parses a hex string into an H3Index, or H3_NULL if it isn't
// valid hex.
func StringToH3(str string) H3Index {
	u64, err := strconv.ParseUint(str, 16, 64)
	if err != nil {
		return H3_NULL
	}
	return H3Index(u64)
}

// String renders an H3Index as lowercase hex, its canonical text form.
func (h3 H3Index) String() string {
	return strconv.FormatUint(uint64(h3), 16)
}

// IsValid reports whether h3 is a well-formed cell address: reserved bits
// clear, a real hexagon-mode index, a base cell in range, a resolution in
// range, exactly that many meaningful digits followed by all-INVALID_DIGIT
// padding, and -- for a pentagon base cell -- no leading K_AXES_DIGIT
// (pentagons have no k axis, so that digit sequence can't occur).
func (h3 H3Index) IsValid() bool {
	if h3.GetHighBit() != 0 {
		return false
	}
	if h3.GetMode() != H3_HEXAGON_MODE {
		return false
	}
	if h3.GetReservedBits() != 0 {
		return false
	}

	baseCell := h3.GetBaseCell()
	if baseCell < 0 || baseCell >= NUM_BASE_CELLS {
		return false
	}

	res := h3.GetResolution()
	if res < 0 || res > MAX_H3_RES {
		return false
	}

	foundFirstNonZeroDigit := false
	for r := 1; r <= res; r++ {
		digit := h3.GetIndexDigit(r)

		if !foundFirstNonZeroDigit && digit != CENTER_DIGIT {
			foundFirstNonZeroDigit = true
			if _isBaseCellPentagon(baseCell) && digit == K_AXES_DIGIT {
				return false
			}
		}

		if digit < CENTER_DIGIT || digit >= Direction(NUM_DIGITS) {
			return false
		}
	}

	for r := res + 1; r <= MAX_H3_RES; r++ {
		if h3.GetIndexDigit(r) != INVALID_DIGIT {
			return false
		}
	}

	return true
}

// setH3Index builds the index for a base cell's own center at res, with
// every digit from 1..res set to initDigit.
func setH3Index(res int, baseCell int, initDigit Direction) H3Index {
	h := H3_INIT
	h.SetMode(H3_HEXAGON_MODE)
	h.SetResolution(res)
	h.SetBaseCell(baseCell)
	for r := 1; r <= res; r++ {
		h.SetIndexDigit(r, initDigit)
	}
	return h
}

// ToParent produces the ancestor index at parentRes, or H3_NULL if
// parentRes names a child resolution instead.
func (h3 H3Index) ToParent(parentRes int) H3Index {
	childRes := h3.GetResolution()
	if parentRes > childRes {
		return H3_NULL
	} else if parentRes == childRes {
		return h3
	} else if parentRes < 0 || parentRes > MAX_H3_RES {
		return H3_NULL
	}

	parentH := h3
	parentH.SetResolution(parentRes)
	for i := parentRes + 1; i <= childRes; i++ {
		parentH.SetIndexDigit(i, Direction(H3_DIGIT_MASK))
	}
	return parentH
}

// isValidChildRes reports whether childRes is a valid descendant resolution
// of parentRes; a resolution is always a valid child of itself.
func isValidChildRes(parentRes int, childRes int) bool {
	return childRes >= parentRes && childRes <= MAX_H3_RES
}

// MaxH3ToChildrenSize returns the maximum number of descendants h has at
// childRes. Actual counts are lower for pentagon lineages, which lose one
// of the 7 children at each subdivision.
func MaxH3ToChildrenSize(h H3Index, childRes int) int {
	parentRes := h.GetResolution()
	if !isValidChildRes(parentRes, childRes) {
		return 0
	}
	return ipow(7, childRes-parentRes)
}

// makeDirectChild returns h's immediate child at the given digit. Pure bit
// manipulation: callers are responsible for skipping K_AXES_DIGIT under a
// pentagon, which has no such child.
func makeDirectChild(h H3Index, cellNumber Direction) H3Index {
	childRes := h.GetResolution() + 1
	childH := h
	childH.SetResolution(childRes)
	childH.SetIndexDigit(childRes, cellNumber)
	return childH
}

// appendChildren recursively collects h's descendants at childRes into buf.
func appendChildren(h H3Index, childRes int, buf *[]H3Index) {
	parentRes := h.GetResolution()
	if !isValidChildRes(parentRes, childRes) {
		return
	}
	if parentRes == childRes {
		*buf = append(*buf, h)
		return
	}

	isAPentagon := h.IsPentagon()
	for i := CENTER_DIGIT; i < 7; i++ {
		if isAPentagon && i == K_AXES_DIGIT {
			continue
		}
		appendChildren(makeDirectChild(h, i), childRes, buf)
	}
}

// ToChildren generates all of h3's descendants at childRes.
func (h3 H3Index) ToChildren(childRes int) []H3Index {
	buf := make([]H3Index, 0, MaxH3ToChildrenSize(h3, childRes))
	appendChildren(h3, childRes, &buf)
	return buf
}

// ToCenterChild produces the descendant index at childRes that shares h3's
// own center point, or H3_NULL if childRes names an ancestor resolution.
func (h3 H3Index) ToCenterChild(childRes int) H3Index {
	parentRes := h3.GetResolution()
	if !isValidChildRes(parentRes, childRes) {
		return H3_NULL
	} else if childRes == parentRes {
		return h3
	}

	child := h3
	child.SetResolution(childRes)
	for i := parentRes + 1; i <= childRes; i++ {
		child.SetIndexDigit(i, CENTER_DIGIT)
	}
	return child
}

// IsResClassIII reports whether h3's resolution is Class III -- rotated
// relative to the icosahedron and thus prone to the extra boundary
// vertices a Class II cell never needs. Odd resolutions are Class III.
func (h3 H3Index) IsResClassIII() bool {
	return isResClassIII(h3.GetResolution())
}

// IsPentagon reports whether h3 names one of the 12 pentagon cells: its
// base cell must itself be a pentagon, and no finer digit may have rotated
// it away from that base cell's own center.
func (h3 H3Index) IsPentagon() bool {
	return _isBaseCellPentagon(h3.GetBaseCell()) &&
		h3LeadingNonZeroDigit(h3) == CENTER_DIGIT
}

// h3LeadingNonZeroDigit returns the coarsest-resolution non-zero digit in
// h, or CENTER_DIGIT if every digit is zero (the index names a base cell's
// own center).
func h3LeadingNonZeroDigit(h H3Index) Direction {
	for r := 1; r <= h.GetResolution(); r++ {
		if d := h.GetIndexDigit(r); d > CENTER_DIGIT {
			return d
		}
	}
	return CENTER_DIGIT
}

// h3Rotate60ccw rotates every digit of h 60 degrees counter-clockwise about
// its own base cell, without the pentagon missing-sequence adjustment.
func h3Rotate60ccw(h H3Index) H3Index {
	for r, res := 1, h.GetResolution(); r <= res; r++ {
		h.SetIndexDigit(r, _rotate60ccw(h.GetIndexDigit(r)))
	}
	return h
}

// h3Rotate60cw is h3Rotate60ccw rotated the other way.
func h3Rotate60cw(h H3Index) H3Index {
	for r, res := 1, h.GetResolution(); r <= res; r++ {
		h.SetIndexDigit(r, _rotate60cw(h.GetIndexDigit(r)))
	}
	return h
}

// h3RotatePent60ccw rotates h 60 degrees counter-clockwise about a
// pentagonal center. Unlike h3Rotate60ccw, it accounts for the pentagon's
// deleted K_AXES_DIGIT subsequence: once the leading non-zero digit is
// found, if rotating it landed on a K_AXES_DIGIT the whole index needs one
// further plain rotation to compensate.
func h3RotatePent60ccw(h H3Index) H3Index {
	foundFirstNonZeroDigit := false
	for r, res := 1, h.GetResolution(); r <= res; r++ {
		h.SetIndexDigit(r, _rotate60ccw(h.GetIndexDigit(r)))

		if !foundFirstNonZeroDigit && h.GetIndexDigit(r) != CENTER_DIGIT {
			foundFirstNonZeroDigit = true
			if h3LeadingNonZeroDigit(h) == K_AXES_DIGIT {
				h = h3Rotate60ccw(h)
			}
		}
	}
	return h
}

// h3RotatePent60cw is h3RotatePent60ccw rotated the other way.
func h3RotatePent60cw(h H3Index) H3Index {
	foundFirstNonZeroDigit := false
	for r, res := 1, h.GetResolution(); r <= res; r++ {
		h.SetIndexDigit(r, _rotate60cw(h.GetIndexDigit(r)))

		if !foundFirstNonZeroDigit && h.GetIndexDigit(r) != CENTER_DIGIT {
			foundFirstNonZeroDigit = true
			if h3LeadingNonZeroDigit(h) == K_AXES_DIGIT {
				h = h3Rotate60cw(h)
			}
		}
	}
	return h
}

// faceIjkToH3 encodes a FaceIJK address at res into an H3Index, by walking
// from the target resolution back up to the base cell one digit at a time
// and reading off which neighbor direction each step took, then rotating
// the result into the base cell's own canonical orientation.
func faceIjkToH3(fijk *FaceIJK, res int) H3Index {
	h := H3_INIT
	h.SetMode(H3_HEXAGON_MODE)
	h.SetResolution(res)

	if res == 0 {
		if fijk.coord.i > MAX_FACE_COORD || fijk.coord.j > MAX_FACE_COORD ||
			fijk.coord.k > MAX_FACE_COORD {
			return H3_NULL
		}
		baseCell := _faceIjkToBaseCell(fijk)
		if baseCell < 0 {
			return H3_NULL
		}
		h.SetBaseCell(baseCell)
		return h
	}

	fijkBC := *fijk
	ijk := &fijkBC.coord
	for r := res - 1; r >= 0; r-- {
		lastIJK := *ijk
		var lastCenter CoordIJK
		if isResClassIII(r + 1) {
			upAp7(ijk)
			lastCenter = *ijk
			downAp7(&lastCenter)
		} else {
			upAp7r(ijk)
			lastCenter = *ijk
			downAp7r(&lastCenter)
		}

		var diff CoordIJK
		ijkSub(&lastIJK, &lastCenter, &diff)
		ijkNormalize(&diff)

		h.SetIndexDigit(r+1, unitIjkToDigit(&diff))
	}

	if fijkBC.coord.i > MAX_FACE_COORD || fijkBC.coord.j > MAX_FACE_COORD ||
		fijkBC.coord.k > MAX_FACE_COORD {
		return H3_NULL
	}

	baseCell := _faceIjkToBaseCell(&fijkBC)
	if baseCell < 0 {
		return H3_NULL
	}
	h.SetBaseCell(baseCell)

	numRots := _faceIjkToBaseCellCCWrot60(&fijkBC)
	if _isBaseCellPentagon(baseCell) {
		if h3LeadingNonZeroDigit(h) == K_AXES_DIGIT {
			if _baseCellIsCwOffset(baseCell, fijkBC.face) {
				h = h3Rotate60cw(h)
			} else {
				h = h3Rotate60ccw(h)
			}
		}
		for i := 0; i < numRots; i++ {
			h = h3RotatePent60ccw(h)
		}
	} else {
		for i := 0; i < numRots; i++ {
			h = h3Rotate60ccw(h)
		}
	}

	return h
}

// GeoToH3 encodes a spherical coordinate to the H3 index of the cell
// containing it at the given resolution, or H3_NULL on invalid input.
func GeoToH3(g *GeoCoord, res int) H3Index {
	if res < 0 || res > MAX_H3_RES {
		return H3_NULL
	}
	if math.IsNaN(g.lat) || math.IsInf(g.lat, 0) || math.IsNaN(g.lon) || math.IsInf(g.lon, 0) {
		return H3_NULL
	}

	var fijk FaceIJK
	geoToFaceIjk(g, res, &fijk)
	return faceIjkToH3(&fijk, res)
}

// h3ToFaceIjkWithInitializedFijk walks fijk (already seeded with h's base
// cell's home face) down through h's digits, one aperture-7 subdivision
// per resolution level. It reports whether the result might actually lie
// on a neighboring face -- true unless the base cell is not a pentagon and
// either h is at resolution 0 or the base cell's home coordinate is its
// face's center.
func h3ToFaceIjkWithInitializedFijk(h H3Index, fijk *FaceIJK) bool {
	ijk := &fijk.coord
	res := h.GetResolution()

	possibleOverage := true
	if !_isBaseCellPentagon(h.GetBaseCell()) &&
		(res == 0 || (fijk.coord.i == 0 && fijk.coord.j == 0 && fijk.coord.k == 0)) {
		possibleOverage = false
	}

	for r := 1; r <= res; r++ {
		if isResClassIII(r) {
			downAp7(ijk)
		} else {
			downAp7r(ijk)
		}
		neighborIJK(ijk, h.GetIndexDigit(r))
	}

	return possibleOverage
}

// h3ToFaceIjk converts h to a FaceIJK address, resolving overage onto a
// neighboring face where needed.
func h3ToFaceIjk(h H3Index, fijk *FaceIJK) {
	baseCell := h.GetBaseCell()
	// under a pentagon, an index whose leading non-zero digit is 5 (IK) is
	// rotated once clockwise before the digits are walked
	if _isBaseCellPentagon(baseCell) && h3LeadingNonZeroDigit(h) == 5 {
		h = h3Rotate60cw(h)
	}

	*fijk = baseCellData[baseCell].homeFijk
	if !h3ToFaceIjkWithInitializedFijk(h, fijk) {
		return
	}

	origIJK := fijk.coord

	res := h.GetResolution()
	if isResClassIII(res) {
		downAp7r(&fijk.coord)
		res++
	}

	pentLeading4 := _isBaseCellPentagon(baseCell) && h3LeadingNonZeroDigit(h) == 4
	if adjustOverageClassII(fijk, res, pentLeading4, false) != NO_OVERAGE {
		if _isBaseCellPentagon(baseCell) {
			for adjustOverageClassII(fijk, res, false, false) != NO_OVERAGE {
				continue
			}
		}
		if res != h.GetResolution() {
			upAp7r(&fijk.coord)
		}
	} else if res != h.GetResolution() {
		fijk.coord = origIJK
	}
}

// H3ToGeo determines the spherical coordinates of h3's center point.
func H3ToGeo(h3 H3Index, g *GeoCoord) {
	var fijk FaceIJK
	h3ToFaceIjk(h3, &fijk)
	faceIjkToGeo(&fijk, h3.GetResolution(), g)
}

// H3ToGeoBoundary determines h3's cell boundary in spherical coordinates.
func H3ToGeoBoundary(h3 H3Index, gb *GeoBoundary) {
	var fijk FaceIJK
	h3ToFaceIjk(h3, &fijk)
	if h3.IsPentagon() {
		faceIjkPentToGeoBoundary(&fijk, h3.GetResolution(), 0, NUM_PENT_VERTS, gb)
	} else {
		faceIjkToGeoBoundary(&fijk, h3.GetResolution(), 0, NUM_HEX_VERTS, gb)
	}
}

// MaxFaceCount returns the maximum number of icosahedron faces h3 may
// intersect: a pentagon always touches 5, a hexagon never more than 2.
func MaxFaceCount(h3 H3Index) int {
	if h3.IsPentagon() {
		return 5
	}
	return 2
}

// H3GetFaces finds every icosahedron face h3 intersects, as integers 0-19,
// written into out (which must be sized MaxFaceCount(h3)). Unused slots
// are left as INVALID_FACE; callers must ignore those.
func H3GetFaces(h3 H3Index, out *[]int) {
	res := h3.GetResolution()
	isPentagon := h3.IsPentagon()

	// a Class II pentagon's own vertices all sit on icosahedron edges, so
	// the vertex-based test below can't be trusted directly; its direct
	// children cross the same faces and don't have that problem
	if isPentagon && !isResClassIII(res) {
		H3GetFaces(makeDirectChild(h3, 0), out)
		return
	}

	var fijk FaceIJK
	h3ToFaceIjk(h3, &fijk)

	var fijkVerts []FaceIJK
	var vertexCount int
	if isPentagon {
		vertexCount = NUM_PENT_VERTS
		fijkVerts = faceIjkPentToVerts(&fijk, &res)
	} else {
		vertexCount = NUM_HEX_VERTS
		fijkVerts = faceIjkToVerts(&fijk, &res)
	}

	faceCount := MaxFaceCount(h3)
	for i := 0; i < faceCount; i++ {
		(*out)[i] = INVALID_FACE
	}

	for i := 0; i < vertexCount; i++ {
		vert := &fijkVerts[i]

		if isPentagon {
			adjustPentVertOverage(vert, res)
		} else {
			adjustOverageClassII(vert, res, false, true)
		}

		face := vert.face
		pos := 0
		for (*out)[pos] != INVALID_FACE && (*out)[pos] != face {
			pos++
		}
		(*out)[pos] = face
	}
}

// PentagonIndexCount returns the number of pentagon cells, the same at
// every resolution.
func PentagonIndexCount() int {
	return NUM_PENTAGONS
}

// GetPentagonIndexes generates every pentagon cell at the given resolution.
func GetPentagonIndexes(res int, out *[]H3Index) {
	i := 0
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		if _isBaseCellPentagon(bc) {
			(*out)[i] = setH3Index(res, bc, CENTER_DIGIT)
			i++
		}
	}
}

// isResClassIII reports whether res is a Class III grid: odd resolutions
// are Class III, rotated relative to the icosahedron; even ones are
// Class II, aligned with it.
func isResClassIII(res int) bool {
	return res%2 == 1
}
