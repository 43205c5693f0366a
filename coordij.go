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

// CoordIJ is a cell's position in the two-axis IJ system: the redundant k
// axis of CoordIJK dropped, at the cost of needing normalization to compare
// two CoordIJ values for equality.
type CoordIJ struct {
	i int
	j int
}

// ToIJK restores a zeroed k axis and normalizes, recovering the canonical
// ijk+ coordinates for the same cell.
func (ij *CoordIJ) ToIJK() CoordIJK {
	ijk := CoordIJK{
		i: ij.i,
		j: ij.j,
		k: 0,
	}

	ijkNormalize(&ijk)
	return ijk
}
