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

// MAX_CELL_BNDRY_VERTS bounds the vertex count a GeoBoundary can hold. The
// worst case is a pentagon whose every edge crosses an icosahedron face: 5
// original vertices plus 5 edge-crossing vertices.
const MAX_CELL_BNDRY_VERTS = 10

// GeoBoundary is a cell's outline as a fixed-capacity ring of spherical
// vertices in counter-clockwise order. It's a value type sized for the
// worst case rather than a slice so that walking a cell's boundary never
// allocates.
type GeoBoundary struct {
	count int
	ring  [MAX_CELL_BNDRY_VERTS]GeoCoord
}

// NumVerts reports how many of the ring's slots are populated.
func (gb GeoBoundary) NumVerts() int {
	return gb.count
}

// Vert returns the i'th vertex, in counter-clockwise order.
func (gb GeoBoundary) Vert(i int) GeoCoord {
	return gb.ring[i]
}
