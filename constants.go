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

// Angle and trigonometric constants used throughout the projection math.
const (
	M_PI     = math.Pi
	M_PI_2   = math.Pi / 2.0
	M_2PI    = 2.0 * math.Pi
	M_PI_180 = math.Pi / 180
	M_180_PI = 180 / math.Pi

	// EPSILON bounds floating-point noise in lattice-space comparisons.
	EPSILON = 0.0000000000000001

	M_SQRT3_2 = 0.8660254037844386467637231707529361834714
	M_SIN60   = M_SQRT3_2

	// M_AP7_ROT_RADS is asin(sqrt(3/28)): the angle an aperture-7 child grid
	// is rotated relative to its parent in a Class II to Class III step.
	M_AP7_ROT_RADS = 0.333473172251832115336090755351601070065900389
	M_SIN_AP7_ROT  = 0.3273268353539885718950318
	M_COS_AP7_ROT  = 0.9449111825230680680167902
)

// Earth and projection scale constants.
const (
	// EARTH_RADIUS_KM uses the WGS84 authalic radius.
	EARTH_RADIUS_KM = 6371.007180918475

	// RES0_U_GNOMONIC is the gnomonic-plane unit length corresponding to one
	// resolution-0 hex edge.
	RES0_U_GNOMONIC = 0.38196601125010500003
)

// Grid shape constants: resolutions, icosahedron geometry, cell/base-cell
// counts.
const (
	// MAX_H3_RES is the finest resolution this index format can address.
	MAX_H3_RES = 15

	NUM_ICOSA_FACES = 20
	NUM_BASE_CELLS  = 122
	NUM_HEX_VERTS   = 6
	NUM_PENT_VERTS  = 5
	NUM_PENTAGONS   = 12

	// H3_HEXAGON_MODE is the only index mode this package emits; unidirectional
	// edge indexes (mode 2 in the original format) are out of scope here.
	H3_HEXAGON_MODE = 1
)
