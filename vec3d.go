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

// Vec3d is a 3-space cartesian point, used to measure chord distance between
// cell centers on the unit sphere without going through trigonometric
// great-circle distance.
type Vec3d struct {
	x float64
	y float64
	z float64
}

func square(x float64) float64 { return x * x }

// pointSquareDist returns the squared distance between two points in 3-space.
// Leaving it squared avoids a sqrt when callers only need to compare
// distances against each other, as the nearest-face search does.
func pointSquareDist(v1, v2 *Vec3d) float64 {
	return square(v1.x-v2.x) + square(v1.y-v2.y) + square(v1.z-v2.z)
}

// geoToVec3d projects a spherical coordinate onto the unit sphere's cartesian
// embedding, writing the result into v.
func geoToVec3d(geo *GeoCoord, v *Vec3d) {
	r := math.Cos(geo.lat)

	v.x = math.Cos(geo.lon) * r
	v.y = math.Sin(geo.lon) * r
	v.z = math.Sin(geo.lat)
}
