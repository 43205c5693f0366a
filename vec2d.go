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

// Vec2d is a planar floating-point vector, used for face-local cartesian
// coordinates before they are walked back onto the sphere.
type Vec2d struct {
	x float64
	y float64
}

// Magnitude returns the vector's Euclidean length.
func (v2d *Vec2d) Magnitude() float64 {
	return math.Sqrt(v2d.x*v2d.x + v2d.y*v2d.y)
}

// vecIntersect finds where segment p0-p1 crosses segment p2-p3, writing the
// result into inter. The caller must already know the two segments cross;
// this does no bounds checking of its own.
func vecIntersect(p0, p1, p2, p3 *Vec2d, inter *Vec2d) {
	var s1, s2 Vec2d
	s1.x = p1.x - p0.x
	s1.y = p1.y - p0.y
	s2.x = p3.x - p2.x
	s2.y = p3.y - p2.y

	t := (s2.x*(p0.y-p2.y) - s2.y*(p0.x-p2.x)) / (-s2.x*s1.y + s1.x*s2.y)

	inter.x = p0.x + (t * s1.x)
	inter.y = p0.y + (t * s1.y)
}

// vecEquals reports whether two planar vectors have identical components.
// It does not tolerate floating-point noise: callers rely on that, since
// the vectors being compared here are produced by identical upstream
// computations and are expected to match exactly when they represent the
// same point.
func vecEquals(v1, v2 *Vec2d) bool {
	return v1.x == v2.x && v1.y == v2.y
}
