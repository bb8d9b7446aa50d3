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

package s2grid

import "math"

// robustCrossProd returns a vector orthogonal to both a and b, computed as
// (b+a) x (b-a) so that it stays well-conditioned even when a and b are
// nearly parallel. If a and b are exactly parallel (or anti-parallel) this
// degenerate case is not surfaced as an error — an arbitrary vector
// orthogonal to a is returned instead so callers always get a usable
// normal.
func robustCrossProd(a, b Point3) Point3 {
	x := b.Add(a).Cross(b.Sub(a))
	if x.Norm() != 0 {
		return x
	}
	return arbitraryOrthogonal(a)
}

// arbitraryOrthogonal returns some vector orthogonal to a: a x (1,0,0), or
// a x (0,0,1) when x is a's strictly largest component, so the axis used is
// never the one a is most aligned with.
func arbitraryOrthogonal(a Point3) Point3 {
	axis := Point3{X: 1}
	if math.Abs(a.X) > math.Abs(a.Y) && math.Abs(a.X) > math.Abs(a.Z) {
		axis = Point3{Z: 1}
	}
	return a.Cross(axis)
}

// simpleCCW reports whether the triple (a,b,c) is counterclockwise, as
// (c x a) . b > 0. The rotation of arguments guarantees
// simpleCCW(a,b,c) implies !simpleCCW(c,b,a).
func simpleCCW(a, b, c Point3) bool {
	return c.Cross(a).Dot(b) > 0
}

// simpleCrossing reports whether geodesic arcs AB and CD cross at a point
// interior to both, by checking that all four CCW triangle tests around
// the quadrilateral agree in sign.
func simpleCrossing(a, b, c, d Point3) bool {
	ab := a.Cross(b)
	acb := ab.Dot(c) < 0
	bda := ab.Dot(d) < 0
	if acb == bda {
		return false
	}
	cd := c.Cross(d)
	cbd := cd.Dot(b) < 0
	dac := cd.Dot(a) < 0
	return cbd == acb && dac != acb
}

// getDistance returns the minimum spherical arc distance, in radians, from
// unit vector x to the geodesic segment (a,b).
func getDistance(x, a, b Point3) float64 {
	aCrossB := robustCrossProd(a, b)
	norm := aCrossB.Norm()
	if norm != 0 && simpleCCW(aCrossB, a, x) && simpleCCW(x, b, aCrossB) {
		return math.Asin(clampFloat(math.Abs(x.Dot(aCrossB))/norm, -1, 1))
	}
	// The closest point is one of the two endpoints; the chord-to-arc
	// conversion 2*asin(len/2) stays accurate for small distances.
	da := 2 * math.Asin(clampFloat(0.5*math.Sqrt(squareDist(x, a)), 0, 1))
	db := 2 * math.Asin(clampFloat(0.5*math.Sqrt(squareDist(x, b)), 0, 1))
	if da < db {
		return da
	}
	return db
}
