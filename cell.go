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

// Cell is a materialized cell: its face, level, Hilbert orientation,
// originating id, and cube-space (u,v) bounds. uv[0] is the u-axis
// interval [lo,hi]; uv[1] is the v-axis interval.
type Cell struct {
	face        int
	level       int
	orientation int
	cellID      CellID
	uv          [2][2]float64
}

// CellFromCellID constructs the materialized Cell for id.
func CellFromCellID(id CellID) (Cell, error) {
	if !id.IsValid() {
		return Cell{}, ErrInvalidCellID
	}
	face, i, j, orientation := id.faceIJOrientation()
	level := id.Level()
	size := id.sizeIJ()

	c := Cell{face: face, level: level, orientation: orientation, cellID: id}
	c.uv[0][0] = stToUV(float64(i) / float64(maxSize))
	c.uv[0][1] = stToUV(float64(i+size) / float64(maxSize))
	c.uv[1][0] = stToUV(float64(j) / float64(maxSize))
	c.uv[1][1] = stToUV(float64(j+size) / float64(maxSize))
	return c, nil
}

// Face returns the cell's cube face.
func (c Cell) Face() int { return c.face }

// Level returns the cell's subdivision depth.
func (c Cell) Level() int { return c.level }

// Orientation returns the cell's Hilbert orientation.
func (c Cell) Orientation() int { return c.orientation }

// ID returns the cell's identifier.
func (c Cell) ID() CellID { return c.cellID }

// Vertex returns the k'th vertex (k=0..3, SW, SE, NE, NW) as a
// (not-unit-length) direction vector.
func (c Cell) Vertex(k int) Point3 {
	return faceUvToXyz(c.face, c.uv[0][(k>>1)^(k&1)], c.uv[1][k>>1])
}

// Vertices returns all four vertices in SW, SE, NE, NW order.
func (c Cell) Vertices() [4]Point3 {
	return [4]Point3{c.Vertex(0), c.Vertex(1), c.Vertex(2), c.Vertex(3)}
}

// Edge returns the outward unit normal to the cell's edge in the given
// direction (South, East, North, West).
func (c Cell) Edge(dir EdgeDirection) Point3 {
	switch dir {
	case South:
		return faceVNorm(c.face, c.uv[1][0]).Mul(-1).Normalize()
	case East:
		return faceUNorm(c.face, c.uv[0][1]).Normalize()
	case North:
		return faceVNorm(c.face, c.uv[1][1]).Normalize()
	default: // West
		return faceUNorm(c.face, c.uv[0][0]).Mul(-1).Normalize()
	}
}

// Edges returns the outward unit normals of all four edges, in South, East,
// North, West order.
func (c Cell) Edges() [numEdgeDirections]Point3 {
	var edges [numEdgeDirections]Point3
	for d := EdgeDirection(0); d < numEdgeDirections; d++ {
		edges[d] = c.Edge(d)
	}
	return edges
}

// level0Bound returns the hard-coded bounding rectangle for a level-0 face
// cell. RectBound uses it for level-0 cells only.
func level0Bound(face int) LatLngRect {
	switch face {
	case 0:
		return LatLngRect{Lat: R1Interval{Lo: -M_PI_4, Hi: M_PI_4}, Lng: S1Interval{Lo: -M_PI_4, Hi: M_PI_4}}
	case 1:
		return LatLngRect{Lat: R1Interval{Lo: -M_PI_4, Hi: M_PI_4}, Lng: S1Interval{Lo: M_PI_4, Hi: 3 * M_PI_4}}
	case 2:
		return LatLngRect{Lat: R1Interval{Lo: poleMinLat, Hi: M_PI_2}, Lng: FullS1Interval()}
	case 3:
		return LatLngRect{Lat: R1Interval{Lo: -M_PI_4, Hi: M_PI_4}, Lng: S1Interval{Lo: 3 * M_PI_4, Hi: -3 * M_PI_4}}
	case 4:
		return LatLngRect{Lat: R1Interval{Lo: -M_PI_4, Hi: M_PI_4}, Lng: S1Interval{Lo: -3 * M_PI_4, Hi: -M_PI_4}}
	default: // 5
		return LatLngRect{Lat: R1Interval{Lo: -M_PI_2, Hi: -poleMinLat}, Lng: FullS1Interval()}
	}
}

// RectBound returns the smallest LatLngRect containing the cell, per
// the cube-face axis table.
func (c Cell) RectBound() LatLngRect {
	if c.level == 0 {
		return level0Bound(c.face)
	}

	// Merge the bound of each edge in turn (this picks up both vertex
	// extrema and, on the rare cell whose edge's great circle bulges
	// toward a pole between its endpoints, the interior extremum too).
	v := c.Vertices()
	r := LatLngRectFromEdge(v[0], v[1])
	r = r.Union(LatLngRectFromEdge(v[1], v[2]))
	r = r.Union(LatLngRectFromEdge(v[2], v[3]))
	r = r.Union(LatLngRectFromEdge(v[3], v[0]))

	// If any corner touches a pole exactly, longitude must cover the full
	// range since every meridian meets there.
	for _, p := range v {
		if math.Abs(LatLngFromPoint(p).Lat.Radians()) >= M_PI_2-MaxError {
			r.Lng = FullS1Interval()
			break
		}
	}

	r.Lat = R1Interval{Lo: r.Lat.Lo - MaxError, Hi: r.Lat.Hi + MaxError}
	r.Lat = R1Interval{Lo: math.Max(r.Lat.Lo, -M_PI_2), Hi: math.Min(r.Lat.Hi, M_PI_2)}
	return r
}

// ApproxArea returns the cell's planar-approximation area: the area of the
// flat quadrilateral through its four (cube-face, not unit-length)
// vertices, half the norm of the cross product of its diagonals — adequate for a
// caller's "skip if rect is much larger than a cell" precheck before
// calling CoverRect.
func (c Cell) ApproxArea() float64 {
	v := c.Vertices()
	return 0.5 * (v[2].Sub(v[0]).Cross(v[3].Sub(v[1])).Norm())
}

// ExactArea returns the cell's exact spherical area via Girard's theorem
// applied to its two constituent triangles.
func (c Cell) ExactArea() float64 {
	v := c.Vertices()
	for i := range v {
		v[i] = v[i].Normalize()
	}
	return girardArea(v[0], v[1], v[2]) + girardArea(v[0], v[2], v[3])
}

// girardArea returns the spherical excess (area) of the geodesic triangle
// a,b,c, via Girard's theorem: the sum of interior angles minus pi.
func girardArea(a, b, c Point3) float64 {
	ab := robustCrossProd(a, b).Normalize()
	bc := robustCrossProd(b, c).Normalize()
	ca := robustCrossProd(c, a).Normalize()

	angleA := math.Acos(clampFloat(-ab.Dot(ca), -1, 1))
	angleB := math.Acos(clampFloat(-bc.Dot(ab), -1, 1))
	angleC := math.Acos(clampFloat(-ca.Dot(bc), -1, 1))
	return angleA + angleB + angleC - M_PI
}
