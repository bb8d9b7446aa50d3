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

const (
	// pi
	M_PI = math.Pi // 3.14159265358979323846

	// pi / 2.0
	M_PI_2 = math.Pi / 2.0 // 1.5707963267948966

	// pi / 4.0
	M_PI_4 = math.Pi / 4.0 // 0.7853981633974483

	// 2.0 * pi
	M_2PI = 2.0 * math.Pi // 6.28318530717958647692528676655900576839433

	// pi / 180
	M_PI_180 = math.Pi / 180 // 0.0174532925199432957692369076848861271111
	// 180 / pi
	M_180_PI = 180 / math.Pi // 57.29577951308232087679815481410517033240547

	// threshold epsilon for generic floating point comparisons
	EPSILON = 0.0000000000000001
)

const (
	// MaxLevel is the deepest subdivision level a CellID can address; the
	// sentinel bit of a leaf cell sits at bit 0.
	MaxLevel = 30

	// MaxError absorbs asin/atan2 roundoff when widening a cell's latitude
	// bounds; 2^-51.
	MaxError = 1.0 / (1 << 51)

	// MaxEdgeAspect is the maximum ratio of a cell's longest to shortest
	// edge, over all cells at all levels.
	MaxEdgeAspect = 1.44261527445268292

	// MaxDiagAspect is the maximum ratio of a cell's diagonals.
	MaxDiagAspect = 1.7320508075688772 // sqrt(3)

	// numFaces is the number of cube faces tiling the sphere.
	numFaces = 6

	// swapMask/invertMask are the two bits composing a Hilbert orientation.
	swapMask   = 1
	invertMask = 2
)

// poleMinLat is the latitude at which the polar face cells' vertices touch:
// asin(sqrt(1/3)) - MaxError.
var poleMinLat = math.Asin(math.Sqrt(1.0/3.0)) - MaxError
