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

import "errors"

var (
	// ErrInvalidCellID is returned for a zero identifier, a missing
	// sentinel bit, or face bits >= 6.
	ErrInvalidCellID = errors.New("s2grid: invalid cell id")

	// ErrInvalidCoordinate is returned when a LatLng falls outside the
	// valid range and the operation's contract requires validity.
	ErrInvalidCoordinate = errors.New("s2grid: invalid lat/lng coordinate")

	// ErrInvalidLevel is returned for a level outside [0, MaxLevel], or a
	// Parent call requesting a level deeper than the receiver's own.
	ErrInvalidLevel = errors.New("s2grid: invalid level")

	// ErrInvalidFaceMapping names the condition that faceXyzToUv reports
	// with ok=false: the point does not lie on the requested face (its
	// normal component has the wrong sign).
	ErrInvalidFaceMapping = errors.New("s2grid: point not on requested face")
)

// DegenerateGeometry is not an error in this taxonomy: robustCrossProd
// always returns a usable (if arbitrary) orthogonal vector when a and b are
// parallel, so the condition never needs to be surfaced to a caller. See
// robustCrossProd's doc comment.
