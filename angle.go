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

// Angle is a real number of radians. No normalization is enforced; callers
// that need a canonical range should normalize explicitly (see
// LatLng.Normalized for lat/lng specifically).
type Angle float64

// AngleFromDegrees builds an Angle from decimal degrees.
func AngleFromDegrees(degrees float64) Angle {
	return Angle(degrees * M_PI_180)
}

// Radians returns the angle's value in radians.
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the angle's value in decimal degrees.
func (a Angle) Degrees() float64 { return float64(a) * M_180_PI }

