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

// R1Interval is a closed interval [Lo, Hi] on the real line. It is empty iff
// Lo > Hi; the canonical empty interval is (1, 0).
type R1Interval struct {
	Lo, Hi float64
}

// EmptyR1Interval returns the canonical empty interval.
func EmptyR1Interval() R1Interval { return R1Interval{Lo: 1, Hi: 0} }

// IsEmpty reports whether the interval contains no points.
func (r R1Interval) IsEmpty() bool { return r.Lo > r.Hi }

// Length returns Hi - Lo, which is negative for an empty interval.
func (r R1Interval) Length() float64 { return r.Hi - r.Lo }

// Center returns the interval's midpoint.
func (r R1Interval) Center() float64 { return (r.Lo + r.Hi) / 2 }

// Contains reports whether the interval contains x.
func (r R1Interval) Contains(x float64) bool {
	return x >= r.Lo && x <= r.Hi
}

// InteriorContains reports whether the interval's interior contains x.
func (r R1Interval) InteriorContains(x float64) bool {
	return x > r.Lo && x < r.Hi
}

// ContainsInterval reports whether r contains o.
func (r R1Interval) ContainsInterval(o R1Interval) bool {
	if o.IsEmpty() {
		return true
	}
	return o.Lo >= r.Lo && o.Hi <= r.Hi
}

// Intersects reports whether r and o have any points in common.
func (r R1Interval) Intersects(o R1Interval) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return o.Lo <= r.Hi && o.Hi >= r.Lo
}

// Union returns the smallest interval containing both r and o.
func (r R1Interval) Union(o R1Interval) R1Interval {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	return R1Interval{Lo: minFloat(r.Lo, o.Lo), Hi: maxFloat(r.Hi, o.Hi)}
}

// Intersection returns the intersection of r and o, which may be empty.
func (r R1Interval) Intersection(o R1Interval) R1Interval {
	return R1Interval{Lo: maxFloat(r.Lo, o.Lo), Hi: minFloat(r.Hi, o.Hi)}
}

// AddPoint returns the smallest interval containing r and x.
func (r R1Interval) AddPoint(x float64) R1Interval {
	if r.IsEmpty() {
		return R1Interval{Lo: x, Hi: x}
	}
	if x < r.Lo {
		return R1Interval{Lo: x, Hi: r.Hi}
	}
	if x > r.Hi {
		return R1Interval{Lo: r.Lo, Hi: x}
	}
	return r
}

// Expanded returns the interval expanded on both sides by margin. A negative
// margin shrinks the interval, which may make it empty.
func (r R1Interval) Expanded(margin float64) R1Interval {
	if r.IsEmpty() {
		return r
	}
	return R1Interval{Lo: r.Lo - margin, Hi: r.Hi + margin}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
