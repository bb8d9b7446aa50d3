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

import "testing"

func TestR1IntervalEmpty(t *testing.T) {
	e := EmptyR1Interval()
	if !e.IsEmpty() {
		t.Error("EmptyR1Interval() should be empty")
	}
	if e.Length() >= 0 {
		t.Errorf("Length() of empty interval = %v, want negative", e.Length())
	}
}

func TestR1IntervalContains(t *testing.T) {
	r := R1Interval{Lo: 1, Hi: 3}
	if !r.Contains(2) || r.Contains(4) {
		t.Error("Contains behaved unexpectedly")
	}
	if !r.InteriorContains(2) || r.InteriorContains(1) {
		t.Error("InteriorContains behaved unexpectedly")
	}
}

func TestR1IntervalUnionIntersection(t *testing.T) {
	a := R1Interval{Lo: 0, Hi: 2}
	b := R1Interval{Lo: 1, Hi: 3}
	if u := a.Union(b); u != (R1Interval{Lo: 0, Hi: 3}) {
		t.Errorf("Union = %+v, want {0 3}", u)
	}
	if i := a.Intersection(b); i != (R1Interval{Lo: 1, Hi: 2}) {
		t.Errorf("Intersection = %+v, want {1 2}", i)
	}
}

func TestR1IntervalExpanded(t *testing.T) {
	r := R1Interval{Lo: 1, Hi: 3}
	e := r.Expanded(1)
	if !e.ContainsInterval(r) {
		t.Errorf("Expanded(1) = %+v does not contain original %+v", e, r)
	}
}
