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

func TestCellFromInvalidID(t *testing.T) {
	if _, err := CellFromCellID(0); err != ErrInvalidCellID {
		t.Errorf("CellFromCellID(0) error = %v, want ErrInvalidCellID", err)
	}
}

func TestCellVerticesLieOnFace(t *testing.T) {
	id := CellIDFromFaceIJ(3, 1<<20, 1<<19)
	parent, err := id.Parent(15)
	if err != nil {
		t.Fatal(err)
	}
	cell, err := CellFromCellID(parent)
	if err != nil {
		t.Fatal(err)
	}
	for k, v := range cell.Vertices() {
		if xyzToFace(v) != cell.Face() {
			t.Errorf("vertex %d = %+v does not lie on face %d", k, v, cell.Face())
		}
	}
}

func TestCellRectBoundContainsCenter(t *testing.T) {
	id := CellIDFromFaceIJ(2, 777777, 111111)
	parent, err := id.Parent(12)
	if err != nil {
		t.Fatal(err)
	}
	cell, err := CellFromCellID(parent)
	if err != nil {
		t.Fatal(err)
	}
	center := LatLngFromPoint(parent.ToPointRaw())
	if !cell.RectBound().Contains(center) {
		t.Errorf("RectBound() %+v does not contain cell center %+v", cell.RectBound(), center)
	}
}

func TestEdgesMatchIndividualEdgeCalls(t *testing.T) {
	id := CellIDFromFaceIJ(4, 200000, 300000)
	parent, err := id.Parent(14)
	if err != nil {
		t.Fatal(err)
	}
	cell, err := CellFromCellID(parent)
	if err != nil {
		t.Fatal(err)
	}
	edges := cell.Edges()
	for _, dir := range [4]EdgeDirection{South, East, North, West} {
		if edges[dir] != cell.Edge(dir) {
			t.Errorf("Edges()[%d] = %+v, want Edge(%d) = %+v", dir, edges[dir], dir, cell.Edge(dir))
		}
	}
}

func TestApproxAreaPositive(t *testing.T) {
	id := CellIDFromFaceIJ(0, 0, 0)
	parent, err := id.Parent(5)
	if err != nil {
		t.Fatal(err)
	}
	cell, err := CellFromCellID(parent)
	if err != nil {
		t.Fatal(err)
	}
	if cell.ApproxArea() <= 0 {
		t.Errorf("ApproxArea() = %v, want positive", cell.ApproxArea())
	}
	if cell.ExactArea() <= 0 {
		t.Errorf("ExactArea() = %v, want positive", cell.ExactArea())
	}
}
