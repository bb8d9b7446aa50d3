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

// CoverRect enumerates the cells at level that intersect rect, by flood
// fill outward from the cell containing rect's center.
//
// This is approximate: the output is the connected component of the
// level's grid, under edge adjacency, that starts at the center seed and
// stays inside rect. A rectangle disconnected by the antimeridian seam
// could leave a second component uncovered if the seed falls in only one
// of them; callers that need full coverage of a seam-straddling rectangle
// should request additional seeds (e.g. also seed from a corner) and union
// the results.
func CoverRect(rect LatLngRect, level int) ([]CellID, error) {
	seedLeaf := FromLatLng(rect.Center())
	seed, err := seedLeaf.Parent(level)
	if err != nil {
		return nil, err
	}

	seedCell, err := CellFromCellID(seed)
	if err != nil {
		return nil, err
	}
	if !seedCell.RectBound().Intersects(rect) {
		return []CellID{seed}, nil
	}

	examined := map[CellID]bool{seed: true}
	frontier := []CellID{seed}
	output := []CellID{seed}

	for len(frontier) > 0 {
		cur := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		neighbors, err := cur.EdgeNeighbors()
		if err != nil {
			return nil, err
		}
		for _, n := range neighbors {
			if examined[n] {
				continue
			}
			examined[n] = true

			cell, err := CellFromCellID(n)
			if err != nil {
				continue
			}
			if cell.RectBound().Intersects(rect) {
				output = append(output, n)
				frontier = append(frontier, n)
			}
		}
	}
	return output, nil
}
