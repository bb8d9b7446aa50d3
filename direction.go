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

// EdgeDirection enumerates a cell's four edges in the fixed order used
// throughout this package: South, East, North, West.
type EdgeDirection uint

const (
	// South edge (-v direction on the cube face).
	South EdgeDirection = 0

	// East edge (+u direction on the cube face).
	East EdgeDirection = 1

	// North edge (+v direction on the cube face).
	North EdgeDirection = 2

	// West edge (-u direction on the cube face).
	West EdgeDirection = 3
)

// numEdgeDirections is the number of edge directions a cell has.
const numEdgeDirections = 4
