/*
Copyright © 2019 the InMAP authors.
This file is part of met.

met is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

met is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with met.  If not, see <http://www.gnu.org/licenses/>.
*/

package met

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// LayerThickness calculates vertical spacing [m] from layer-edge
// heights. The heights are assumed to be on a grid that is staggered
// along axis; the returned thicknesses are on an unstaggered grid, so
// they have one fewer element along axis and can be used as the
// vertical spacing for IWP.
func LayerThickness(heights *sparse.DenseArray, axis int) (*sparse.DenseArray, error) {
	axis, err := normalizeAxis(axis, len(heights.Shape))
	if err != nil {
		return nil, err
	}
	if err := checkElements("heights", heights); err != nil {
		return nil, err
	}
	n := heights.Shape[axis]
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 layer edges along axis %d but have %d", ErrShapeMismatch, axis, n)
	}
	outer, inner := 1, 1
	for _, d := range heights.Shape[:axis] {
		outer *= d
	}
	for _, d := range heights.Shape[axis+1:] {
		inner *= d
	}
	shape := copyShape(heights.Shape)
	shape[axis] = n - 1
	dz := sparse.ZerosDense(shape...)
	for i := 0; i < outer; i++ {
		for k := 1; k < n; k++ {
			below := heights.Elements[(i*n+k-1)*inner : (i*n+k)*inner]
			above := heights.Elements[(i*n+k)*inner : (i*n+k+1)*inner]
			o := dz.Elements[(i*(n-1)+k-1)*inner : (i*(n-1)+k)*inner]
			for j := range o {
				o[j] = above[j] - below[j]
			}
		}
	}
	return dz, nil
}
