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
	"math"
	"sort"

	"github.com/ctessum/sparse"
)

// DensityClass assigns an ice density [kg/m³] to reflectivities [dBZ]
// at or above LowerBound.
type DensityClass struct {
	LowerBound, Density float64
}

// DensityClasses is the reflectivity-to-ice-density lookup table, sorted
// by LowerBound. Reflectivities below the first bound are ice free.
var DensityClasses = []DensityClass{
	{LowerBound: 18, Density: 400},
	{LowerBound: 30, Density: 600},
	{LowerBound: 35, Density: 700},
	{LowerBound: 40, Density: 800},
}

// ClassifyDensity returns the ice density [kg/m³] for reflectivity dBZ
// according to DensityClasses. NaN reflectivities have zero density.
func ClassifyDensity(dBZ float64) float64 {
	if math.IsNaN(dBZ) {
		return 0
	}
	i := sort.Search(len(DensityClasses), func(i int) bool {
		return DensityClasses[i].LowerBound > dBZ
	})
	if i == 0 {
		return 0
	}
	return DensityClasses[i-1].Density
}

// Density returns the ice density [kg/m³] of each cell of reflectivity
// [dBZ], set to zero wherever t excludes the corresponding value of
// verticalThreshold.
func Density(reflectivity, verticalThreshold *sparse.DenseArray, t VerticalThreshold) (*sparse.DenseArray, error) {
	if !sameShape(reflectivity.Shape, verticalThreshold.Shape) {
		return nil, fmt.Errorf("%w: reflectivity shape %v != vertical threshold shape %v",
			ErrShapeMismatch, reflectivity.Shape, verticalThreshold.Shape)
	}
	d := sparse.ZerosDense(copyShape(reflectivity.Shape)...)
	for i, dBZ := range reflectivity.Elements {
		if t.Excludes(verticalThreshold.Elements[i]) {
			continue
		}
		d.Elements[i] = ClassifyDensity(dBZ)
	}
	return d, nil
}
