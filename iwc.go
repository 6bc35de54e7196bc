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

	"github.com/ctessum/sparse"
	"github.com/ctessum/unit"
)

// Constants for converting reflectivity to ice water content.
const (
	ρa      = 1.0             // air density
	n0i     = 4.e6            // ice particle size distribution intercept
	zFactor = 5.68e-18 / 720. // reflectivity scaling
)

var (
	// IWCUnits are the dimensions of ice water content (mass per volume).
	// IWC returns values in g/m³.
	IWCUnits = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -3}

	// IWPUnits are the dimensions of ice water path (mass per area).
	// IWP returns values in g/m².
	IWPUnits = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -2}
)

// IWC returns ice water content [g/m³] for each cell, given reflectivity
// [dBZ] and ice density [kg/m³], divided by the area-normalization divisor
// gdiv. Cells with zero density have zero ice water content unless their
// reflectivity is NaN, in which case the result is NaN.
func IWC(reflectivity, density *sparse.DenseArray, gdiv float64) (*sparse.DenseArray, error) {
	if !sameShape(reflectivity.Shape, density.Shape) {
		return nil, fmt.Errorf("%w: reflectivity shape %v != density shape %v",
			ErrShapeMismatch, reflectivity.Shape, density.Shape)
	}
	n0 := math.Pow(n0i, 3./7.)
	o := sparse.ZerosDense(copyShape(reflectivity.Shape)...)
	for i, dBZ := range reflectivity.Elements {
		z := math.Pow(10, dBZ/10)
		ρ := density.Elements[i]
		o.Elements[i] = 1000 * math.Pi * (ρ / ρa) * n0 * math.Pow(zFactor*z, 4./7.) / gdiv
	}
	return o, nil
}

// IWCQuantity converts an ice water content value [g/m³] into a
// dimensioned quantity in SI base units [kg/m³].
func IWCQuantity(v float64) *unit.Unit {
	return unit.New(v/1000, IWCUnits)
}

// IWPQuantity converts an ice water path value [g/m²] into a
// dimensioned quantity in SI base units [kg/m²].
func IWPQuantity(v float64) *unit.Unit {
	return unit.New(v/1000, IWPUnits)
}
