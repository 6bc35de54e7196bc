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
)

// AreaNormalization specifies the horizontal grid-cell size used to
// normalize ice water content. Either Length or both Dx and Dy may be set.
// The zero value applies no normalization.
type AreaNormalization struct {
	// Length is the edge length of a square grid cell.
	Length float64

	// Dx and Dy are orthogonal grid cell edge lengths. They are only
	// used if Length is zero.
	Dx, Dy float64
}

// Divisor returns the value ice water content is divided by:
// Length² if Length is set, otherwise Dx+Dy if Dx and Dy are set,
// otherwise 1.
//
// Dx and Dy are summed rather than multiplied. This reproduces the
// reference algorithm so results stay comparable with it.
func (a AreaNormalization) Divisor() (float64, error) {
	switch {
	case a.Length != 0:
		if !validLength(a.Length) {
			return 0, fmt.Errorf("%w: Length=%g", ErrInvalidLength, a.Length)
		}
		return a.Length * a.Length, nil
	case a.Dx != 0 || a.Dy != 0:
		if !validLength(a.Dx) || !validLength(a.Dy) {
			return 0, fmt.Errorf("%w: Dx=%g, Dy=%g; both must be positive", ErrInvalidLength, a.Dx, a.Dy)
		}
		return a.Dx + a.Dy, nil
	default:
		return 1, nil
	}
}

func validLength(l float64) bool {
	return l > 0 && !math.IsInf(l, 1)
}
