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

import "errors"

// Errors returned by this package. They are wrapped with additional
// context, so use errors.Is to check for them.
var (
	// ErrInvalidArgumentCount is returned when one or more required
	// inputs are missing.
	ErrInvalidArgumentCount = errors.New("met: wrong number of required inputs")

	// ErrShapeMismatch is returned when input arrays cannot be reconciled
	// to the same shape.
	ErrShapeMismatch = errors.New("met: array shape mismatch")

	// ErrInvalidAxis is returned when the vertical axis is not a
	// dimension of the input.
	ErrInvalidAxis = errors.New("met: invalid vertical axis")

	// ErrInvalidLength is returned for unusable area-normalization lengths.
	ErrInvalidLength = errors.New("met: invalid grid length")
)
