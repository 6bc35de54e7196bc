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
)

// Scalar returns a one-element array holding v, which can be used
// wherever a value is broadcast to the shape of another array.
func Scalar(v float64) *sparse.DenseArray {
	a := sparse.ZerosDense(1)
	a.Elements[0] = v
	return a
}

// Broadcast returns a if its shape equals shape. If a holds a single
// value, it returns a new array of the given shape filled with that value.
// Otherwise it returns ErrShapeMismatch.
func Broadcast(a *sparse.DenseArray, shape []int) (*sparse.DenseArray, error) {
	if sameShape(a.Shape, shape) {
		return a, nil
	}
	if len(a.Elements) != 1 {
		return nil, fmt.Errorf("%w: can not broadcast shape %v to %v", ErrShapeMismatch, a.Shape, shape)
	}
	o := sparse.ZerosDense(copyShape(shape)...)
	for i := range o.Elements {
		o.Elements[i] = a.Elements[0]
	}
	return o, nil
}

// NaNSum sums a along axis, skipping NaN values. The returned array
// has the shape of a with axis removed. Negative axis values count
// back from the last dimension.
func NaNSum(a *sparse.DenseArray, axis int) (*sparse.DenseArray, error) {
	axis, err := normalizeAxis(axis, len(a.Shape))
	if err != nil {
		return nil, err
	}
	if err := checkElements("input", a); err != nil {
		return nil, err
	}
	outer, n, inner := 1, a.Shape[axis], 1
	for _, d := range a.Shape[:axis] {
		outer *= d
	}
	for _, d := range a.Shape[axis+1:] {
		inner *= d
	}
	outShape := make([]int, 0, len(a.Shape)-1)
	outShape = append(outShape, a.Shape[:axis]...)
	outShape = append(outShape, a.Shape[axis+1:]...)
	o := sparse.ZerosDense(outShape...)

	for i := 0; i < outer; i++ {
		for k := 0; k < n; k++ {
			row := a.Elements[(i*n+k)*inner : (i*n+k+1)*inner]
			sum := o.Elements[i*inner : (i+1)*inner]
			for j, v := range row {
				if !math.IsNaN(v) {
					sum[j] += v
				}
			}
		}
	}
	return o, nil
}

// normalizeAxis converts axis to a non-negative dimension index.
func normalizeAxis(axis, ndims int) (int, error) {
	i := axis
	if i < 0 {
		i += ndims
	}
	if i < 0 || i >= ndims {
		return 0, fmt.Errorf("%w: axis %d for %d-dimensional data", ErrInvalidAxis, axis, ndims)
	}
	return i, nil
}

// checkElements makes sure a holds one element per index of its shape.
func checkElements(name string, a *sparse.DenseArray) error {
	n := 1
	for _, d := range a.Shape {
		n *= d
	}
	if n != len(a.Elements) {
		return fmt.Errorf("%w: %s has shape %v but %d elements", ErrShapeMismatch, name, a.Shape, len(a.Elements))
	}
	return nil
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, d := range a {
		if b[i] != d {
			return false
		}
	}
	return true
}

// copyShape copies s so that new arrays don't share
// their shape with their inputs.
func copyShape(s []int) []int {
	return append([]int(nil), s...)
}

// nanMax returns the largest non-NaN value in v, or -Inf if there is none.
func nanMax(v []float64) float64 {
	max := math.Inf(-1)
	for _, x := range v {
		if x > max {
			max = x
		}
	}
	return max
}
