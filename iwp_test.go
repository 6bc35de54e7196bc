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
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

const testTolerance = 1.e-12

// wantIWC is the closed-form ice water content [g/m³] for
// reflectivity dBZ and density ρ.
func wantIWC(dBZ, ρ float64) float64 {
	z := math.Pow(10, dBZ/10)
	return 1000 * math.Pi * ρ * math.Pow(4.e6, 3./7.) * math.Pow(5.68e-18/720*z, 4./7.)
}

func different(a, b, tolerance float64) bool {
	return !floats.EqualWithinAbsOrRel(a, b, tolerance, tolerance)
}

// field creates an array with the given values and shape.
func field(vals []float64, shape ...int) *sparse.DenseArray {
	a := sparse.ZerosDense(shape...)
	copy(a.Elements, vals)
	return a
}

func fill(v float64, shape ...int) *sparse.DenseArray {
	a := sparse.ZerosDense(shape...)
	for i := range a.Elements {
		a.Elements[i] = v
	}
	return a
}

func TestClassifyDensity(t *testing.T) {
	var tests = []struct {
		dBZ, density float64
	}{
		{dBZ: 55, density: 800},
		{dBZ: 40, density: 800},
		{dBZ: 39.999, density: 700},
		{dBZ: 35, density: 700},
		{dBZ: 34.999, density: 600},
		{dBZ: 30, density: 600},
		{dBZ: 29.999, density: 400},
		{dBZ: 18, density: 400},
		{dBZ: 17.999, density: 0},
		{dBZ: -5, density: 0},
		{dBZ: math.NaN(), density: 0},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.dBZ), func(t *testing.T) {
			have := ClassifyDensity(test.dBZ)
			if have != test.density {
				t.Errorf("%g dBZ: have density %g, want %g", test.dBZ, have, test.density)
			}
		})
	}
}

func TestDensity(t *testing.T) {
	refl := field([]float64{40, 39.999, 35, 29.999, 17.999, 45}, 2, 3)
	temp := field([]float64{-20, -20, -20, -20, -20, 5}, 2, 3)
	d, err := Density(refl, temp, VerticalThreshold{Kind: Temperature, Value: -10})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{800, 700, 700, 400, 0, 0}
	if !floats.Equal(d.Elements, want) {
		t.Errorf("have %v, want %v", d.Elements, want)
	}
	if _, err := Density(refl, fill(0, 3, 2), VerticalThreshold{}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("have error %v, want %v", err, ErrShapeMismatch)
	}
}

func TestIWPNoEcho(t *testing.T) {
	for _, dBZ := range []float64{0, 10, -0.5} {
		t.Run(fmt.Sprint(dBZ), func(t *testing.T) {
			iwp, err := IWP(fill(dBZ, 2, 3, 4), fill(-30, 2, 3, 4), Scalar(500))
			if err != nil {
				t.Fatal(err)
			}
			if len(iwp.Shape) != 2 || iwp.Shape[0] != 2 || iwp.Shape[1] != 3 {
				t.Errorf("shape: have %v, want [2 3]", iwp.Shape)
			}
			for i, v := range iwp.Elements {
				if v != 0 {
					t.Errorf("element %d: have %g, want 0", i, v)
				}
			}
		})
	}
}

func TestIWPSingleLevel(t *testing.T) {
	refl := field([]float64{40, 25, 10}, 3, 1)
	temp := fill(-20, 3, 1)
	iwp, err := IWP(refl, temp, Scalar(500))
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{wantIWC(40, 800) * 500, wantIWC(25, 400) * 500, 0}
	if len(iwp.Shape) != 1 || iwp.Shape[0] != 3 {
		t.Fatalf("shape: have %v, want [3]", iwp.Shape)
	}
	for i, w := range want {
		if different(iwp.Elements[i], w, testTolerance) {
			t.Errorf("column %d: have %g, want %g", i, iwp.Elements[i], w)
		}
	}
	// Hand-calculated value for 40 dBZ.
	if different(iwp.Elements[0], 533.2844389660298, 1.e-9) {
		t.Errorf("have %g, want 533.284", iwp.Elements[0])
	}
}

func TestIWPThreshold(t *testing.T) {
	refl := fill(45, 1, 2)
	var tests = []struct {
		name     string
		vertical []float64
		opts     []IWPOption
		want     []float64 // whether each level contributes
	}{
		{
			name:     "temperature",
			vertical: []float64{-6, -4},
			opts:     []IWPOption{TemperatureThreshold(-5)},
			want:     []float64{1, 0},
		},
		{
			name:     "melting level",
			vertical: []float64{2000, 3000},
			opts:     []IWPOption{MeltingLevel(2500)},
			want:     []float64{0, 1},
		},
		{
			name:     "default",
			vertical: []float64{-11, -9},
			want:     []float64{1, 0},
		},
		{
			name:     "injected default",
			vertical: []float64{-11, -9},
			opts:     []IWPOption{WithDefaults(Defaults{TemperatureThreshold: -8})},
			want:     []float64{1, 1},
		},
		{
			name:     "last wins",
			vertical: []float64{2000, 3000},
			opts:     []IWPOption{TemperatureThreshold(-10), MeltingLevel(2500)},
			want:     []float64{0, 1},
		},
		{
			name:     "tagged",
			vertical: []float64{-6, -4},
			opts:     []IWPOption{Threshold(VerticalThreshold{Kind: Temperature, Value: 0})},
			want:     []float64{1, 1},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			iwp, err := IWP(refl, field(test.vertical, 1, 2), Scalar(1), test.opts...)
			if err != nil {
				t.Fatal(err)
			}
			want := (test.want[0] + test.want[1]) * wantIWC(45, 800)
			if different(iwp.Elements[0], want, testTolerance) {
				t.Errorf("have %g, want %g", iwp.Elements[0], want)
			}
		})
	}
}

func TestIWPBroadcast(t *testing.T) {
	refl := sparse.ZerosDense(3, 4, 5)
	temp := sparse.ZerosDense(3, 4, 5)
	for i := range refl.Elements {
		refl.Elements[i] = 15 + float64(i%30)
		temp.Elements[i] = -30 + float64(i%25)
	}
	scalar, err := IWP(refl, temp, Scalar(500))
	if err != nil {
		t.Fatal(err)
	}
	array, err := IWP(refl, temp, fill(500, 3, 4, 5))
	if err != nil {
		t.Fatal(err)
	}
	if !floats.Equal(scalar.Elements, array.Elements) {
		t.Errorf("scalar %v != array %v", scalar.Elements, array.Elements)
	}
	if floats.Sum(scalar.Elements) == 0 {
		t.Error("result should not be all zero")
	}
}

func TestIWPAreaNormalization(t *testing.T) {
	refl := fill(40, 2, 2)
	temp := fill(-20, 2, 2)
	base := 2 * wantIWC(40, 800) * 100
	var tests = []struct {
		name string
		opts []IWPOption
		want float64
	}{
		{name: "none", want: base},
		{name: "length", opts: []IWPOption{GridLength(3)}, want: base / 9},
		{name: "lengths", opts: []IWPOption{GridLengths(3, 4)}, want: base / 7},
		{name: "length wins", opts: []IWPOption{GridLengths(3, 4), GridLength(2)}, want: base / 4},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			iwp, err := IWP(refl, temp, Scalar(100), test.opts...)
			if err != nil {
				t.Fatal(err)
			}
			for i, v := range iwp.Elements {
				if different(v, test.want, testTolerance) {
					t.Errorf("column %d: have %g, want %g", i, v, test.want)
				}
			}
		})
	}
}

func TestAreaNormalizationDivisor(t *testing.T) {
	var tests = []struct {
		a    AreaNormalization
		want float64
		err  error
	}{
		{a: AreaNormalization{}, want: 1},
		{a: AreaNormalization{Length: 5}, want: 25},
		{a: AreaNormalization{Dx: 2, Dy: 6}, want: 8},
		{a: AreaNormalization{Length: -1}, err: ErrInvalidLength},
		{a: AreaNormalization{Dx: 2}, err: ErrInvalidLength},
		{a: AreaNormalization{Length: math.NaN()}, err: ErrInvalidLength},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%+v", test.a), func(t *testing.T) {
			have, err := test.a.Divisor()
			if !errors.Is(err, test.err) {
				t.Fatalf("have error %v, want %v", err, test.err)
			}
			if have != test.want {
				t.Errorf("have %g, want %g", have, test.want)
			}
		})
	}
}

func TestIWPVerticalAxis(t *testing.T) {
	// Height is the first dimension: 2 levels by 3 columns.
	refl := field([]float64{
		40, 30, 10,
		35, math.NaN(), 10,
	}, 2, 3)
	temp := fill(-20, 2, 3)
	spacing := field([]float64{
		100, 100, 100,
		200, 200, 200,
	}, 2, 3)
	want := []float64{
		wantIWC(40, 800)*100 + wantIWC(35, 700)*200,
		wantIWC(30, 600) * 100,
		0,
	}
	for _, axis := range []int{0, -2} {
		t.Run(fmt.Sprint(axis), func(t *testing.T) {
			iwp, err := IWP(refl, temp, spacing, VerticalAxis(axis))
			if err != nil {
				t.Fatal(err)
			}
			if len(iwp.Shape) != 1 || iwp.Shape[0] != 3 {
				t.Fatalf("shape: have %v, want [3]", iwp.Shape)
			}
			for i, w := range want {
				if different(iwp.Elements[i], w, testTolerance) {
					t.Errorf("column %d: have %g, want %g", i, iwp.Elements[i], w)
				}
			}
		})
	}
}

func TestIWPDoesNotModifyInputs(t *testing.T) {
	refl := fill(40, 2, 2)
	temp := fill(-20, 2, 2)
	spacing := fill(10, 2, 2)
	if _, err := IWP(refl, temp, spacing); err != nil {
		t.Fatal(err)
	}
	if refl.Elements[0] != 40 || temp.Elements[0] != -20 || spacing.Elements[0] != 10 {
		t.Errorf("inputs were modified: %v %v %v", refl.Elements, temp.Elements, spacing.Elements)
	}
}

func TestIWPErrors(t *testing.T) {
	refl := fill(40, 2, 3)
	temp := fill(-20, 2, 3)
	var tests = []struct {
		name                    string
		refl, vertical, spacing *sparse.DenseArray
		opts                    []IWPOption
		err                     error
	}{
		{name: "missing spacing", refl: refl, vertical: temp, err: ErrInvalidArgumentCount},
		{name: "missing all", err: ErrInvalidArgumentCount},
		{name: "threshold shape", refl: refl, vertical: fill(-20, 3, 2), spacing: Scalar(1), err: ErrShapeMismatch},
		{name: "spacing shape", refl: refl, vertical: temp, spacing: fill(1, 2), err: ErrShapeMismatch},
		{name: "no dimensions", refl: &sparse.DenseArray{}, vertical: &sparse.DenseArray{}, spacing: Scalar(1), err: ErrShapeMismatch},
		{name: "axis", refl: refl, vertical: temp, spacing: Scalar(1), opts: []IWPOption{VerticalAxis(2)}, err: ErrInvalidAxis},
		{name: "negative axis", refl: refl, vertical: temp, spacing: Scalar(1), opts: []IWPOption{VerticalAxis(-3)}, err: ErrInvalidAxis},
		{name: "length", refl: refl, vertical: temp, spacing: Scalar(1), opts: []IWPOption{GridLength(-2)}, err: ErrInvalidLength},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := IWP(test.refl, test.vertical, test.spacing, test.opts...)
			if !errors.Is(err, test.err) {
				t.Errorf("have error %v, want %v", err, test.err)
			}
		})
	}
}

func TestNaNSum(t *testing.T) {
	a := field([]float64{
		1, 2, math.NaN(),
		4, math.NaN(), math.NaN(),
	}, 2, 3)
	var tests = []struct {
		axis  int
		shape []int
		want  []float64
	}{
		{axis: 0, shape: []int{3}, want: []float64{5, 2, 0}},
		{axis: 1, shape: []int{2}, want: []float64{3, 4}},
		{axis: -1, shape: []int{2}, want: []float64{3, 4}},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.axis), func(t *testing.T) {
			s, err := NaNSum(a, test.axis)
			if err != nil {
				t.Fatal(err)
			}
			if !sameShape(s.Shape, test.shape) {
				t.Errorf("shape: have %v, want %v", s.Shape, test.shape)
			}
			if !floats.Equal(s.Elements, test.want) {
				t.Errorf("have %v, want %v", s.Elements, test.want)
			}
		})
	}
	if _, err := NaNSum(a, 2); !errors.Is(err, ErrInvalidAxis) {
		t.Errorf("have error %v, want %v", err, ErrInvalidAxis)
	}
}

func TestNaNSum3D(t *testing.T) {
	a := sparse.ZerosDense(2, 3, 4)
	for i := range a.Elements {
		a.Elements[i] = float64(i)
	}
	s, err := NaNSum(a, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		for k := 0; k < 4; k++ {
			var want float64
			for j := 0; j < 3; j++ {
				want += a.Get(i, j, k)
			}
			if have := s.Get(i, k); have != want {
				t.Errorf("(%d, %d): have %g, want %g", i, k, have, want)
			}
		}
	}
}

func TestBroadcast(t *testing.T) {
	b, err := Broadcast(Scalar(3), []int{2, 2})
	if err != nil {
		t.Fatal(err)
	}
	if !floats.Equal(b.Elements, []float64{3, 3, 3, 3}) {
		t.Errorf("have %v", b.Elements)
	}
	same := fill(1, 2, 2)
	if b, _ := Broadcast(same, []int{2, 2}); b != same {
		t.Error("same-shape array should be returned as is")
	}
}

func TestIWPQuantity(t *testing.T) {
	q := IWPQuantity(500)
	if err := q.Check(IWPUnits); err != nil {
		t.Error(err)
	}
	if q.Value() != 0.5 {
		t.Errorf("have %g kg/m², want 0.5", q.Value())
	}
	if s := fmt.Sprintf("%v", IWCQuantity(2)); s != "0.002 kg m^-3" {
		t.Errorf("have %q", s)
	}
}
