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

// Package greatcircle calculates distances along the surface of a sphere.
package greatcircle

import (
	"errors"
	"fmt"
	"math"

	"github.com/ctessum/unit"
	"github.com/spatialmodel/met"
)

var (
	// ErrScalarRequired is returned when the starting point is not a
	// single latitude and longitude.
	ErrScalarRequired = errors.New("greatcircle: starting point must be a single value")

	// ErrSizeMismatch is returned when destination latitudes and
	// longitudes have different lengths.
	ErrSizeMismatch = errors.New("greatcircle: latitude and longitude lengths differ")
)

// Options specify how distances are calculated.
type Options struct {
	// Radius is the radius of the sphere. Distances are returned in
	// the same units. If zero, met.DefaultConfig.EarthRadius [km] is used.
	Radius float64

	// Radians specifies that coordinates are in radians rather
	// than degrees.
	Radians bool
}

func (o Options) radius() float64 {
	if o.Radius == 0 {
		return met.DefaultConfig.EarthRadius
	}
	return o.Radius
}

func (o Options) angle(v float64) float64 {
	if o.Radians {
		return v
	}
	return v * math.Pi / 180
}

// Distance returns the great-circle distance between (lat1, lon1) and
// (lat2, lon2).
func Distance(lat1, lon1, lat2, lon2 float64, o Options) float64 {
	return o.radius() * centralAngle(o.angle(lat1), o.angle(lon1), o.angle(lat2), o.angle(lon2))
}

// Distances returns the great-circle distances from a single point to
// each of the points in toLat and toLon. fromLat and fromLon must each
// hold exactly one value.
func Distances(fromLat, fromLon, toLat, toLon []float64, o Options) ([]float64, error) {
	if len(fromLat) != 1 || len(fromLon) != 1 {
		return nil, fmt.Errorf("%w: have %d latitudes and %d longitudes",
			ErrScalarRequired, len(fromLat), len(fromLon))
	}
	if len(toLat) != len(toLon) {
		return nil, fmt.Errorf("%w: %d != %d", ErrSizeMismatch, len(toLat), len(toLon))
	}
	d := make([]float64, len(toLat))
	for i := range toLat {
		d[i] = Distance(fromLat[0], fromLon[0], toLat[i], toLon[i], o)
	}
	return d, nil
}

// Length returns the great-circle distance between (lat1, lon1) and
// (lat2, lon2) on a sphere with the given radius, which must have
// dimensions of length. If radius is nil, the mean radius of the
// Earth in meters is used.
func Length(lat1, lon1, lat2, lon2 float64, radius *unit.Unit, radians bool) (*unit.Unit, error) {
	if radius == nil {
		radius = unit.New(met.DefaultConfig.EarthRadius*1000, unit.Meter)
	}
	if err := radius.Check(unit.Meter); err != nil {
		return nil, fmt.Errorf("greatcircle: radius: %v", err)
	}
	o := Options{Radians: radians}
	θ := centralAngle(o.angle(lat1), o.angle(lon1), o.angle(lat2), o.angle(lon2))
	return unit.New(radius.Value()*θ, unit.Meter), nil
}

// centralAngle uses the haversine formula to calculate
// the angle [radians] between two points.
func centralAngle(φ1, λ1, φ2, λ2 float64) float64 {
	sinΔφ := math.Sin((φ2 - φ1) / 2)
	sinΔλ := math.Sin((λ2 - λ1) / 2)
	a := sinΔφ*sinΔφ + math.Cos(φ1)*math.Cos(φ2)*sinΔλ*sinΔλ
	a = math.Min(1, math.Max(0, a))
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
