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

import "fmt"

// ThresholdKind specifies what a vertical-threshold field holds.
type ThresholdKind int

const (
	// Temperature means the field holds temperatures [°C]. Cells warmer
	// than the threshold hold no ice.
	Temperature ThresholdKind = iota

	// Altitude means the field holds altitudes [m]. Cells below the
	// threshold (the melting level) hold no ice.
	Altitude
)

func (k ThresholdKind) String() string {
	switch k {
	case Temperature:
		return "temperature"
	case Altitude:
		return "altitude"
	default:
		return fmt.Sprintf("ThresholdKind(%d)", int(k))
	}
}

// VerticalThreshold describes how a vertical-threshold field is used to
// exclude cells that can not contain ice.
type VerticalThreshold struct {
	Kind  ThresholdKind
	Value float64
}

// Excludes returns whether a cell whose vertical-threshold field
// value is v holds no ice. NaN values are never excluded.
func (t VerticalThreshold) Excludes(v float64) bool {
	if t.Kind == Altitude {
		return v < t.Value
	}
	return v > t.Value
}

func (t VerticalThreshold) String() string {
	return fmt.Sprintf("%s %g", t.Kind, t.Value)
}
