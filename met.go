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

// Package met holds utilities for meteorological and radar data analysis.
// Its main function, IWP, estimates ice water path from radar reflectivity.
// Companion functions for great-circle distances and month-name lookup
// are in subpackages greatcircle and month.
package met

import (
	"io/ioutil"

	"github.com/sirupsen/logrus"
)

// Version gives the version number.
const Version = "1.0.0"

// Defaults holds values that are used when a caller does not
// specify them.
type Defaults struct {
	// EarthRadius is the mean radius of the Earth [km].
	EarthRadius float64

	// TemperatureThreshold is the temperature [°C] above which
	// ice is assumed to be absent when no vertical threshold is given.
	TemperatureThreshold float64
}

// DefaultConfig holds the standard default values.
var DefaultConfig = Defaults{
	EarthRadius:          6371,
	TemperatureThreshold: -10,
}

// discardLog is used when no logger is supplied.
var discardLog logrus.FieldLogger = func() *logrus.Logger {
	l := logrus.New()
	l.Out = ioutil.Discard
	return l
}()
