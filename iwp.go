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
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// IWPOption is an optional setting for IWP.
type IWPOption func(*iwpConfig)

type iwpConfig struct {
	axis      int
	axisSet   bool
	threshold *VerticalThreshold
	area      AreaNormalization
	defaults  Defaults
	log       logrus.FieldLogger
}

// VerticalAxis sets the dimension of the input arrays that represents
// height. Negative values count back from the last dimension.
// The default is the last dimension.
func VerticalAxis(axis int) IWPOption {
	return func(c *iwpConfig) {
		c.axis = axis
		c.axisSet = true
	}
}

// TemperatureThreshold specifies that the vertical-threshold field holds
// temperatures [°C] and that cells warmer than t hold no ice.
func TemperatureThreshold(t float64) IWPOption {
	return Threshold(VerticalThreshold{Kind: Temperature, Value: t})
}

// MeltingLevel specifies that the vertical-threshold field holds
// altitudes [m] and that cells below altitude h hold no ice.
func MeltingLevel(h float64) IWPOption {
	return Threshold(VerticalThreshold{Kind: Altitude, Value: h})
}

// Threshold sets how the vertical-threshold field is interpreted.
// If more than one threshold option is given, the last one is used.
// Without a threshold option, the field is treated as temperature with
// the default temperature threshold.
func Threshold(t VerticalThreshold) IWPOption {
	return func(c *iwpConfig) {
		c.threshold = &t
	}
}

// GridLength normalizes ice water content by the area of a square grid
// cell with edge length l.
func GridLength(l float64) IWPOption {
	return func(c *iwpConfig) {
		c.area.Length = l
	}
}

// GridLengths normalizes ice water content by the orthogonal grid cell
// edge lengths dx and dy. See AreaNormalization.Divisor for how
// they are combined. GridLength takes precedence if both are given.
func GridLengths(dx, dy float64) IWPOption {
	return func(c *iwpConfig) {
		c.area.Dx, c.area.Dy = dx, dy
	}
}

// WithDefaults replaces DefaultConfig as the source of default values.
func WithDefaults(d Defaults) IWPOption {
	return func(c *iwpConfig) {
		c.defaults = d
	}
}

// WithLogger sets a logger for debugging messages.
func WithLogger(log logrus.FieldLogger) IWPOption {
	return func(c *iwpConfig) {
		c.log = log
	}
}

func (c *iwpConfig) verticalThreshold() VerticalThreshold {
	if c.threshold != nil {
		return *c.threshold
	}
	return VerticalThreshold{Kind: Temperature, Value: c.defaults.TemperatureThreshold}
}

// IWP estimates ice water path [g/m²] from radar reflectivity [dBZ].
//
// verticalThreshold must have the same shape as reflectivity and holds
// either temperature or altitude for each cell, as specified by the
// threshold options. verticalSpacing is the depth [m] of each cell; it
// must either have the same shape as reflectivity or hold a single value
// (see Scalar). The returned array has the shape of reflectivity with
// the vertical axis removed. NaN values are skipped when summing over
// the vertical axis.
//
// The inputs are not modified.
func IWP(reflectivity, verticalThreshold, verticalSpacing *sparse.DenseArray, opts ...IWPOption) (*sparse.DenseArray, error) {
	var n int
	for _, a := range []*sparse.DenseArray{reflectivity, verticalThreshold, verticalSpacing} {
		if a != nil {
			n++
		}
	}
	if n != 3 {
		return nil, fmt.Errorf("%w: reflectivity, vertical threshold, and vertical spacing "+
			"are required but only %d were given", ErrInvalidArgumentCount, n)
	}

	c := &iwpConfig{defaults: DefaultConfig, log: discardLog}
	for _, o := range opts {
		o(c)
	}

	ndims := len(reflectivity.Shape)
	if ndims == 0 {
		return nil, fmt.Errorf("%w: reflectivity has no dimensions", ErrShapeMismatch)
	}
	axis := ndims - 1
	if c.axisSet {
		var err error
		if axis, err = normalizeAxis(c.axis, ndims); err != nil {
			return nil, err
		}
	}
	gdiv, err := c.area.Divisor()
	if err != nil {
		return nil, err
	}
	if err = checkElements("reflectivity", reflectivity); err != nil {
		return nil, err
	}
	if !sameShape(reflectivity.Shape, verticalThreshold.Shape) {
		return nil, fmt.Errorf("%w: reflectivity shape %v != vertical threshold shape %v",
			ErrShapeMismatch, reflectivity.Shape, verticalThreshold.Shape)
	}
	if err = checkElements("vertical threshold", verticalThreshold); err != nil {
		return nil, err
	}
	spacing, err := Broadcast(verticalSpacing, reflectivity.Shape)
	if err != nil {
		return nil, err
	}
	if err = checkElements("vertical spacing", spacing); err != nil {
		return nil, err
	}

	t := c.verticalThreshold()
	log := c.log.WithFields(logrus.Fields{
		"shape":     reflectivity.Shape,
		"axis":      axis,
		"threshold": t.String(),
		"divisor":   gdiv,
	})

	var iwc *sparse.DenseArray
	if math.Ceil(nanMax(reflectivity.Elements)) == 0 {
		log.Debug("met: no radar echo; ice water content is zero everywhere")
		iwc = sparse.ZerosDense(copyShape(reflectivity.Shape)...)
	} else {
		density, err := Density(reflectivity, verticalThreshold, t)
		if err != nil {
			return nil, err
		}
		if iwc, err = IWC(reflectivity, density, gdiv); err != nil {
			return nil, err
		}
		log.Debug("met: calculated ice water content")
	}

	floats.Mul(iwc.Elements, spacing.Elements)
	return NaNSum(iwc, axis)
}
