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

package metutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/met"
	"github.com/spf13/cast"
)

// parseFloats parses a comma-separated list of numbers.
func parseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	o := make([]float64, len(fields))
	for i, f := range fields {
		v, err := cast.ToFloat64E(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("met: parsing number %d of `%s`: %v", i+1, s, err)
		}
		o[i] = v
	}
	return o, nil
}

// newLogger returns a logger writing messages at or above
// the given level to w.
func newLogger(level string, w io.Writer) (*logrus.Logger, error) {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("met: invalid LogLevel: %v", err)
	}
	log := logrus.New()
	log.Out = w
	log.Level = l
	return log, nil
}

// iwpOptions converts the ice water path configuration in cfg
// into options for met.IWP.
func iwpOptions(cfg *viper.Viper) ([]met.IWPOption, error) {
	opts := []met.IWPOption{met.VerticalAxis(cfg.GetInt("VerticalAxis"))}

	switch c := strings.ToLower(cfg.GetString("VerticalCoordinate")); c {
	case "temperature":
		opts = append(opts, met.TemperatureThreshold(cfg.GetFloat64("TemperatureThreshold")))
	case "altitude":
		opts = append(opts, met.MeltingLevel(cfg.GetFloat64("MeltingLevel")))
	default:
		return nil, fmt.Errorf("met: VerticalCoordinate must be `temperature` or `altitude` but is `%s`", c)
	}

	if l := cfg.GetFloat64("GridLength"); l != 0 {
		opts = append(opts, met.GridLength(l))
	}
	dx, dy := cfg.GetFloat64("GridDx"), cfg.GetFloat64("GridDy")
	if dx != 0 || dy != 0 {
		opts = append(opts, met.GridLengths(dx, dy))
	}
	return opts, nil
}
