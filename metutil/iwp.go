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
	"os"

	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/met"
	"github.com/spf13/cobra"
)

// iwpCmd is a command that calculates ice water path.
var iwpCmd = &cobra.Command{
	Use:   "iwp reflectivity threshold spacing",
	Short: "Estimate ice water path",
	Long: `iwp estimates ice water path [g/m²] for a column of radar gates.
reflectivity is a comma-separated list of reflectivities [dBZ], one per gate.
threshold is a list of the same length holding the temperature [°C] or
altitude [m] of each gate, as specified by VerticalCoordinate.
spacing is the depth [m] of each gate, given either as a single value or as
one value per gate. Put -- before the arguments if any of them start with
a minus sign.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 3 {
			return fmt.Errorf("%w: iwp takes reflectivity, threshold, and spacing but got %d arguments",
				met.ErrInvalidArgumentCount, len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(Cfg.GetString("LogLevel"), os.Stderr)
		if err != nil {
			return err
		}
		opts, err := iwpOptions(Cfg)
		if err != nil {
			return err
		}
		return IWP(cmd.OutOrStdout(), log, args[0], args[1], args[2], Cfg.GetBool("Units"), opts...)
	},
	DisableAutoGenTag: true,
}

// IWP calculates ice water path for a single column of radar gates and
// writes the result to w. reflectivity, threshold, and spacing are
// comma-separated lists of numbers; spacing may hold a single number.
// If units is true, the result is written as a dimensioned quantity.
func IWP(w io.Writer, log logrus.FieldLogger, reflectivity, threshold, spacing string, units bool, opts ...met.IWPOption) error {
	refl, err := column(reflectivity)
	if err != nil {
		return err
	}
	vt, err := column(threshold)
	if err != nil {
		return err
	}
	dz, err := column(spacing)
	if err != nil {
		return err
	}
	if len(dz.Elements) == 1 {
		dz = met.Scalar(dz.Elements[0])
	}
	log.WithFields(logrus.Fields{
		"gates":   len(refl.Elements),
		"spacing": spacing,
	}).Debug("met: calculating ice water path")

	iwp, err := met.IWP(refl, vt, dz, append(opts, met.WithLogger(log))...)
	if err != nil {
		return err
	}
	for _, v := range iwp.Elements {
		if units {
			fmt.Fprintf(w, "%g\n", met.IWPQuantity(v))
		} else {
			fmt.Fprintf(w, "%g\n", v)
		}
	}
	return nil
}

// column converts a comma-separated list of numbers into an array
// with one row.
func column(s string) (*sparse.DenseArray, error) {
	v, err := parseFloats(s)
	if err != nil {
		return nil, err
	}
	a := sparse.ZerosDense(1, len(v))
	copy(a.Elements, v)
	return a, nil
}
