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

	"github.com/spatialmodel/met/greatcircle"
	"github.com/spf13/cobra"
)

// distanceCmd is a command that calculates great-circle distances.
var distanceCmd = &cobra.Command{
	Use:   "distance lat1 lon1 lat2 lon2",
	Short: "Calculate great-circle distances",
	Long: `distance calculates the great-circle distance from point (lat1, lon1)
to point (lat2, lon2). lat2 and lon2 may be comma-separated lists of the same
length, in which case one distance is output for each destination point.
Distances are in the units of EarthRadius. Put -- before the arguments if
any of them start with a minus sign.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Distance(cmd.OutOrStdout(), args[0], args[1], args[2], args[3], greatcircle.Options{
			Radius:  Cfg.GetFloat64("EarthRadius"),
			Radians: Cfg.GetBool("Radians"),
		})
	},
	DisableAutoGenTag: true,
}

// Distance writes the great-circle distances from the point
// (lat1, lon1) to each of the points in lat2 and lon2 to w. The
// arguments are comma-separated lists of numbers.
func Distance(w io.Writer, lat1, lon1, lat2, lon2 string, o greatcircle.Options) error {
	var coords [4][]float64
	for i, s := range []string{lat1, lon1, lat2, lon2} {
		v, err := parseFloats(s)
		if err != nil {
			return err
		}
		coords[i] = v
	}
	d, err := greatcircle.Distances(coords[0], coords[1], coords[2], coords[3], o)
	if err != nil {
		return err
	}
	for _, v := range d {
		fmt.Fprintf(w, "%g\n", v)
	}
	return nil
}
