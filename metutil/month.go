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

	"github.com/spatialmodel/met/month"
	"github.com/spf13/cobra"
)

// monthCmd is a command that converts month names to numbers.
var monthCmd = &cobra.Command{
	Use:   "month name...",
	Short: "Convert month names to numbers",
	Long: `month converts each of the given month names into a two-digit month
number. Set MonthLength to match abbreviations such as "Jan" or "Sept".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Month(cmd.OutOrStdout(), args, month.Options{
			Length:     Cfg.GetInt("MonthLength"),
			IgnoreCase: Cfg.GetBool("IgnoreCase"),
		})
	},
	DisableAutoGenTag: true,
}

// Month writes the two-digit month number of each name to w.
func Month(w io.Writer, names []string, o month.Options) error {
	nums, err := month.Number(names, o)
	if err != nil {
		return err
	}
	for _, n := range nums {
		fmt.Fprintln(w, n)
	}
	return nil
}
