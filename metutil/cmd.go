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

// Package metutil provides the command-line and configuration
// interface to the met library.
package metutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/met"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to met.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel specifies the minimum level of log messages
              (debug, info, warning, or error).`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "VerticalCoordinate",
			usage: `
              VerticalCoordinate specifies whether the vertical threshold
              values are temperatures ("temperature", in °C) or altitudes
              ("altitude", in m).`,
			defaultVal: "temperature",
			flagsets:   []*pflag.FlagSet{iwpCmd.Flags()},
		},
		{
			name: "TemperatureThreshold",
			usage: `
              TemperatureThreshold is the temperature [°C] above which
              cells are assumed to hold no ice. It is used when
              VerticalCoordinate is "temperature".`,
			defaultVal: met.DefaultConfig.TemperatureThreshold,
			flagsets:   []*pflag.FlagSet{iwpCmd.Flags()},
		},
		{
			name: "MeltingLevel",
			usage: `
              MeltingLevel is the altitude [m] below which cells are assumed
              to hold no ice. It is used when VerticalCoordinate is "altitude".`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{iwpCmd.Flags()},
		},
		{
			name: "VerticalAxis",
			usage: `
              VerticalAxis is the array dimension that represents height.
              Negative values count back from the last dimension.`,
			defaultVal: -1,
			flagsets:   []*pflag.FlagSet{iwpCmd.Flags()},
		},
		{
			name: "GridLength",
			usage: `
              GridLength is the edge length of square grid cells. If it is
              not zero, ice water content is divided by GridLength².`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{iwpCmd.Flags()},
		},
		{
			name: "GridDx",
			usage: `
              GridDx is the grid cell edge length in the x direction. If
              GridDx and GridDy are set and GridLength is not, ice water
              content is divided by GridDx+GridDy.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{iwpCmd.Flags()},
		},
		{
			name: "GridDy",
			usage: `
              GridDy is the grid cell edge length in the y direction.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{iwpCmd.Flags()},
		},
		{
			name: "Units",
			usage: `
              Units specifies whether to print ice water path with SI
              units (kg m^-2) rather than as a bare number in g/m².`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{iwpCmd.Flags()},
		},
		{
			name: "EarthRadius",
			usage: `
              EarthRadius is the radius of the sphere used for distance
              calculations. Distances are output in the same units.`,
			defaultVal: met.DefaultConfig.EarthRadius,
			flagsets:   []*pflag.FlagSet{distanceCmd.Flags()},
		},
		{
			name: "Radians",
			usage: `
              Radians specifies that coordinates are in radians
              rather than degrees.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{distanceCmd.Flags()},
		},
		{
			name: "MonthLength",
			usage: `
              MonthLength is the number of leading characters to compare
              when matching month names. Zero compares whole names.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{monthCmd.Flags()},
		},
		{
			name: "IgnoreCase",
			usage: `
              IgnoreCase specifies that month names are matched
              without regard to case.`,
			shorthand:  "i",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{monthCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("MET")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(iwpCmd)
	Root.AddCommand(distanceCmd)
	Root.AddCommand(monthCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("met: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "met",
	Short: "Meteorological and radar data utilities.",
	Long: `met provides utilities for meteorological and radar data analysis:
ice water path estimation from radar reflectivity, great-circle distances,
and month-name lookup. Use the subcommands specified below to access them.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'MET_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of met.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "met v%s\n", met.Version)
	},
	DisableAutoGenTag: true,
}
