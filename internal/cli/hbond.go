/*
 * hbond.go, part of meci.
 *
 *
 * Copyright 2024 The meci authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meci-tools/meci/hbond"
)

var hbondCmd = &cobra.Command{
	Use:   "hbond root_dir name",
	Short: "Plot the hydrogen bonding frequency along trajectories",
	Long: `Read root_dir/name-0.dat, root_dir/name-1.dat... and compute, for every
step, the fraction of the trajectories still running at that step which
report at least one hydrogen bond. The result is plotted to an image.`,
	Args: cobra.ExactArgs(2),
	RunE: runHbond,
}

var (
	hbondOut   string
	hbondPrint bool
)

func init() {
	hbondCmd.Flags().StringVarP(&hbondOut, "out", "o", hbond.DefaultPlot, "image file for the plot (format from the extension)")
	hbondCmd.Flags().BoolVar(&hbondPrint, "print", false, "also print the frequencies as a step/ratio table")
	rootCmd.AddCommand(hbondCmd)
}

func runHbond(cmd *cobra.Command, args []string) error {
	trajs, err := hbond.Load(args[0], args[1])
	if err != nil {
		return err
	}
	freq := hbond.Frequency(trajs)
	if hbondPrint {
		if err := hbond.WriteTable(cmd.OutOrStdout(), freq); err != nil {
			return err
		}
	}
	if err := hbond.Plot(freq, hbondOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d trajectories, %d steps, plot written to %s\n", len(trajs), len(freq), hbondOut)
	return nil
}
