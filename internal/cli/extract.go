/*
 * extract.go, part of meci.
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
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/meci-tools/meci"
)

var extractCmd = &cobra.Command{
	Use:   "extract reactant_dir product_dir output_path natoms",
	Short: "Extract NAC data from MECI logs",
	Long: `Walk reactant_dir and then product_dir looking for MECI logs, and write the
species, coordinates, energy gaps and NAC vectors of every log that terminated
properly to output_path as JSON. natoms is the number of atoms in the system.

Logs that did not terminate properly are skipped with a warning. Any other
problem with a log stops the run without writing the output.

Example:
  meci extract reactant/ product/ nacs.json 6`,
	Args: cobra.ExactArgs(4),
	RunE: runExtract,
}

var (
	extractFormat string
	extractXYZ    string
)

func init() {
	extractCmd.Flags().StringVar(&extractFormat, "format", "", "TOML file overriding the log layout (markers and offsets)")
	extractCmd.Flags().StringVar(&extractXYZ, "xyz", "", "also write the extracted geometries to this XYZ file")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	natoms, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("natoms must be an integer, got %q", args[3])
	}
	if natoms < 1 {
		return fmt.Errorf("natoms must be positive, got %d", natoms)
	}
	C := &meci.Config{
		ReactantDir: args[0],
		ProductDir:  args[1],
		Output:      args[2],
		NAtoms:      natoms,
		XYZ:         extractXYZ,
		Log:         log.New(cmd.ErrOrStderr(), "meci: ", 0),
	}
	if extractFormat != "" {
		C.Format, err = meci.LoadFormat(extractFormat)
		if err != nil {
			return err
		}
	}
	D, err := meci.Extract(C, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), D.Summary())
	return nil
}
