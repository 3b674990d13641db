/*
 * root.go, part of meci.
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

// Package cli implements the meci command line: extract, hbond, merge and version.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// set at build time with -ldflags "-X github.com/meci-tools/meci/internal/cli.version=..."
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "meci",
	Short: "Tools to build NAC datasets from MECI optimizations",
	Long: `meci extracts non-adiabatic couplings, geometries and energy gaps from
the logs of MECI optimizations, merges the resulting datasets and analyses
hydrogen bonding along trajectories.`,
	SilenceUsage: true,
}

// Execute runs the root command. It exits with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
