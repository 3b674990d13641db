/*
 * merge.go, part of meci.
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

	"github.com/meci-tools/meci/jsonmerge"
)

var mergeCmd = &cobra.Command{
	Use:   "merge file1 file2 output_path",
	Short: "Concatenate two list-valued JSON files with the same keys",
	Long: `Merge two JSON files of the form {key: [values...]}, such as two datasets
written by extract. Both files must have the same keys. Each list in the output
is the list in file1 followed by the list in file2.`,
	Args: cobra.ExactArgs(3),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	if err := jsonmerge.MergeFiles(args[0], args[1], args[2]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "merged %s with %s into %s\n", args[0], args[1], args[2])
	return nil
}
