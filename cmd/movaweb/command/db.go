// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import "github.com/spf13/cobra"

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For a fresh installation, the init action creates the route distance
and cargo rate tables and seeds them with the reference data. Running
it against an existing installation refreshes the seeded rows in place
without touching rows which were added manually.`,
}

func init() {
	rootCmd.AddCommand(dbCmd)
}
