// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import "github.com/spf13/cobra"

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Change-event stream management actions",
	Long: `Change-event stream management actions can be chosen by
sub-commands. The emit action publishes one change-event envelope on
the stream, so the notification channels can be exercised without the
marketplace backend.`,
}

func init() {
	rootCmd.AddCommand(streamCmd)
}
