// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command for displaying the current
// account. It prefers a fresh profile from the backend and falls back to
// the locally stored record when offline.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Long: `The whoami command displays the account behind the current session.
It asks the backend for the latest profile when reachable and falls back
to the locally stored record otherwise.

If no session exists, it tells you how to sign in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		st := a.session.Snapshot()
		if !st.IsAuthenticated {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'edustore login' to get started.")
			return nil
		}

		// Fresh profile when the backend is reachable.
		if user, err := a.auth.CurrentUser(cmd.Context()); err == nil && user != nil {
			fmt.Printf("👤 Signed in as %s (%s)\n", user.Name, user.Email)
			return nil
		}

		// A 401 on the call above tears the session down; re-check before
		// falling back to the stale local record.
		if st = a.session.Snapshot(); !st.IsAuthenticated {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'edustore login' to get started.")
			return nil
		}

		fmt.Printf("👤 Signed in as %s (%s)\n", st.User.Name, st.User.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
