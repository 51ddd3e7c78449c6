// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command for clearing the session.
// The backend is notified best-effort; local state always reaches the
// logged-out terminal state even when the remote call fails.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the saved session",
	Long: `The logout command signs you out of the store. It notifies the backend
that the session is over (best-effort, ignored when offline) and removes
the session token and profile from the OS keychain.

You are always logged out on this device afterwards, whether or not the
backend acknowledged the request.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		a.session.BeginLogout()

		// Best effort - don't fail if offline.
		remoteErr := a.auth.Logout(cmd.Context())

		// Always clear local credentials regardless of backend response.
		a.creds.ClearAuth()
		if remoteErr != nil {
			a.session.LogoutFailed()
		} else {
			a.session.LogoutSucceeded()
		}

		fmt.Println("✅ You have been signed out on this device")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
