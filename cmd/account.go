// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"edustore/cli/internal/guard"
)

var (
	accountName  string
	accountEmail string
	accountAttrs []string
)

// accountCmd groups account management subcommands.
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the signed-in account",
}

// accountUpdateCmd applies a partial update to the signed-in user's
// profile. The update is validated against the user schema and persisted
// write-through; there is no session to update when logged out.
var accountUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields (requires login)",
	Long: `The update command merges the given fields into your stored profile.
Core fields (name, email) are typed; additional attributes can be attached
with --set key=value. The account identity cannot be changed.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if d := a.authorize(guard.Guard{Requirement: guard.RequireAuth}); d.State != guard.Authorized {
			return nil
		}

		partial := map[string]any{}
		if accountName != "" {
			partial["name"] = accountName
		}
		if accountEmail != "" {
			partial["email"] = accountEmail
		}
		for _, attr := range accountAttrs {
			key, value, ok := strings.Cut(attr, "=")
			if !ok || key == "" {
				return fmt.Errorf("invalid --set %q: expected key=value", attr)
			}
			partial[key] = value
		}
		if len(partial) == 0 {
			return fmt.Errorf("nothing to update: pass --name, --email, or --set")
		}

		user, err := a.session.UpdateUser(partial)
		if err != nil {
			pterm.Error.Println(err.Error())
			return fmt.Errorf("update rejected")
		}

		fmt.Printf("✅ Profile updated: %s (%s)\n", user.Name, user.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountUpdateCmd)
	accountUpdateCmd.Flags().StringVar(&accountName, "name", "", "Display name")
	accountUpdateCmd.Flags().StringVar(&accountEmail, "email", "", "Email address")
	accountUpdateCmd.Flags().StringArrayVar(&accountAttrs, "set", nil, "Additional attribute as key=value (repeatable)")
}
