// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"edustore/cli/internal/guard"
)

// dashboardCmd is the authenticated landing view: a profile summary plus a
// slice of the storefront. It renders only for an authorized session and
// redirects to login otherwise.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Your account overview (requires login)",
	Long: `The dashboard command shows the authenticated landing view: your
profile and a few featured products from the store.

Without a session it redirects you to login instead of rendering.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if d := a.authorize(guard.Guard{Requirement: guard.RequireAuth}); d.State != guard.Authorized {
			return nil
		}

		st := a.session.Snapshot()
		pterm.DefaultSection.Printf("%s — Dashboard", a.cfg.AppName)

		fmt.Printf("👤 %s\n", st.User.Name)
		fmt.Printf("   %s\n", st.User.Email)
		if st.User.Role != "" {
			fmt.Printf("   role: %s\n", st.User.Role)
		}

		listing, err := a.catalog.Listing(cmd.Context())
		if err != nil || len(listing.Products) == 0 {
			return nil
		}

		pterm.DefaultSection.Println("Featured")
		featured := listing.Products
		if len(featured) > 3 {
			featured = featured[:3]
		}
		for _, p := range featured {
			fmt.Printf("  • %s — %d pts\n", p.Title, p.Price)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
