// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"edustore/cli/internal/catalog"
)

var browseCategory string

// browseCmd renders the public storefront landing view: banners,
// categories, and product cards. No session is required; when the backend
// is unreachable the built-in dataset is shown.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the storefront catalog",
	Long: `The browse command shows the storefront landing view: promotional
banners, the category list, and product cards. Use --category to filter
products by category id.

Browsing is public and needs no login.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Loading the store", spinnerFrames, 120*time.Millisecond)
		listing, err := a.catalog.Listing(cmd.Context())
		stopSpinner()
		if err != nil {
			return err
		}

		cursor.Hide()
		defer cursor.Show()

		renderListing(a.cfg.AppName, listing, browseCategory)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringVar(&browseCategory, "category", "all", "Filter products by category id")
}

// renderListing paints the landing view to the terminal.
func renderListing(appName string, l *catalog.Listing, categoryID string) {
	pterm.DefaultSection.Println(appName)

	for _, b := range l.Banners {
		pterm.Info.Printf("%s — %s\n", b.Title, b.Subtitle)
	}

	if len(l.Categories) > 0 {
		labels := make([]string, 0, len(l.Categories))
		for _, c := range l.Categories {
			labels = append(labels, c.Label)
		}
		pterm.DefaultSection.Println("Categories")
		pterm.Println(pterm.Gray(joinWithDots(labels)))
	}

	products := catalog.FilterByCategory(l.Products, categoryID)
	pterm.DefaultSection.Println("Products")
	if len(products) == 0 {
		fmt.Println("No products in this category.")
		return
	}

	rows := pterm.TableData{{"Title", "Price", "Was", "Badge", "Merchant"}}
	for _, p := range products {
		was := ""
		if p.OriginalPrice > 0 {
			was = strconv.Itoa(p.OriginalPrice)
		}
		rows = append(rows, []string{p.Title, strconv.Itoa(p.Price), was, p.Badge, p.Merchant})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func joinWithDots(items []string) string {
	out := ""
	for i, it := range items {
		if i > 0 {
			out += " · "
		}
		out += it
	}
	return out
}
