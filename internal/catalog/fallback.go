// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

package catalog

// Built-in dataset served when the backend is unreachable.

var fallbackBanners = []Banner{
	{ID: 1, Title: "New chalk art", Subtitle: "Creative designs for education"},
	{ID: 2, Title: "20% points added", Subtitle: "Get more rewards"},
}

var fallbackCategories = []Category{
	{ID: "all", Label: "All"},
	{ID: "dvd-template", Label: "DVD template"},
	{ID: "digital-template", Label: "Digital template"},
	{ID: "catalog-us", Label: "Catalog us"},
	{ID: "self-workout", Label: "Self workout"},
	{ID: "ride-voucher", Label: "Ride voucher"},
	{ID: "fnb-voucher", Label: "F+B voucher"},
}

var fallbackProducts = []Product{
	{
		ID:            "1",
		Title:         "Voucher Ride Hailing by Golek Store",
		Description:   "Short description regarding content, how to use, etc.",
		Price:         5000,
		OriginalPrice: 10000,
		Badge:         "-50%",
		Merchant:      "Golek Store",
		Category:      "ride-voucher",
	},
	{
		ID:          "2",
		Title:       "Digital template starter pack",
		Description: "Short description regarding content, how to use, etc.",
		Price:       5000,
		Merchant:    "Edu Commerce",
		Category:    "digital-template",
	},
}

// Fallback returns a fresh copy of the built-in dataset.
func Fallback() *Listing {
	return &Listing{
		Banners:    append([]Banner(nil), fallbackBanners...),
		Categories: append([]Category(nil), fallbackCategories...),
		Products:   append([]Product(nil), fallbackProducts...),
	}
}
