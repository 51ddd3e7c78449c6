// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package catalog provides the public storefront data behind the landing
// view: banners, categories, and products. Listings are fetched through the
// shared dispatcher, cached in process memory, and replaced by a built-in
// fallback dataset when the backend is unreachable so browsing still works
// offline.
package catalog

import (
	"context"
	"sync"
	"time"
)

// Product is a storefront item card.
type Product struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Price         int    `json:"price"`
	OriginalPrice int    `json:"originalPrice,omitempty"`
	Badge         string `json:"badge,omitempty"`
	Merchant      string `json:"merchant,omitempty"`
	Category      string `json:"category,omitempty"`
}

// Category is a storefront filter entry.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Banner is a promotional hero entry.
type Banner struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Listing is the landing view dataset.
type Listing struct {
	Banners    []Banner
	Categories []Category
	Products   []Product
}

// Fetcher is the slice of the dispatcher the catalog needs.
// *api.Client satisfies it.
type Fetcher interface {
	Get(ctx context.Context, path string, out any) error
}

// cacheTTL bounds how long a fetched listing is served from memory.
const cacheTTL = 10 * time.Minute

// Service fetches and caches the storefront listing.
type Service struct {
	client Fetcher

	mu       sync.Mutex
	cached   *Listing
	cachedAt time.Time
}

// NewService constructs a catalog service over the shared dispatcher.
func NewService(client Fetcher) *Service {
	return &Service{client: client}
}

// Listing returns the storefront dataset. A cached listing is served while
// fresh; on network failure the built-in fallback dataset is returned so
// the landing view degrades instead of erroring.
func (s *Service) Listing(ctx context.Context) (*Listing, error) {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.cachedAt) < cacheTTL {
		l := s.cached
		s.mu.Unlock()
		return l, nil
	}
	s.mu.Unlock()

	var products []Product
	if err := s.client.Get(ctx, "/products", &products); err != nil {
		return Fallback(), nil
	}
	var categories []Category
	if err := s.client.Get(ctx, "/categories", &categories); err != nil {
		return Fallback(), nil
	}

	l := &Listing{
		Banners:    fallbackBanners,
		Categories: categories,
		Products:   products,
	}

	s.mu.Lock()
	s.cached = l
	s.cachedAt = time.Now()
	s.mu.Unlock()
	return l, nil
}

// Invalidate drops the cached listing (primarily for testing).
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
	s.cachedAt = time.Time{}
}

// FilterByCategory returns the products in the given category.
// The "all" pseudo-category returns everything.
func FilterByCategory(products []Product, categoryID string) []Product {
	if categoryID == "" || categoryID == "all" {
		return products
	}
	var out []Product
	for _, p := range products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}
