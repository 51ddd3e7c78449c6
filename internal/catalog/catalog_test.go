// Copyright (c) 2025 Edu Commerce
// Licensed under the MIT License. See LICENSE file in the project root for details.

package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edustore/cli/internal/api"
)

type noCreds struct{}

func (noCreds) Token() string { return "" }
func (noCreds) ClearAuth()    {}

func newTestCatalog(t *testing.T) (*Service, *int64) {
	t.Helper()
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		switch r.URL.Path {
		case "/products":
			w.Write([]byte(`[{"id":"p1","title":"Voucher","price":5000,"category":"ride-voucher"}]`))
		case "/categories":
			w.Write([]byte(`[{"id":"all","label":"All"},{"id":"ride-voucher","label":"Ride voucher"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	return NewService(api.New(srv.URL, 0, noCreds{})), &hits
}

func TestListingFetchesFromBackend(t *testing.T) {
	svc, _ := newTestCatalog(t)

	l, err := svc.Listing(context.Background())
	require.NoError(t, err)
	require.Len(t, l.Products, 1)
	assert.Equal(t, "Voucher", l.Products[0].Title)
	assert.Len(t, l.Categories, 2)
	assert.NotEmpty(t, l.Banners)
}

func TestListingServedFromCache(t *testing.T) {
	svc, hits := newTestCatalog(t)

	_, err := svc.Listing(context.Background())
	require.NoError(t, err)
	first := atomic.LoadInt64(hits)

	_, err = svc.Listing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, atomic.LoadInt64(hits), "fresh cache must not refetch")

	svc.Invalidate()
	_, err = svc.Listing(context.Background())
	require.NoError(t, err)
	assert.Greater(t, atomic.LoadInt64(hits), first)
}

func TestListingFallsBackWhenUnreachable(t *testing.T) {
	client := api.New("http://127.0.0.1:1", time.Second, noCreds{})
	svc := NewService(client)

	l, err := svc.Listing(context.Background())
	require.NoError(t, err, "offline browsing must degrade, not error")
	assert.Equal(t, Fallback().Products, l.Products)
	assert.NotEmpty(t, l.Categories)
}

func TestFilterByCategory(t *testing.T) {
	products := []Product{
		{ID: "1", Category: "ride-voucher"},
		{ID: "2", Category: "digital-template"},
		{ID: "3", Category: "ride-voucher"},
	}

	assert.Len(t, FilterByCategory(products, "all"), 3)
	assert.Len(t, FilterByCategory(products, ""), 3)
	assert.Len(t, FilterByCategory(products, "ride-voucher"), 2)
	assert.Empty(t, FilterByCategory(products, "fnb-voucher"))
}
