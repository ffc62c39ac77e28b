// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookdex/bookdex/pkg/pagination"
)

func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/favorites", 1, 20},
		{"explicit", "/favorites?page=3&limit=50", 3, 50},
		{"negative_page", "/favorites?page=-1", 1, 20},
		{"zero_limit", "/favorites?limit=0", 1, 20},
		{"excessive_limit", "/favorites?limit=500", 1, 20},
		{"garbage", "/favorites?page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			p := pagination.FromRequest(r)

			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 20}.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 10, 95)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.TotalPages)
	assert.Equal(t, 95, meta.Total)
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	window, total := pagination.Slice(items, pagination.Params{Page: 2, Limit: 3})
	assert.Equal(t, []int{4, 5, 6}, window)
	assert.Equal(t, 7, total)

	window, total = pagination.Slice(items, pagination.Params{Page: 3, Limit: 3})
	assert.Equal(t, []int{7}, window)
	assert.Equal(t, 7, total)

	window, total = pagination.Slice(items, pagination.Params{Page: 9, Limit: 3})
	assert.Empty(t, window)
	assert.Equal(t, 7, total)
}
