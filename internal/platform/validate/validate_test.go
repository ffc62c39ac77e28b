// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookdex/bookdex/internal/platform/apperr"
	"github.com/bookdex/bookdex/internal/platform/validate"
)

/*
TestQuery tests trimming, normalization, and rejection rules for search queries.
*/
func TestQuery(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		isValid bool
	}{
		{"plain", "swift", "swift", true},
		{"trims_whitespace", "  kubernetes  ", "kubernetes", true},
		{"single_char", "c", "c", true},
		{"empty", "", "", false},
		{"whitespace_only", "   ", "", false},
		{"too_long", strings.Repeat("a", 101), "", false},
		{"max_length_ok", strings.Repeat("a", 100), strings.Repeat("a", 100), true},
		{"control_character", "go\x00lang", "", false},
		{"invalid_utf8", "go\xff", "", false},
		{"unicode", "日本語", "日本語", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validate.Query(tt.raw)

			if tt.isValid {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			} else {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			}
		})
	}
}

/*
TestQuery_Normalizes verifies NFC normalization of decomposed input.
*/
func TestQuery_Normalizes(t *testing.T) {
	// "é" as 'e' + combining acute accent should collapse to the composed form.
	got, err := validate.Query("café")
	require.NoError(t, err)
	assert.Equal(t, "café", got)
}

/*
TestISBN13 tests the 13-digit identifier rule.
*/
func TestISBN13(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		isValid bool
	}{
		{"valid", "9781617294136", true},
		{"trims_whitespace", " 9781617294136 ", true},
		{"too_short", "978161729413", false},
		{"too_long", "97816172941367", false},
		{"hyphenated", "978-161729413", false},
		{"letters", "97816172941ab", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validate.ISBN13(tt.raw)

			if tt.isValid {
				require.NoError(t, err)
				assert.Len(t, got, 13)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

/*
TestPage tests the 1-indexed page rule.
*/
func TestPage(t *testing.T) {
	got, err := validate.Page(1)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	_, err = validate.Page(0)
	require.Error(t, err)

	_, err = validate.Page(-5)
	require.Error(t, err)
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("title", "").       // Fails
		MinLen("title", "a", 5).     // Fails
		Min("page", 0, 1).           // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
