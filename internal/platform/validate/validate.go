// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError], plus the canonical
// input rules for search queries, ISBN-13 identifiers, and page numbers.
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers or
// storage. It ensures that business logic only operates on semantically valid data.
package validate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/bookdex/bookdex/internal/platform/apperr"
	"github.com/bookdex/bookdex/internal/platform/constants"
)

// ErrInvalidJSON is returned when a request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Min fails if the integer value is below min.
func (v *Validator) Min(field string, value, min int) *Validator {
	if value < min {
		v.add(field, fmt.Sprintf("Must be at least %d", min))
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("page", page < 1, "Must be a positive page number")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// # Canonical Input Rules

// Query trims, NFC-normalizes, and validates a free-text search query.
//
// # Rules
//
//   - After trimming, the query must be 1..100 characters.
//   - It must be valid UTF-8 with no control characters, so that it can be
//     percent-encoded as a URL path segment for the upstream catalog.
//
// The normalized query is returned on success.
func Query(raw string) (string, error) {
	query := norm.NFC.String(strings.TrimSpace(raw))

	v := &Validator{}
	v.Required("query", query).
		MinLen("query", query, 1).
		MaxLen("query", query, constants.MaxQueryLength).
		Custom("query", !isPathSegmentSafe(query), "Contains characters that cannot be URL-encoded")

	if err := v.Err(); err != nil {
		return "", err
	}
	return query, nil
}

// ISBN13 trims and validates a 13-digit ISBN.
//
// Hyphens are not accepted; the catalog API keys books by the bare digits.
func ISBN13(raw string) (string, error) {
	isbn := strings.TrimSpace(raw)

	v := &Validator{}
	v.Required("isbn13", isbn).
		Custom("isbn13", !isThirteenDigits(isbn), "Must be exactly 13 digits")

	if err := v.Err(); err != nil {
		return "", err
	}
	return isbn, nil
}

// Page validates a 1-indexed page number.
func Page(page int) (int, error) {
	v := &Validator{}
	v.Min("page", page, 1)

	if err := v.Err(); err != nil {
		return 0, err
	}
	return page, nil
}

// isThirteenDigits reports whether s consists of exactly 13 ASCII digits.
func isThirteenDigits(s string) bool {
	if len(s) != 13 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isPathSegmentSafe reports whether s can be percent-encoded as a URL path
// segment without information loss.
func isPathSegmentSafe(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
