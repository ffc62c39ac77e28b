// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// # Why UUIDv7?
//
// Browse session ids and request correlation ids are time-sortable, which
// keeps log output and session listings naturally ordered by creation time.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// # Safety
//
// UUIDv7 generation can fail only if the system entropy source is exhausted;
// in that case it falls back to a random UUIDv4 rather than returning an
// error to every caller.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// IsValid reports whether s parses as any UUID version.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
