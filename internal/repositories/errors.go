// Package repositories contains the MySQL-backed metadata stores.
package repositories

import "errors"

// ErrNotFound indicates no record exists for the requested id.
// The in-memory backend returns the same sentinel so callers never depend on
// a particular storage backend.
var ErrNotFound = errors.New("record not found")
