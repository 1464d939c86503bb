// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"strings"
)

// ErrDuplicate is returned when attempting to insert a record that already exists.
var ErrDuplicate = errors.New("duplicate record")

// ErrUnsupportedDB is returned for unknown database types.
var ErrUnsupportedDB = errors.New("unsupported database type")

// ErrEmptySlot is returned when a slot name is blank.
var ErrEmptySlot = errors.New("slot name must not be empty")

// MapDBError maps driver-specific unique constraint violations to
// ErrDuplicate. The mapping is string based so this file does not import
// the SQL drivers.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	le := strings.ToLower(err.Error())
	// MySQL duplicate entry, Postgres unique violation (23505), SQLite unique constraint
	if strings.Contains(le, "duplicate") || strings.Contains(le, "unique") || strings.Contains(le, "23505") || strings.Contains(le, "1062") {
		return ErrDuplicate
	}
	return err
}
