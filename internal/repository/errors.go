// Package repository provides the MySQL-backed implementations of the
// store contracts.  Queries are written as raw SQL constants against
// database/sql; timestamps are stored in UTC.  Sentinel errors shared
// by the store package are reused so handlers can branch on a single
// error set regardless of which backend is configured.
package repository

// The repositories return store.ErrNotFound and store.ErrInvalidTransition
// directly rather than defining parallel sentinels here; see
// internal/store.  Database errors pass through untranslated.
