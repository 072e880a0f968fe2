// Package catalog holds the static classification tables for footprint
// scanning: the email category catalog with its trigger tags, and the fixed
// username category list.
//
// The catalog is immutable, process-wide data. It is constructed once at
// startup and shared read-only by every scan, so no locking is required.
package catalog
