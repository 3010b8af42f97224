// Package domain defines the persisted entity shapes and their
// API-facing projections.
//
// Entities are what the repository layer reads and writes. Projections
// are what handlers return to callers; the two never mix at the HTTP
// boundary.
package domain
