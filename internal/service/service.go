// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated data from the handler, enforces business invariants
// (uniqueness of username/email, partial-update semantics), and calls
// repository methods to interact with the data.
//
// Read lookups that find nothing return nil results, not errors;
// business-rule violations on write paths come back as *errs.HTTPError.
package service
