// Package services holds the stateful stores and the report service built on
// top of the aggregation functions in core.
package services

import "errors"

// ErrNotPersisted is returned when a change was applied in memory but the
// document could not be written to the backend.
var ErrNotPersisted = errors.New("change not persisted")
