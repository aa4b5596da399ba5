// Package idgen issues unique string identifiers for stored records.
package idgen

import (
	"github.com/google/uuid"
)

// New returns a UUIDv7 string: a high-resolution timestamp prefix with a
// random suffix, so ids issued later sort after earlier ones and collisions
// are negligible. Never fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to the
		// pure-random variant rather than surface an error to callers.
		return uuid.NewString()
	}
	return id.String()
}
