// Package ident generates string identifiers in the three formats the
// toolbox standardizes on: random UUIDv4, and the time-sortable KSUID and
// ULID families. All generators are safe for concurrent use.
package ident

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/segmentio/ksuid"
)

// UUID returns a random (version 4) UUID in canonical form, e.g.
// "f47ac10b-58cc-4372-a567-0e02b2c3d479".
func UUID() string {
	return uuid.NewString()
}

// KSUID returns a 27-character K-sortable unique identifier. KSUIDs embed a
// second-resolution timestamp, so lexicographic order approximates creation
// order.
func KSUID() string {
	return ksuid.New().String()
}

// entropy feeds ULID generation. Monotonic mode guarantees that ULIDs
// minted within the same millisecond still sort in creation order; the
// reader is not safe for concurrent use, hence the lock.
var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewULID returns a raw ULID, for callers that want the embedded timestamp
// or binary form rather than a string.
func NewULID() ulid.ULID {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
}

// ULID returns a 26-character Crockford base32 ULID. ULIDs embed a
// millisecond timestamp and sort lexicographically by creation time, even
// within a single millisecond.
func ULID() string {
	return NewULID().String()
}

// Sortable is an alias for ULID, the toolbox's preferred sortable format.
func Sortable() string { return ULID() }
