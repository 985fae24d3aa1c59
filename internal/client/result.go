package client

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is the tagged outcome of a create call that degrades instead of
// failing. A Persisted result carries the server assigned identity; a Local
// result carries a synthesized temp id and the error that caused the
// fallback. Local records are never retried or reconciled: a reload loses
// them. This is UX smoothing, not an offline queue.
type Result struct {
	id     uint64
	tempID string
	cause  error
}

// Persisted tags a server assigned identity.
func Persisted(id uint64) Result {
	return Result{id: id}
}

// LocalFallback synthesizes a device-local identity. The timestamp prefix
// keeps local ids distinguishable from the server's numeric ids at a glance.
func LocalFallback(cause error) Result {
	return Result{
		tempID: fmt.Sprintf("local-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8]),
		cause:  cause,
	}
}

// Persisted returns the server identity when the write reached the server.
func (r Result) Persisted() (uint64, bool) {
	return r.id, r.tempID == ""
}

// Local returns the temp identity when the write fell back to local-only.
func (r Result) Local() (string, bool) {
	return r.tempID, r.tempID != ""
}

// IsLocal reports whether the record only exists on this device.
func (r Result) IsLocal() bool {
	return r.tempID != ""
}

// Cause returns the error that forced the local fallback, nil for
// persisted results.
func (r Result) Cause() error {
	return r.cause
}
