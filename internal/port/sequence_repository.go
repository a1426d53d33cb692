package port

import "context"

// SequenceRepository hands out monotonically increasing counters per
// key, used for human-facing quote numbers.
type SequenceRepository interface {
	// Next increments the counter stored under key and returns the
	// new value. The first call for a key returns 1.
	Next(ctx context.Context, key string) (int64, error)
}
